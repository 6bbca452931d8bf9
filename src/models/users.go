package models

// LoginResult is the row returned by sp_user_login. A non zero ResultCode
// means the login was refused and Message says why.
type LoginResult struct {
	UserID      int64  `db:"user_id"`
	UserName    string `db:"user_name"`
	DisplayName string `db:"display_name"`
	ResultCode  int    `db:"result_code"`
	Message     string `db:"message"`
}

type Permission struct {
	Code string `db:"permission_code"`
}
