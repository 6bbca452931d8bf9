package repositories

import (
	"context"

	"backoffice/src/models"
	"backoffice/src/procedures"
)

type UserRepository interface {
	Login(ctx context.Context, userName, password string) (*models.LoginResult, error)
	Permissions(ctx context.Context, userID int64) ([]string, error)
	ChangePassword(ctx context.Context, userID int64, current, replacement string) error
	Logout(ctx context.Context, userID int64) error
}

type userRepo struct {
	caller procedures.Caller
}

func NewUserRepository(caller procedures.Caller) UserRepository {
	return &userRepo{caller: caller}
}

// Login delegates the credential check to sp_user_login(user_name, password).
// A refused login is not an error: the caller inspects ResultCode.
func (r *userRepo) Login(ctx context.Context, userName, password string) (*models.LoginResult, error) {
	var result models.LoginResult
	if err := r.caller.Get(ctx, &result, procedures.UserLogin, userName, password); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *userRepo) Permissions(ctx context.Context, userID int64) ([]string, error) {
	var rows []models.Permission
	if err := r.caller.Select(ctx, &rows, procedures.UserPermissions, userID); err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(rows))
	for _, row := range rows {
		codes = append(codes, row.Code)
	}
	return codes, nil
}

func (r *userRepo) ChangePassword(ctx context.Context, userID int64, current, replacement string) error {
	_, err := r.caller.Save(ctx, procedures.UserChangePassword, userID, current, replacement)
	return err
}

func (r *userRepo) Logout(ctx context.Context, userID int64) error {
	return r.caller.Exec(ctx, procedures.UserLogout, userID)
}
