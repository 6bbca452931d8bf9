package schemas

import "net/url"

type LoginForm struct {
	Customer string `form:"customer" validate:"required,max=20"`
	UserName string `form:"username" validate:"required,max=50"`
	Password string `form:"password" validate:"required,max=128"`
}

func (f *LoginForm) Bind(values url.Values) error {
	b := newBinder(values)
	f.Customer = b.upper("customer")
	f.UserName = b.str("username")
	// passwords are taken verbatim
	f.Password = values.Get("password")
	return b.err()
}

type PasswordForm struct {
	Current string `form:"current" validate:"required"`
	New     string `form:"new" validate:"required,min=8,max=128"`
	Confirm string `form:"confirm" validate:"required,eqfield=New"`
}

func (f *PasswordForm) Bind(values url.Values) error {
	f.Current = values.Get("current")
	f.New = values.Get("new")
	f.Confirm = values.Get("confirm")
	return nil
}
