package controllers

import (
	"context"
	"errors"

	"backoffice/src/database"
	"backoffice/src/procedures"
	"backoffice/src/repositories"
	"backoffice/src/schemas"
	"backoffice/src/sessions"
	"backoffice/src/utils"

	"github.com/sirupsen/logrus"
)

const invalidLoginMessage = "Invalid customer, user name or password."

// TenantSource hands out procedure callers for customer databases.
type TenantSource interface {
	Caller(ctx context.Context, customer string) (procedures.Caller, error)
}

type AuthControllerI interface {
	Login(ctx context.Context, form *schemas.LoginForm) (*sessions.Session, error)
	Logout(ctx context.Context, sess *sessions.Session) error
	ChangePassword(ctx context.Context, sess *sessions.Session, form *schemas.PasswordForm) error
}

type AuthController struct {
	Tenants TenantSource
}

func NewAuthController(tenants TenantSource) *AuthController {
	return &AuthController{Tenants: tenants}
}

// Login checks the credentials against the customer database and returns
// the session to issue. The session is not stored yet.
func (ac *AuthController) Login(ctx context.Context, form *schemas.LoginForm) (*sessions.Session, error) {
	if err := schemas.Validate(form); err != nil {
		return nil, err
	}

	caller, err := ac.Tenants.Caller(ctx, form.Customer)
	if errors.Is(err, repositories.ErrCustomerNotFound) || errors.Is(err, database.ErrCustomerInactive) {
		utils.LoggerFromContext(ctx).WithField("customer", form.Customer).Warn("login for unknown or inactive customer")
		return nil, utils.Unauthorized(invalidLoginMessage)
	}
	if err != nil {
		return nil, err
	}

	users := repositories.NewUserRepository(caller)
	result, err := users.Login(ctx, form.UserName, form.Password)
	if errors.Is(err, procedures.ErrNotFound) {
		return nil, utils.Unauthorized(invalidLoginMessage)
	}
	if err != nil {
		return nil, err
	}
	if result.ResultCode != 0 {
		utils.LoggerFromContext(ctx).WithFields(logrus.Fields{
			"customer":    form.Customer,
			"user":        form.UserName,
			"result_code": result.ResultCode,
		}).Info("login refused")
		message := result.Message
		if message == "" {
			message = invalidLoginMessage
		}
		return nil, utils.Unauthorized(message)
	}

	permissions, err := users.Permissions(ctx, result.UserID)
	if err != nil {
		return nil, err
	}

	userName := result.UserName
	if userName == "" {
		userName = form.UserName
	}
	return &sessions.Session{
		Customer:    form.Customer,
		UserID:      result.UserID,
		UserName:    userName,
		DisplayName: result.DisplayName,
		Permissions: permissions,
	}, nil
}

// Logout tells the customer database the user left. The session itself is
// cleared by the handler even when this fails.
func (ac *AuthController) Logout(ctx context.Context, sess *sessions.Session) error {
	caller, err := ac.Tenants.Caller(ctx, sess.Customer)
	if err != nil {
		return err
	}
	return repositories.NewUserRepository(caller).Logout(ctx, sess.UserID)
}

func (ac *AuthController) ChangePassword(ctx context.Context, sess *sessions.Session, form *schemas.PasswordForm) error {
	if err := schemas.Validate(form); err != nil {
		return err
	}
	caller, err := ac.Tenants.Caller(ctx, sess.Customer)
	if err != nil {
		return err
	}
	err = repositories.NewUserRepository(caller).ChangePassword(ctx, sess.UserID, form.Current, form.New)
	return translate(err, "")
}
