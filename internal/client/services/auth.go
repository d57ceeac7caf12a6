// Package services contains application services for the skillfit client.
// This file defines the authentication service: sign-in, sign-up, password
// reset and sign-out.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/skillfit/internal/client/auth"
	"github.com/dmitrijs2005/skillfit/internal/client/client"
	"github.com/dmitrijs2005/skillfit/internal/client/models"
	"github.com/dmitrijs2005/skillfit/internal/logging"
)

// Session is the part of the session store the services write to.
type Session interface {
	SetCredential(ctx context.Context, credential string) error
	ClearCredential(ctx context.Context) error
	Credential() (string, bool)
	CurrentClaims() (auth.Claims, bool)
	SetDisplayName(name string)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignIn: validate, authenticate, store the credential and fetch the
//     display name. Returns the decoded claims.
//   - SignUp: validate and register a new account.
//   - ForgotPassword / ResetPassword: the two halves of the reset flow.
//   - SignOut: forget the credential locally.
//
// Form validation failures wrap ErrInvalidInput and make no request.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (auth.Claims, error)
	SignUp(ctx context.Context, req models.SignUpRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password, confirm string) error
	SignOut(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session Session
	logger  logging.Logger
}

func NewAuthService(c client.Client, s Session, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &authService{client: c, session: s, logger: logger.With("component", "auth")}
}

type signInForm struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type forgotForm struct {
	Email string `json:"email" validate:"required,email"`
}

type resetForm struct {
	Token    string `json:"token"        validate:"required"`
	Password string `json:"new_password" validate:"required,min=6"`
	Confirm  string `json:"confirmation" validate:"eqfield=Password"`
}

func (a *authService) SignIn(ctx context.Context, email, password string) (auth.Claims, error) {
	if err := checkForm(signInForm{Email: email, Password: password}); err != nil {
		return auth.Claims{}, err
	}

	token, err := a.client.SignIn(ctx, email, password)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("sign in: %w", err)
	}

	if err := a.session.SetCredential(ctx, token); err != nil {
		return auth.Claims{}, fmt.Errorf("store credential: %w", err)
	}

	claims, ok := a.session.CurrentClaims()
	if !ok {
		// issued already expired
		return auth.Claims{}, fmt.Errorf("store credential: %w", auth.ErrMalformedCredential)
	}

	if details, err := a.client.UserDetails(ctx, token); err != nil {
		a.logger.Warn(ctx, "user details unavailable", "error", err)
	} else {
		a.session.SetDisplayName(details.FullName)
	}

	a.logger.Info(ctx, "signed in", "role", string(claims.Role))
	return claims, nil
}

func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) error {
	if err := checkForm(req); err != nil {
		return err
	}
	if err := a.client.SignUp(ctx, req); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	return nil
}

func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	if err := checkForm(forgotForm{Email: email}); err != nil {
		return err
	}
	if err := a.client.ForgotPassword(ctx, email); err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}
	return nil
}

func (a *authService) ResetPassword(ctx context.Context, token, password, confirm string) error {
	if err := checkForm(resetForm{Token: token, Password: password, Confirm: confirm}); err != nil {
		return err
	}
	if err := a.client.ResetPassword(ctx, token, password); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}

func (a *authService) SignOut(ctx context.Context) error {
	if err := a.session.ClearCredential(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	a.logger.Info(ctx, "signed out")
	return nil
}
