package cli

import (
	"context"

	"github.com/dmitrijs2005/skillfit/internal/client/models"
	"github.com/dmitrijs2005/skillfit/internal/client/router"
	"github.com/dmitrijs2005/skillfit/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignIn prompts for email and password. On success the user lands on the
// default screen of their role.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	claims, err := a.auth.SignIn(ctx, email, string(password))
	if err != nil {
		a.println(userMessage(err, "Sign in failed. Please try again."))
		return err
	}

	// a previous user's upload and pending results must not carry over
	a.discardWorkflow()
	a.board.Drop()

	a.printf("Welcome, %s!\n", a.session.DisplayName())
	return a.enter(ctx, router.LandingFor(claims.Role), router.State{})
}

func (a *App) SignUp(ctx context.Context) error {
	var req models.SignUpRequest
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter full name", &req.FullName},
		{"Enter email", &req.Email},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	req.Password = string(password)
	common.WipeByteArray(password)

	if req.Department, err = getSimpleText(a.reader, "Enter department", a.out); err != nil {
		return err
	}
	if req.Year, err = getSimpleText(a.reader, "Enter year", a.out); err != nil {
		return err
	}

	if err := a.auth.SignUp(ctx, req); err != nil {
		a.println(userMessage(err, "Sign up failed. Please try again."))
		return err
	}

	a.println("Account created. Please sign in.")
	return a.enter(ctx, router.PathSignIn, router.State{})
}

func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter the email of your account", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		a.println(userMessage(err, "Could not send the reset email. Please try again."))
		return err
	}
	a.println("If the email is registered, a reset link is on its way.")
	return nil
}

// ResetPassword completes a reset with the token from the email.
func (a *App) ResetPassword(ctx context.Context, token string) error {
	if token == "" {
		a.println("Usage: reset <token>")
		return nil
	}
	if err := a.enter(ctx, router.PathResetPassword, router.State{ResetToken: token}); err != nil {
		return err
	}
	_, st := a.nav.Current()

	password, err := getPassword("Enter new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.auth.ResetPassword(ctx, st.ResetToken, string(password), string(confirm)); err != nil {
		a.println(userMessage(err, "Password reset failed. Please try again."))
		return err
	}

	a.println("Your password has been reset. Please sign in.")
	return a.enter(ctx, router.PathSignIn, router.State{})
}

// SignOut forgets the credential and any result still waiting to be shown.
func (a *App) SignOut(ctx context.Context) error {
	a.discardWorkflow()
	a.board.Drop()
	if err := a.auth.SignOut(ctx); err != nil {
		a.println("Sign out failed. Please try again.")
		return err
	}
	a.println("Signed out.")
	return a.enter(ctx, router.PathLanding, router.State{})
}
