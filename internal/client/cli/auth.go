package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/lotterich/cli/internal/client/services"
)

// getSimpleText, getOptionalText and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getOptionalText = GetOptionalText
	getPassword     = GetPassword
)

// reportErr renders a command failure once, at the call site. Validation
// failures list the offending fields; anything else goes through the logger.
func (a *App) reportErr(ctx context.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		for field, msg := range verr.Fields {
			printlnFn(fmt.Sprintf("  %s: %s", field, msg))
		}
		return
	}
	a.log.Error(ctx, "command failed", "error", err)
}

// Register prompts for name, e-mail and password and creates an account.
// The user still logs in afterwards; the backend returns no token here.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	msg, err := a.auth.Register(ctx, name, email, password)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn(msg)
	return nil
}

// Login prompts for credentials, authenticates and persists the session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password, true)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn(fmt.Sprintf("Signed in as %s", user.Name))
	return nil
}

// Forgot walks the three-step password reset: request an OTP by e-mail,
// verify it, then set a new password.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn("An OTP was sent to your e-mail")

	otp, err := getSimpleText(a.reader, "Enter OTP", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.VerifyOTP(ctx, email, otp); err != nil {
		a.reportErr(ctx, err)
		return err
	}

	newPassword, err := getPassword("Enter new password", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.ResetPassword(ctx, email, otp, newPassword); err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn("Password reset, you can login now")
	return nil
}

// Logout drops the persisted session and empties the cached list view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(); err != nil {
		a.reportErr(ctx, err)
		return err
	}
	a.view.SetTickets(nil)
	printlnFn("Signed out")
	return nil
}
