// Package services contains the application services of the LotteRich
// client: account lifecycle, ticket-collection bookkeeping and draw-result
// administration. Services own no canonical state; the backend does. After
// every successful mutation the affected list is refetched in full.
package services

import (
	"context"

	"github.com/lotterich/cli/internal/client/api"
	"github.com/lotterich/cli/internal/client/models"
	"github.com/lotterich/cli/internal/client/session"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Login: authenticate, persist the session token, refresh the profile.
//   - Register: create an account; the caller still logs in afterwards.
//   - ForgotPassword/VerifyOTP/ResetPassword: the three-step e-mail reset.
//   - RefreshProfile: refetch the profile into the session.
//   - UpdateProfile/ChangePassword: edit the signed-in account.
//   - DeleteAccount: remove the account, then drop the local session.
//   - Logout: drop the local session only.
//
// All network methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string, rememberMe bool) (models.User, error)
	Register(ctx context.Context, name, email, password string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
	RefreshProfile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, name string) (models.User, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, currentPassword string) error
	Logout() error
}

// authService is the concrete AuthService backed by the REST client and
// the local session.
type authService struct {
	api  api.Client
	sess *session.Session
}

// NewAuthService constructs an AuthService bound to the given API client
// and session.
func NewAuthService(client api.Client, sess *session.Session) AuthService {
	return &authService{api: client, sess: sess}
}

const (
	minPasswordLen = 6
	minNameLen     = 2
)

func validCredentials(email, password string) map[string]string {
	errs := map[string]string{}
	if email == "" {
		errs["email"] = "กรุณากรอกอีเมล"
	}
	if len(password) < minPasswordLen {
		errs["password"] = "รหัสผ่านต้องมีอย่างน้อย 6 ตัวอักษร"
	}
	return errs
}

// Login authenticates and stores the session. The profile is refreshed
// right after so the session carries the server's view of the account;
// a failed refresh keeps the claims decoded from the token.
func (a *authService) Login(ctx context.Context, email, password string, rememberMe bool) (models.User, error) {
	if errs := validCredentials(email, password); len(errs) > 0 {
		return models.User{}, &ValidationError{Fields: errs}
	}

	token, user, err := a.api.Login(ctx, email, password, rememberMe)
	if err != nil {
		return models.User{}, err
	}
	if err := a.sess.Login(token, user); err != nil {
		return models.User{}, err
	}

	if fresh, err := a.api.Profile(ctx); err == nil {
		a.sess.SetUser(fresh)
	}
	return a.sess.User(), nil
}

// Register creates a new account and returns the server's confirmation
// message.
func (a *authService) Register(ctx context.Context, name, email, password string) (string, error) {
	errs := validCredentials(email, password)
	if len(name) < minNameLen {
		errs["name"] = "ชื่อต้องมีอย่างน้อย 2 ตัวอักษร"
	}
	if len(errs) > 0 {
		return "", &ValidationError{Fields: errs}
	}
	return a.api.Register(ctx, name, email, password)
}

func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return &ValidationError{Fields: map[string]string{"email": "กรุณากรอกอีเมล"}}
	}
	return a.api.ForgotPassword(ctx, email)
}

func (a *authService) VerifyOTP(ctx context.Context, email, otp string) error {
	if otp == "" {
		return &ValidationError{Fields: map[string]string{"otp": "กรุณากรอกรหัส OTP"}}
	}
	return a.api.VerifyOTP(ctx, email, otp)
}

func (a *authService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return &ValidationError{Fields: map[string]string{"newPassword": "รหัสผ่านต้องมีอย่างน้อย 6 ตัวอักษร"}}
	}
	return a.api.ResetPassword(ctx, email, otp, newPassword)
}

// RefreshProfile refetches the signed-in profile into the session.
func (a *authService) RefreshProfile(ctx context.Context) (models.User, error) {
	user, err := a.api.Profile(ctx)
	if err != nil {
		return models.User{}, err
	}
	a.sess.SetUser(user)
	return a.sess.User(), nil
}

func (a *authService) UpdateProfile(ctx context.Context, name string) (models.User, error) {
	if len(name) < minNameLen {
		return models.User{}, &ValidationError{Fields: map[string]string{"name": "ชื่อต้องมีอย่างน้อย 2 ตัวอักษร"}}
	}
	user, err := a.api.UpdateProfile(ctx, name)
	if err != nil {
		return models.User{}, err
	}
	a.sess.SetUser(user)
	return a.sess.User(), nil
}

func (a *authService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return &ValidationError{Fields: map[string]string{"newPassword": "รหัสผ่านต้องมีอย่างน้อย 6 ตัวอักษร"}}
	}
	return a.api.ChangePassword(ctx, currentPassword, newPassword)
}

// DeleteAccount removes the account server-side and only then drops the
// local session, so a rejected password leaves the user signed in.
func (a *authService) DeleteAccount(ctx context.Context, currentPassword string) error {
	if err := a.api.DeleteAccount(ctx, currentPassword); err != nil {
		return err
	}
	return a.sess.Logout()
}

// Logout drops the local session; the backend keeps no session state.
func (a *authService) Logout() error {
	return a.sess.Logout()
}
