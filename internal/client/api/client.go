// Package api wraps outbound calls to the LotteRich REST backend: auth,
// profile, ticket-collection CRUD, and draw-result CRUD. Every operation
// attaches a bearer token when one is present and maps transport failures
// to ErrUnavailable and structured 4xx/5xx answers to *Error.
package api

import (
	"context"

	"github.com/lotterich/cli/internal/client/models"
)

// Client is the typed surface the rest of the application talks to.
// All methods honor context cancellation and the configured request timeout.
type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string, rememberMe bool) (string, models.User, error)
	Register(ctx context.Context, name, email, password string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error

	// Profile.
	Profile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, name string) (models.User, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, currentPassword string) error

	// Ticket collection.
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	CreateTicket(ctx context.Context, in models.TicketInput) error
	UpdateTicket(ctx context.Context, id string, in models.TicketInput) error
	DeleteTicket(ctx context.Context, id string) error

	// Draw results.
	LatestDraw(ctx context.Context) (models.Draw, error)
	ListDraws(ctx context.Context) ([]models.Draw, error)

	// Draw results, admin-scoped.
	AdminListDraws(ctx context.Context) ([]models.Draw, error)
	AdminCreateDraw(ctx context.Context, d models.Draw) (models.Draw, error)
	AdminUpdateDraw(ctx context.Context, id string, d models.Draw) error
	AdminDeleteDraw(ctx context.Context, id string) error
}
