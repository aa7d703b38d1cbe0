package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lotterich/cli/internal/client/models"
)

// newRequestID is a test seam for request-id generation.
var newRequestID = uuid.NewString

// TokenSource yields the current bearer token, or "" when logged out.
type TokenSource func() string

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	token   TokenSource
}

// NewHTTPClient builds a client against baseURL (e.g. "http://host:8080/api").
// The token source is consulted on every request, so a login that happens
// after construction is picked up automatically.
func NewHTTPClient(baseURL string, timeout time.Duration, token TokenSource) *HTTPClient {
	if token == nil {
		token = func() string { return "" }
	}
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
		token:   token,
	}
}

// do performs one JSON round trip. A nil out discards the response body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", newRequestID())
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{Status: resp.StatusCode}
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) == nil {
			apiErr.Message = e.Error
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string, rememberMe bool) (string, models.User, error) {
	body := struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		RememberMe bool   `json:"rememberMe"`
	}{email, password, rememberMe}

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", models.User{}, err
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (string, error) {
	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{name, email, password}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{email}
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", body, nil)
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, otp string) error {
	body := struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}{email, otp}
	return c.do(ctx, http.MethodPost, "/auth/verify-otp", body, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	body := struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}{email, otp, newPassword}
	return c.do(ctx, http.MethodPost, "/auth/reset-password", body, nil)
}

func (c *HTTPClient) Profile(ctx context.Context) (models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &resp); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, name string) (models.User, error) {
	body := struct {
		Name string `json:"name"`
	}{name}

	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPatch, "/users/me", body, &resp); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}{currentPassword, newPassword}
	return c.do(ctx, http.MethodPost, "/users/change-password", body, nil)
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, currentPassword string) error {
	body := struct {
		CurrentPassword string `json:"currentPassword"`
	}{currentPassword}
	return c.do(ctx, http.MethodDelete, "/users/me", body, nil)
}

func (c *HTTPClient) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	var resp struct {
		Collection []models.Ticket `json:"collection"`
	}
	if err := c.do(ctx, http.MethodGet, "/collection", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Collection, nil
}

func (c *HTTPClient) CreateTicket(ctx context.Context, in models.TicketInput) error {
	return c.do(ctx, http.MethodPost, "/collection", in, nil)
}

func (c *HTTPClient) UpdateTicket(ctx context.Context, id string, in models.TicketInput) error {
	return c.do(ctx, http.MethodPut, "/collection/"+id, in, nil)
}

func (c *HTTPClient) DeleteTicket(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/collection/"+id, nil, nil)
}

func (c *HTTPClient) LatestDraw(ctx context.Context) (models.Draw, error) {
	var d models.Draw
	if err := c.do(ctx, http.MethodGet, "/statistics/latest", nil, &d); err != nil {
		return models.Draw{}, err
	}
	return d, nil
}

func (c *HTTPClient) ListDraws(ctx context.Context) ([]models.Draw, error) {
	var ds []models.Draw
	if err := c.do(ctx, http.MethodGet, "/statistics/all", nil, &ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func (c *HTTPClient) AdminListDraws(ctx context.Context) ([]models.Draw, error) {
	var ds []models.Draw
	if err := c.do(ctx, http.MethodGet, "/admin/statistics", nil, &ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func (c *HTTPClient) AdminCreateDraw(ctx context.Context, d models.Draw) (models.Draw, error) {
	var created models.Draw
	if err := c.do(ctx, http.MethodPost, "/admin/statistics", d, &created); err != nil {
		return models.Draw{}, err
	}
	return created, nil
}

func (c *HTTPClient) AdminUpdateDraw(ctx context.Context, id string, d models.Draw) error {
	return c.do(ctx, http.MethodPut, "/admin/statistics/"+id, d, nil)
}

func (c *HTTPClient) AdminDeleteDraw(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/statistics/"+id, nil, nil)
}

var _ Client = (*HTTPClient)(nil)
