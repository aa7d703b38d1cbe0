package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotterich/cli/internal/client/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 2*time.Second, func() string { return token })
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"t0k","user":{"id":"u1","name":"A","email":"a@b.c","role":"user"}}`))
	}, "")

	token, user, err := c.Login(context.Background(), "a@b.c", "secret1", false)
	require.NoError(t, err)
	assert.Equal(t, "t0k", token)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestBearerTokenAttached(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer t0k", r.Header.Get("Authorization"))
		w.Write([]byte(`{"collection":[{"id":"1","ticketNumber":"123456"}]}`))
	}, "t0k")

	tickets, err := c.ListTickets(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "123456", tickets[0].TicketNumber)
}

func TestApplicationError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Email already registered"}`))
	}, "")

	_, err := c.Register(context.Background(), "A", "a@b.c", "secret1")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Email already registered", apiErr.Message)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestUnauthorizedError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized"}`))
	}, "stale")

	_, err := c.Profile(context.Background())
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing is listening anymore

	c := NewHTTPClient(url, 500*time.Millisecond, nil)
	_, err := c.ListDraws(context.Background())
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestErrorWithoutMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, "")

	err := c.DeleteTicket(context.Background(), "42")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed with status 502", apiErr.Error())
}

func TestDeleteAccountCarriesPassword(t *testing.T) {
	var gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{"message":"ok"}`))
	}, "t0k")

	require.NoError(t, c.DeleteAccount(context.Background(), "secret1"))
	assert.JSONEq(t, `{"currentPassword":"secret1"}`, gotBody)
}
