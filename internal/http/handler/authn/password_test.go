package authn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bornholm/foyer/internal/login"
	"github.com/bornholm/foyer/internal/store"
	"github.com/bornholm/foyer/internal/store/repository/event"
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func postPassword(h *Handler, values url.Values, async bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login/password", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if async {
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}

	res := httptest.NewRecorder()
	h.ServeHTTP(res, req)

	return res
}

func passwordValues(username, password, next string) url.Values {
	return url.Values{
		fieldUsername: {username},
		fieldPassword: {password},
		fieldNext:     {next},
		fieldCharset:  {charsetMarker},
	}
}

func TestPasswordLoginSuccessAsync(t *testing.T) {
	authenticator := AuthenticatorFunc(func(ctx context.Context, identifier, secret string) (*User, error) {
		if identifier == "alice" && secret == "s3cret" {
			return &User{Subject: "alice"}, nil
		}

		return nil, errors.WithStack(ErrInvalidCredentials)
	})

	h := newTestHandler(t, authenticator)

	res := postPassword(h, passwordValues("alice", "s3cret", "/dashboard"), true)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, res.Code)
	}

	var body passwordResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}

	if body.Redirect != "/dashboard" {
		t.Errorf("expected redirect to '/dashboard', got %q", body.Redirect)
	}

	if body.ErrorMessage != "" {
		t.Errorf("expected no error message, got %q", body.ErrorMessage)
	}

	var lastUsed *http.Cookie
	for _, c := range res.Result().Cookies() {
		if c.Name == lastUsedCookie {
			lastUsed = c
		}
	}

	if lastUsed == nil || lastUsed.Value != "password" {
		t.Errorf("expected the last-used cookie to remember the password method")
	}
}

func TestPasswordLoginSuccessRedirect(t *testing.T) {
	authenticator := AuthenticatorFunc(func(ctx context.Context, identifier, secret string) (*User, error) {
		return &User{Subject: "alice"}, nil
	})

	h := newTestHandler(t, authenticator)

	res := postPassword(h, passwordValues("alice", "s3cret", "/dashboard"), false)

	if res.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, res.Code)
	}

	if location := res.Header().Get("Location"); location != "/dashboard" {
		t.Errorf("expected redirect to '/dashboard', got %q", location)
	}
}

func TestPasswordLoginUnsafeNextFallsBack(t *testing.T) {
	authenticator := AuthenticatorFunc(func(ctx context.Context, identifier, secret string) (*User, error) {
		return &User{Subject: "alice"}, nil
	})

	h := newTestHandler(t, authenticator)

	res := postPassword(h, passwordValues("alice", "s3cret", "https://evil.example.com/"), true)

	var body passwordResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}

	if body.Redirect != "/" {
		t.Errorf("expected redirect to fall back to '/', got %q", body.Redirect)
	}
}

func TestPasswordLoginInvalidCredentialsAsync(t *testing.T) {
	authenticator := AuthenticatorFunc(func(ctx context.Context, identifier, secret string) (*User, error) {
		return nil, errors.WithStack(ErrInvalidCredentials)
	})

	h := newTestHandler(t, authenticator)

	res := postPassword(h, passwordValues("alice", "wrong", "/"), true)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, res.Code)
	}

	var body passwordResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}

	if body.ErrorMessage == "" {
		t.Errorf("expected an error message")
	}

	if body.Redirect != "" {
		t.Errorf("expected no redirect, got %q", body.Redirect)
	}
}

func TestPasswordLoginInvalidCredentialsFullRender(t *testing.T) {
	authenticator := AuthenticatorFunc(func(ctx context.Context, identifier, secret string) (*User, error) {
		return nil, errors.WithStack(ErrInvalidCredentials)
	})

	h := newTestHandler(t, authenticator)

	res := postPassword(h, passwordValues("alice", "wrong", "/"), false)

	body := res.Body.String()

	if !strings.Contains(body, `class="form-error"`) {
		t.Errorf("expected the error to be rendered inline")
	}

	// The error flag reveals the password panel.
	if !strings.Contains(body, `<div class="password-panel" id="password-panel">`) {
		t.Errorf("expected the password panel to be expanded")
	}

	// Entered values survive, the secret does not.
	if !strings.Contains(body, `name="username" type="text" value="alice"`) {
		t.Errorf("expected the username to be preserved")
	}

	if !strings.Contains(body, `name="password" type="password" value=""`) {
		t.Errorf("expected the password to be cleared")
	}
}

func TestPasswordLoginBackendUnavailable(t *testing.T) {
	authenticator := AuthenticatorFunc(func(ctx context.Context, identifier, secret string) (*User, error) {
		return nil, errors.New("connection refused")
	})

	h := newTestHandler(t, authenticator)

	res := postPassword(h, passwordValues("alice", "s3cret", "/"), true)

	if res.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, res.Code)
	}

	var body passwordResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}

	if body.ErrorMessage == "" {
		t.Errorf("expected an error message")
	}
}

func TestPasswordLoginMissingFields(t *testing.T) {
	authenticator := AuthenticatorFunc(func(ctx context.Context, identifier, secret string) (*User, error) {
		t.Fatal("authenticator must not be called for an invalid form")
		return nil, nil
	})

	h := newTestHandler(t, authenticator)

	res := postPassword(h, passwordValues("", "", "/"), true)

	if res.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, res.Code)
	}
}

func TestPasswordLoginDisabled(t *testing.T) {
	h := newTestHandler(t, nil, WithPasswordEnabled(false))

	res := postPassword(h, passwordValues("alice", "s3cret", "/"), true)

	if res.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, res.Code)
	}
}

func TestPasswordLoginDuplicateSubmitsCollapsed(t *testing.T) {
	var calls atomic.Int32

	entered := make(chan struct{}, 2)
	release := make(chan struct{})

	authenticator := AuthenticatorFunc(func(ctx context.Context, identifier, secret string) (*User, error) {
		calls.Add(1)
		entered <- struct{}{}
		<-release
		return &User{Subject: "alice"}, nil
	})

	h := newTestHandler(t, authenticator)

	results := make([]*httptest.ResponseRecorder, 2)

	var done sync.WaitGroup

	done.Add(1)
	go func() {
		defer done.Done()
		results[0] = postPassword(h, passwordValues("alice", "s3cret", "/"), true)
	}()

	// Wait until the first submit holds the backend, then fire the
	// duplicate while it is still in flight.
	<-entered

	done.Add(1)
	go func() {
		defer done.Done()
		results[1] = postPassword(h, passwordValues("alice", "s3cret", "/"), true)
	}()

	time.Sleep(100 * time.Millisecond)

	close(release)
	done.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("expected a single backend call for duplicate submits, got %d", got)
	}

	for i, res := range results {
		if res.Code != http.StatusOK {
			t.Errorf("submit %d: expected status %d, got %d", i, http.StatusOK, res.Code)
		}
	}
}

func TestPasswordLoginRecordsEvents(t *testing.T) {
	authenticator := AuthenticatorFunc(func(ctx context.Context, identifier, secret string) (*User, error) {
		if identifier == "alice" && secret == "s3cret" {
			return &User{Subject: "alice", Provider: login.MethodPassword}, nil
		}

		return nil, errors.WithStack(ErrInvalidCredentials)
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open database: %v", err)
	}

	repo := event.NewRepository(store.New(db))

	h := newTestHandler(t, authenticator, WithEvents(repo))

	if res := postPassword(h, passwordValues("alice", "wrong", "/"), true); res.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, res.Code)
	}

	if res := postPassword(h, passwordValues("alice", "s3cret", "/"), true); res.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, res.Code)
	}

	events, err := repo.ListRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("could not list events: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	// Newest first.
	success, failure := events[0], events[1]

	if success.Outcome != store.OutcomeSuccess || success.Subject != "alice" {
		t.Errorf("expected a success event for 'alice', got %+v", success)
	}

	if failure.Outcome != store.OutcomeFailure || failure.Detail != "invalid credentials" {
		t.Errorf("expected a failure event, got %+v", failure)
	}

	for _, evt := range events {
		if evt.Method != login.MethodPassword {
			t.Errorf("expected method %q, got %q", login.MethodPassword, evt.Method)
		}

		if evt.Remote == "" {
			t.Error("expected the client address to be recorded")
		}

		if evt.EventID == "" {
			t.Error("expected an event id to be assigned")
		}
	}
}
