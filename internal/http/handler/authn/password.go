package authn

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/foyer/internal/http/handler/webui/common/form"
	"github.com/bornholm/foyer/internal/login"
	"github.com/bornholm/foyer/internal/store"
	"github.com/pkg/errors"
)

type passwordResponse struct {
	Redirect     string `json:"redirect,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// handlePasswordLogin accepts the password form from both the asynchronous
// path (answered with JSON) and the plain form post fallback (answered with
// a redirect or a re-rendered page, entered values preserved).
func (h *Handler) handlePasswordLogin(w http.ResponseWriter, r *http.Request) {
	if !h.passwordEnabled {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()

	f := h.newPasswordForm(h.defaultNext)
	if err := f.Handle(r); err != nil {
		slog.ErrorContext(ctx, "could not parse password form", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	next := safeNext(f.Values[fieldNext], h.defaultNext)
	f.Values[fieldNext] = next

	if !f.IsValid(ctx) {
		h.respondPasswordFailure(w, r, f, firstError(f), http.StatusUnprocessableEntity)
		return
	}

	identifier := f.Values[fieldUsername]
	secret := f.Values[fieldPassword]

	// Collapse re-entrant submits from the same browser into a single
	// authentication attempt.
	result, err, _ := h.submits.Do(h.submissionKey(r, identifier), func() (any, error) {
		return h.authenticator.Authenticate(ctx, identifier, secret)
	})
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.recordEvent(r, login.MethodPassword, store.OutcomeFailure, "invalid credentials", identifier)
			h.respondPasswordFailure(w, r, f, translated(ctx, "login.invalid_credentials", "Incorrect username or password"), http.StatusUnauthorized)
			return
		}

		slog.ErrorContext(ctx, "could not authenticate user", slog.Any("error", errors.WithStack(err)))
		h.recordEvent(r, login.MethodPassword, store.OutcomeError, err.Error(), identifier)
		h.respondPasswordFailure(w, r, f, translated(ctx, "login.backend_unavailable", "Could not reach the authentication service, please try again"), http.StatusBadGateway)
		return
	}

	user, ok := result.(*User)
	if !ok || user == nil {
		slog.ErrorContext(ctx, "could not authenticate user", slog.Any("error", errors.New("authenticator returned no user")))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.storeSessionUser(w, r, user); err != nil {
		slog.ErrorContext(ctx, "could not store session user", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setLastUsedMethod(w, login.MethodPassword)
	h.recordEvent(r, login.MethodPassword, store.OutcomeSuccess, "", user.Subject)

	if isAsync(r) {
		writeJSON(w, http.StatusOK, passwordResponse{Redirect: next})
		return
	}

	http.Redirect(w, r, next, http.StatusSeeOther)
}

// respondPasswordFailure surfaces the error inline, keeping every entered
// value except the secret.
func (h *Handler) respondPasswordFailure(w http.ResponseWriter, r *http.Request, f *form.Form, message string, status int) {
	f.Values[fieldPassword] = ""

	if isAsync(r) {
		writeJSON(w, status, passwordResponse{ErrorMessage: message})
		return
	}

	h.renderLoginPage(w, r, &loginRender{
		formErrors: map[string]string{
			login.MethodPassword: message,
		},
		passwordForm: f,
	})
}

// submissionKey identifies a browser for the duplicate-submit guard: the
// session cookie when present, the remote address otherwise.
func (h *Handler) submissionKey(r *http.Request, identifier string) string {
	if cookie, err := r.Cookie(h.sessionName); err == nil && cookie.Value != "" {
		return cookie.Value + "|" + identifier
	}

	return r.RemoteAddr + "|" + identifier
}

func firstError(f *form.Form) string {
	for _, name := range f.GetFieldNames() {
		if message, exists := f.Errors[name]; exists && message != "" {
			return message
		}
	}

	return "invalid form"
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("could not encode response", slog.Any("error", errors.WithStack(err)))
	}
}
