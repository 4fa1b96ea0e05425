package authn

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/foyer/internal/http/handler/webui/common/form"
	"github.com/bornholm/foyer/internal/login"
	"github.com/bornholm/foyer/internal/store"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"
)

// handleExternal initiates a sign-in round-trip with the external service
// named by the "service" query parameter.
func (h *Handler) handleExternal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	service := r.URL.Query().Get(fieldService)

	p, exists := h.providers.ByID(service)
	if !exists || service == login.MethodPassword {
		http.NotFound(w, r)
		return
	}

	next := safeNext(r.URL.Query().Get(fieldNext), h.defaultNext)

	detail := ""

	if p.InPage {
		f := h.newProviderForm(p, next)
		if err := f.Handle(r); err != nil {
			slog.ErrorContext(ctx, "could not parse provider form", slog.Any("error", errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		if !f.IsValid(ctx) {
			h.renderLoginPage(w, r, &loginRender{
				formErrors:    map[string]string{p.ID: firstError(f)},
				providerForms: map[string]*form.Form{p.ID: f},
			})
			return
		}

		detail = f.Values[fieldIdentifier]
	}

	h.recordEvent(r, service, store.OutcomeInitiated, detail, "")

	if err := h.storeSessionNext(w, r, next); err != nil {
		slog.ErrorContext(ctx, "could not store session next", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	r = r.WithContext(context.WithValue(ctx, gothic.ProviderParamKey, service))

	// Visitors with a still-valid session at the provider skip the consent
	// round-trip.
	if gothUser, err := gothic.CompleteUserAuth(w, r); err == nil {
		h.finishExternalLogin(w, r, service, gothUser)
		return
	}

	gothic.BeginAuthHandler(w, r)
}

func (h *Handler) handleExternalCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	service := r.URL.Query().Get(fieldService)
	if service != "" {
		r = r.WithContext(context.WithValue(ctx, gothic.ProviderParamKey, service))
	}

	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		slog.ErrorContext(ctx, "could not complete external auth", slog.Any("error", errors.WithStack(err)))
		h.recordEvent(r, service, store.OutcomeError, err.Error(), "")
		http.Redirect(w, r, h.mountPath+"/login", http.StatusTemporaryRedirect)
		return
	}

	h.finishExternalLogin(w, r, service, gothUser)
}

func (h *Handler) finishExternalLogin(w http.ResponseWriter, r *http.Request, service string, gothUser goth.User) {
	ctx := r.Context()

	slog.DebugContext(ctx, "authenticated user", slog.Any("user", gothUser))

	user := &User{
		Email:       gothUser.Email,
		Provider:    gothUser.Provider,
		DisplayName: getUserDisplayName(gothUser),
	}

	if subject, ok := gothUser.RawData["sub"].(string); ok {
		user.Subject = subject
	}

	if user.Subject == "" {
		user.Subject = gothUser.UserID
	}

	if user.Provider == "" {
		user.Provider = service
	}

	if user.Subject == "" || user.Provider == "" {
		slog.ErrorContext(ctx, "could not authenticate user", slog.Any("error", errors.New("user subject or provider missing")))
		h.recordEvent(r, service, store.OutcomeError, "user subject or provider missing", "")
		http.Redirect(w, r, h.mountPath+"/login", http.StatusTemporaryRedirect)
		return
	}

	if err := h.storeSessionUser(w, r, user); err != nil {
		slog.ErrorContext(ctx, "could not store session user", slog.Any("error", errors.WithStack(err)))
		http.Redirect(w, r, h.mountPath+"/login", http.StatusTemporaryRedirect)
		return
	}

	h.setLastUsedMethod(w, user.Provider)
	h.recordEvent(r, user.Provider, store.OutcomeSuccess, "", user.Subject)

	next := safeNext(h.popSessionNext(w, r), h.defaultNext)

	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := gothic.Logout(w, r); err != nil {
		slog.DebugContext(ctx, "could not clear provider session", slog.Any("error", errors.WithStack(err)))
	}

	if err := h.clearSession(w, r); err != nil && !errors.Is(err, errSessionNotFound) {
		slog.ErrorContext(ctx, "could not clear session", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.defaultNext, http.StatusTemporaryRedirect)
}

func getUserDisplayName(user goth.User) string {
	var displayName string

	if preferredUsername, ok := user.RawData["preferred_username"].(string); ok {
		displayName = preferredUsername
	}

	if displayName == "" {
		displayName = user.NickName
	}

	if displayName == "" {
		displayName = user.Name
	}

	if displayName == "" {
		displayName = user.UserID
	}

	return displayName
}
