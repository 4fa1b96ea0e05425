package authn

import (
	"net/http"

	"github.com/bornholm/foyer/internal/login"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/singleflight"
)

type Handler struct {
	mux           *http.ServeMux
	sessionStore  sessions.Store
	sessionName   string
	providers     login.List
	authenticator Authenticator
	mountPath     string

	passwordEnabled bool
	defaultNext     string
	loginPrompt     string
	passwordPrompt  string
	noticeHTML      string

	events  EventStore
	submits singleflight.Group
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Login pages carry per-user state and must not be cached by shared
	// caches.
	w.Header().Set("Cache-Control", "private, no-cache")
	w.Header().Set("Expires", "Fri, 01 Jan 1990 00:00:00 GMT")

	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessionStore sessions.Store, authenticator Authenticator, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:             http.NewServeMux(),
		sessionStore:    sessionStore,
		sessionName:     opts.SessionName,
		providers:       opts.Providers,
		authenticator:   authenticator,
		mountPath:       opts.MountPath,
		passwordEnabled: opts.PasswordEnabled,
		defaultNext:     opts.DefaultNext,
		loginPrompt:     opts.LoginPrompt,
		passwordPrompt:  opts.PasswordPrompt,
		noticeHTML:      opts.NoticeHTML,
		events:          opts.Events,
	}

	h.mux.HandleFunc("GET /login", h.getLoginPage)
	h.mux.HandleFunc("GET /external", h.handleExternal)
	h.mux.HandleFunc("GET /external/callback", h.handleExternalCallback)
	h.mux.HandleFunc("POST /login/password", h.handlePasswordLogin)
	h.mux.HandleFunc("GET /logout", h.handleLogout)

	return h
}

var _ http.Handler = &Handler{}
