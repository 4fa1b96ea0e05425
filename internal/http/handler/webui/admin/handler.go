package admin

import (
	"net/http"

	"github.com/bornholm/foyer/internal/http/authz"
	"github.com/bornholm/foyer/internal/store/repository/event"

	commonComp "github.com/bornholm/foyer/internal/http/handler/webui/common/component"
)

type Handler struct {
	mux    *http.ServeMux
	events *event.Repository
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(events *event.Repository) *Handler {
	h := &Handler{
		mux:    http.NewServeMux(),
		events: events,
	}

	assertAdmin := authz.Middleware(http.HandlerFunc(h.getForbiddenPage), authz.Has(authz.RoleAdmin))

	h.mux.Handle("GET /", assertAdmin(http.HandlerFunc(redirect("/admin/events"))))
	h.mux.Handle("GET /events", assertAdmin(http.HandlerFunc(h.getEventsPage)))

	return h
}

var _ http.Handler = &Handler{}

func redirect(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		redirectURL := commonComp.BaseURL(r.Context(), commonComp.WithPath(path))
		http.Redirect(w, r, string(redirectURL), http.StatusTemporaryRedirect)
	}
}
