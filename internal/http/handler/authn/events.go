package authn

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/foyer/internal/store"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// EventStore persists login activity. A nil store disables recording.
type EventStore interface {
	Create(ctx context.Context, event *store.LoginEvent) error
}

// recordEvent logs a login event, never failing the login flow itself.
func (h *Handler) recordEvent(r *http.Request, method string, outcome string, detail string, subject string) {
	metricLoginAttempts.WithLabelValues(method, outcome).Inc()

	if h.events == nil {
		return
	}

	ctx := r.Context()

	event := store.NewLoginEvent(xid.New().String(), method, outcome)
	event.Detail = detail
	event.Subject = subject
	event.Remote = r.RemoteAddr

	if err := h.events.Create(ctx, event); err != nil {
		slog.ErrorContext(ctx, "could not record login event", slog.Any("error", errors.WithStack(err)))
	}
}
