package admin

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/foyer/internal/http/handler/webui/admin/component"
	"github.com/bornholm/foyer/internal/http/handler/webui/common"
	"github.com/bornholm/foyer/internal/login"
	"github.com/bornholm/foyer/internal/store"
	"github.com/pkg/errors"
)

const eventsPageLimit = 100

func (h *Handler) getEventsPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillEventsPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	eventsPage := component.EventsPage(*vmodel)

	templ.Handler(eventsPage).ServeHTTP(w, r)
}

func (h *Handler) fillEventsPageViewModel(r *http.Request) (*component.EventsPageVModel, error) {
	vmodel := &component.EventsPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillEventsPageEventsVModel,
		h.fillEventsPageTotalsVModel,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillEventsPageEventsVModel(ctx context.Context, vmodel *component.EventsPageVModel, r *http.Request) error {
	events, err := h.events.ListRecent(ctx, eventsPageLimit)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Events = events

	return nil
}

func (h *Handler) fillEventsPageTotalsVModel(ctx context.Context, vmodel *component.EventsPageVModel, r *http.Request) error {
	successes, err := h.events.CountByOutcome(ctx, "", store.OutcomeSuccess)
	if err != nil {
		return errors.WithStack(err)
	}

	failures, err := h.events.CountByOutcome(ctx, "", store.OutcomeFailure)
	if err != nil {
		return errors.WithStack(err)
	}

	passwordFailures, err := h.events.CountByOutcome(ctx, login.MethodPassword, store.OutcomeFailure)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.TotalSuccesses = successes
	vmodel.TotalFailures = failures
	vmodel.PasswordFailures = passwordFailures

	return nil
}
