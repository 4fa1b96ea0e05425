package webui

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/foyer/internal/http/authz"
	"github.com/bornholm/foyer/internal/http/handler/authn"
	"github.com/bornholm/foyer/internal/http/handler/webui/common"
	"github.com/bornholm/foyer/internal/http/handler/webui/component"
	"github.com/pkg/errors"
)

func (h *Handler) getIndexPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillIndexPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	indexPage := component.IndexPage(*vmodel)

	templ.Handler(indexPage).ServeHTTP(w, r)
}

func (h *Handler) fillIndexPageViewModel(r *http.Request) (*component.IndexPageVModel, error) {
	vmodel := &component.IndexPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillIndexPageUserVModel,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillIndexPageUserVModel(ctx context.Context, vmodel *component.IndexPageVModel, r *http.Request) error {
	user := authn.ContextUser(ctx)
	if user == nil {
		return errors.New("no user in context")
	}

	vmodel.DisplayName = user.DisplayName
	if vmodel.DisplayName == "" {
		vmodel.DisplayName = user.Subject
	}

	vmodel.Provider = user.Provider
	vmodel.IsAdmin = user.Role == authz.RoleAdmin

	return nil
}
