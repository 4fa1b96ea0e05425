package authn

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/foyer/internal/http/handler/authn/component"
	"github.com/bornholm/foyer/internal/http/handler/webui/common/form"
	httpURL "github.com/bornholm/foyer/internal/http/url"
	"github.com/bornholm/foyer/internal/login"
	"github.com/gorilla/csrf"
)

// noopView satisfies login.View for renders that materialize the
// controller's state instead of reacting to view calls.
type noopView struct{}

func (noopView) ShowProviderButton(id string) {}
func (noopView) ShowSecondaryProviders()      {}
func (noopView) HideShowMoreControl()         {}
func (noopView) ExpandPasswordPanel()         {}
func (noopView) ShowProviderForm(id string)   {}
func (noopView) HideProviderForm(id string)   {}
func (noopView) FocusProviderForm(id string)  {}

var _ login.View = noopView{}

// loginRender carries the error state of a failed submission back into the
// login page render.
type loginRender struct {
	formErrors    map[string]string
	providerForms map[string]*form.Form
	passwordForm  *form.Form
}

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLoginPage(w, r, &loginRender{})
}

func (h *Handler) renderLoginPage(w http.ResponseWriter, r *http.Request, render *loginRender) {
	ctx := r.Context()

	next := r.URL.Query().Get("next")
	if next == "" && render.passwordForm != nil {
		next = render.passwordForm.Values[fieldNext]
	}

	lastUsed := h.lastUsedMethod(r)

	formErrors := render.formErrors
	if formErrors == nil {
		formErrors = map[string]string{}
	}

	ctrl := login.Initialize(noopView{}, login.Data{
		Providers:  h.providers,
		LastUsed:   lastUsed,
		FormErrors: formErrors,
	})

	// The no-script links replay user activations through query
	// parameters; the controller applies the same transitions the
	// client-side enhancement would.
	query := r.URL.Query()

	if query.Get("more") == "1" {
		ctrl.ActivateShowMore()
	}

	if id := query.Get("form"); id != "" {
		ctrl.ActivateProvider(id)
	}

	if query.Get("method") == login.MethodPassword {
		ctrl.ActivateProvider(login.MethodPassword)
	}

	state := ctrl.State()

	vmodel := component.LoginPageVModel{
		LoginPrompt:    h.prompt(r, h.loginPrompt, "login.prompt_providers", "Sign in with"),
		PasswordPrompt: h.prompt(r, h.passwordPrompt, "login.prompt_password", "Or use your password"),
		NoticeHTML:     h.noticeHTML,

		Buttons:       login.Buttons(h.providers, lastUsed, h.mountPath+"/external", next, state),
		State:         state,
		ToggleHrefs:   h.toggleHrefs(r),
		ShowMoreHref:  httpURL.Mutate(r.URL, httpURL.WithoutValues("more", "*"), httpURL.WithValues("more", "1")).String(),
		ShowMoreLabel: translated(ctx, "login.show_more", "Show more options"),
		LastUsedLabel: translated(ctx, "login.last_used", "last used"),

		ProviderForms:  h.providerForms(next, state, render),
		ExternalAction: h.mountPath + "/external",

		PasswordEnabled:     h.passwordEnabled,
		PasswordLastUsed:    lastUsed == login.MethodPassword,
		PasswordHref:        httpURL.Mutate(r.URL, httpURL.WithoutValues("method", "*"), httpURL.WithValues("method", login.MethodPassword)).String(),
		PasswordMethodLabel: translated(ctx, "login.password_method", "Password"),
		PasswordForm:        h.passwordForm(next, render),
		PasswordError:       formErrors[login.MethodPassword],
		PasswordAction:      h.mountPath + "/login/password",
		SubmitLabel:         translated(ctx, "login.submit", "Sign in"),

		CSRFField: string(csrf.TemplateField(r)),
	}

	loginPage := component.LoginPage(vmodel)

	templ.Handler(loginPage).ServeHTTP(w, r)
}

func (h *Handler) prompt(r *http.Request, override string, key string, fallback string) string {
	if override != "" {
		return override
	}

	return translated(r.Context(), key, fallback)
}

// toggleHrefs builds, per in-page provider, the link that toggles its
// inline form on the no-script path.
func (h *Handler) toggleHrefs(r *http.Request) map[string]string {
	hrefs := make(map[string]string)

	active := r.URL.Query().Get("form")

	for _, p := range h.providers {
		if !p.InPage {
			continue
		}

		if p.ID == active {
			hrefs[p.ID] = httpURL.Mutate(r.URL, httpURL.WithoutValues("form", "*")).String()
			continue
		}

		hrefs[p.ID] = httpURL.Mutate(r.URL, httpURL.WithoutValues("form", "*"), httpURL.WithValues("form", p.ID)).String()
	}

	return hrefs
}

func (h *Handler) providerForms(next string, state login.VisibilityState, render *loginRender) map[string]*form.Form {
	forms := make(map[string]*form.Form)

	for _, p := range h.providers {
		if !p.InPage {
			continue
		}

		f, exists := render.providerForms[p.ID]
		if !exists {
			f = h.newProviderForm(p, next)
		}

		if state.FocusedForm == p.ID {
			f.SetAutofocus(fieldIdentifier)
		}

		forms[p.ID] = f
	}

	return forms
}

func (h *Handler) passwordForm(next string, render *loginRender) *form.Form {
	if render.passwordForm != nil {
		return render.passwordForm
	}

	return h.newPasswordForm(next)
}
