package component

import (
	"context"
	"io"

	"github.com/a-h/templ"
	commonComp "github.com/bornholm/foyer/internal/http/handler/webui/common/component"
	"github.com/bornholm/foyer/internal/http/handler/webui/common/form"
	"github.com/bornholm/foyer/internal/login"
)

type LoginPageVModel struct {
	LoginPrompt    string
	PasswordPrompt string
	NoticeHTML     string

	Buttons       []login.Button
	State         login.VisibilityState
	ToggleHrefs   map[string]string
	ShowMoreHref  string
	ShowMoreLabel string
	LastUsedLabel string

	ProviderForms  map[string]*form.Form
	ExternalAction string

	PasswordEnabled     bool
	PasswordLastUsed    bool
	PasswordHref        string
	PasswordMethodLabel string
	PasswordForm        *form.Form
	PasswordError       string
	PasswordAction      string
	SubmitLabel         string

	// CSRFField is the pre-rendered hidden CSRF input of the password form.
	CSRFField string
}

func LoginPage(vmodel LoginPageVModel) templ.Component {
	return commonComp.Layout("Sign in", loginContent(vmodel))
}

func loginContent(vmodel LoginPageVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		if vmodel.NoticeHTML != "" {
			hw.writef(`<div class="login-notice">%s</div>`, vmodel.NoticeHTML)
		}

		hw.writef(`<h1 class="prompt">%s</h1>`, escape(vmodel.LoginPrompt))

		hw.component(ctx, ProviderList(vmodel))

		if vmodel.PasswordEnabled {
			hw.component(ctx, PasswordPanel(vmodel))
		}

		hw.write(`<script src="/assets/login.js" defer></script>`)

		return hw.err
	})
}
