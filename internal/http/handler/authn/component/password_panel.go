package component

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PasswordPanel renders the password method button and its collapsible
// login form. The panel starts expanded when the password method was the
// last one used or a password error is displayed.
func PasswordPanel(vmodel LoginPageVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.writef(`<h2 class="prompt">%s</h2>`, escape(vmodel.PasswordPrompt))

		buttonClass := "provider password-method"
		if vmodel.PasswordLastUsed {
			buttonClass += " last-used"
		}
		if vmodel.State.PasswordExpanded {
			buttonClass += " hidden"
		}

		hw.writef(`<a class="%s" data-expand-password href="%s">%s`,
			escape(buttonClass), escape(vmodel.PasswordHref), escape(vmodel.PasswordMethodLabel))
		if vmodel.PasswordLastUsed {
			hw.writef(`<span class="marker">(%s)</span>`, escape(vmodel.LastUsedLabel))
		}
		hw.write(`</a>`)

		panelClass := "password-panel"
		if !vmodel.State.PasswordExpanded {
			panelClass += " hidden"
		}

		hw.writef(`<div class="%s" id="password-panel">`, escape(panelClass))
		hw.writef(`<form id="password-form" method="post" action="%s">`, escape(vmodel.PasswordAction))

		hw.write(vmodel.CSRFField)

		if vmodel.PasswordError != "" {
			hw.writef(`<span class="form-error">%s</span>`, escape(vmodel.PasswordError))
		}

		for _, name := range vmodel.PasswordForm.GetFieldNames() {
			field, err := vmodel.PasswordForm.RenderField(name)
			if err != nil {
				return err
			}

			hw.component(ctx, field)
		}

		hw.writef(`<button type="submit">%s</button>`, escape(vmodel.SubmitLabel))
		hw.write(`</form></div>`)

		return hw.err
	})
}
