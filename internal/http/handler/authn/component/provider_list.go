package component

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/bornholm/foyer/internal/login"
)

// ProviderList renders one button per configured provider, in configuration
// order, plus the show-more affordance. Hidden elements are rendered with a
// "hidden" class so the no-script links and the client-side toggles agree
// on the same markup.
func ProviderList(vmodel LoginPageVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.write(`<ul class="login-providers">`)

		for _, button := range vmodel.Buttons {
			renderProviderItem(ctx, hw, vmodel, button)
		}

		if vmodel.State.ShowMore {
			hw.writef(`<li class="more"><a class="show-more" data-show-more href="%s">%s</a></li>`,
				escape(vmodel.ShowMoreHref), escape(vmodel.ShowMoreLabel))
		}

		hw.write(`</ul>`)

		return hw.err
	})
}

func renderProviderItem(ctx context.Context, hw *htmlWriter, vmodel LoginPageVModel, button login.Button) {
	class := "provider-item"
	if !button.Visible {
		class += " hidden"
	}
	if button.LastUsed {
		class += " last-used"
	}

	p := button.Provider

	hw.writef(`<li class="%s" id="provider-%s">`, escape(class), escape(p.ID))

	href := button.Href
	extra := ""
	if p.InPage {
		href = vmodel.ToggleHrefs[p.ID]
		extra = ` data-toggle-form="provider-form-` + escape(p.ID) + `"`
	}

	hw.writef(`<a class="provider" href="%s"%s>`, escape(href), extra)

	if p.Icon != "" {
		hw.writef(`<img class="icon" src="/icons/%s" alt="">`, escape(p.Icon))
	}

	hw.write(escape(p.Title))

	if button.LastUsed {
		hw.writef(`<span class="marker">(%s)</span>`, escape(vmodel.LastUsedLabel))
	}

	hw.write(`</a>`)

	if p.InPage {
		renderProviderForm(ctx, hw, vmodel, p)
	}

	hw.write(`</li>`)
}

func renderProviderForm(ctx context.Context, hw *htmlWriter, vmodel LoginPageVModel, p login.Provider) {
	f, exists := vmodel.ProviderForms[p.ID]
	if !exists {
		return
	}

	class := "provider-form"
	if !vmodel.State.Forms[p.ID] {
		class += " hidden"
	}

	hw.writef(`<div class="%s" id="provider-form-%s">`, escape(class), escape(p.ID))
	hw.writef(`<form method="get" action="%s">`, escape(vmodel.ExternalAction))

	for _, name := range f.GetFieldNames() {
		field, err := f.RenderField(name)
		if err != nil {
			hw.err = err
			return
		}

		hw.component(ctx, field)
	}

	hw.writef(`<button type="submit">%s</button>`, escape(vmodel.SubmitLabel))
	hw.write(`</form></div>`)
}
