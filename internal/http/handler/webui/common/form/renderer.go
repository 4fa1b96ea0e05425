package form

import (
	"github.com/a-h/templ"
)

// DefaultFieldRenderer provides basic HTML field rendering
type DefaultFieldRenderer struct{}

// RenderField renders a field using basic HTML
func (r *DefaultFieldRenderer) RenderField(ctx FieldContext) templ.Component {
	switch ctx.Type {
	case "hidden":
		return HiddenInput(ctx)
	default:
		return DefaultInput(ctx)
	}
}

var _ FieldRenderer = &DefaultFieldRenderer{}

// HiddenRenderer renders hidden input fields
type HiddenRenderer struct{}

func (r *HiddenRenderer) RenderField(ctx FieldContext) templ.Component {
	return HiddenInput(ctx)
}

var _ FieldRenderer = &HiddenRenderer{}
