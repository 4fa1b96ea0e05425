package form

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// DefaultInput renders a labelled input with its inline error, if any.
func DefaultInput(fctx FieldContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		inputType := fctx.Type
		if inputType == "" {
			inputType = "text"
		}

		if fctx.Label != "" {
			if _, err := fmt.Fprintf(w, `<label for="field-%[1]s">%[2]s</label>`, templ.EscapeString(fctx.Name), templ.EscapeString(fctx.Label)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `<input id="field-%[1]s" name="%[1]s" type="%[2]s" value="%[3]s"`,
			templ.EscapeString(fctx.Name), templ.EscapeString(inputType), templ.EscapeString(fctx.Value)); err != nil {
			return err
		}

		if fctx.Placeholder != "" {
			if _, err := fmt.Fprintf(w, ` placeholder="%s"`, templ.EscapeString(fctx.Placeholder)); err != nil {
				return err
			}
		}

		if fctx.Required {
			if _, err := io.WriteString(w, " required"); err != nil {
				return err
			}
		}

		if fctx.Autofocus {
			if _, err := io.WriteString(w, " autofocus"); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}

		if fctx.Error != "" {
			if _, err := fmt.Fprintf(w, `<span class="field-error" id="field-%s-error">%s</span>`,
				templ.EscapeString(fctx.Name), templ.EscapeString(fctx.Error)); err != nil {
				return err
			}
		}

		return nil
	})
}

// HiddenInput renders an unlabelled hidden input.
func HiddenInput(fctx FieldContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<input name="%s" type="hidden" value="%s">`,
			templ.EscapeString(fctx.Name), templ.EscapeString(fctx.Value))
		return err
	})
}
