package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type ErrorPageVModel struct {
	Message string
}

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="error"><h1>Something went wrong</h1><p>%s</p><p><a href="/">Back to home</a></p></section>`, templ.EscapeString(vmodel.Message))
		return err
	})

	return Layout("Error", body)
}
