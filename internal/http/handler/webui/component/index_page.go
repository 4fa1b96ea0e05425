package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	commonComp "github.com/bornholm/foyer/internal/http/handler/webui/common/component"
)

type IndexPageVModel struct {
	DisplayName string
	Provider    string
	IsAdmin     bool
}

func IndexPage(vmodel IndexPageVModel) templ.Component {
	return commonComp.Layout("Home", indexContent(vmodel))
}

func indexContent(vmodel IndexPageVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="profile"><h1>Welcome, %s</h1><p>You are signed in through %s.</p>`,
			templ.EscapeString(vmodel.DisplayName),
			templ.EscapeString(vmodel.Provider),
		); err != nil {
			return err
		}

		if vmodel.IsAdmin {
			if _, err := io.WriteString(w, `<p><a href="/admin/events">Login events</a></p>`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<p><a href="/auth/logout">Sign out</a></p></section>`)
		return err
	})
}
