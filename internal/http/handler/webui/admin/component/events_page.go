package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/bornholm/foyer/internal/store"

	commonComp "github.com/bornholm/foyer/internal/http/handler/webui/common/component"
)

type EventsPageVModel struct {
	Events []*store.LoginEvent

	TotalSuccesses   int64
	TotalFailures    int64
	PasswordFailures int64
}

func EventsPage(vmodel EventsPageVModel) templ.Component {
	return commonComp.Layout("Login events", eventsContent(vmodel))
}

func eventsContent(vmodel EventsPageVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="events"><h1>Login events</h1><p class="events-totals">%d successful sign-ins, %d failures (%d with a password)</p>`,
			vmodel.TotalSuccesses, vmodel.TotalFailures, vmodel.PasswordFailures,
		); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<table class="events-table"><thead><tr><th>Time</th><th>Method</th><th>Outcome</th><th>Subject</th><th>Detail</th></tr></thead><tbody>`); err != nil {
			return err
		}

		for _, event := range vmodel.Events {
			if _, err := fmt.Fprintf(w,
				`<tr class="event event-%s"><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(event.Outcome),
				templ.EscapeString(event.CreatedAt.Format("2006-01-02 15:04:05")),
				templ.EscapeString(event.Method),
				templ.EscapeString(event.Outcome),
				templ.EscapeString(event.Subject),
				templ.EscapeString(event.Detail),
			); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}
