package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can emit
// markup without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) writef(format string, args ...any) {
	if hw.err != nil {
		return
	}

	_, hw.err = fmt.Fprintf(hw.w, format, args...)
}

func (hw *htmlWriter) write(s string) {
	if hw.err != nil {
		return
	}

	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) component(ctx context.Context, c templ.Component) {
	if hw.err != nil {
		return
	}

	hw.err = c.Render(ctx, hw.w)
}

func escape(s string) string {
	return templ.EscapeString(s)
}
