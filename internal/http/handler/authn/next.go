package authn

import (
	"net/http"
	"net/url"
	"strings"
)

// safeNext returns the next redirect target when it is a same-site relative
// path, the fallback otherwise. The raw value is otherwise passed through
// unchanged.
func safeNext(raw string, fallback string) string {
	if raw == "" {
		return fallback
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fallback
	}

	if u.IsAbs() || u.Host != "" {
		return fallback
	}

	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return fallback
	}

	return raw
}

// isAsync reports whether the request comes from the asynchronous
// submission path and expects a JSON answer.
func isAsync(r *http.Request) bool {
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}

	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
