package authn

import (
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Middleware redirects anonymous visitors to the login page, remembering the
// page they asked for, and exposes the signed-in user through the request
// context otherwise.
func (h *Handler) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			user, err := h.retrieveSessionUser(r)
			if err != nil {
				if !errors.Is(err, errSessionNotFound) {
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}

				loginURL := h.mountPath + "/login?next=" + url.QueryEscape(r.URL.RequestURI())

				http.Redirect(w, r, loginURL, http.StatusTemporaryRedirect)
				return
			}

			ctx := setContextUser(r.Context(), user)

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}
