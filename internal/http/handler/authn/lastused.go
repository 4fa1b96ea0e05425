package authn

import (
	"net/http"
	"time"

	"github.com/bornholm/foyer/internal/login"
)

// lastUsedCookie remembers the login method of the previous successful
// login for a year. It only biases the default visibility of the login
// screen and is never required for correctness.
const lastUsedCookie = "login"

const lastUsedMaxAge = 365 * 24 * time.Hour

// lastUsedMethod returns the remembered login method, or "" when the cookie
// is absent or names a method that is no longer configured.
func (h *Handler) lastUsedMethod(r *http.Request) string {
	cookie, err := r.Cookie(lastUsedCookie)
	if err != nil {
		return ""
	}

	value := cookie.Value

	if value == login.MethodPassword {
		if !h.passwordEnabled {
			return ""
		}
		return value
	}

	if _, found := h.providers.ByID(value); !found {
		return ""
	}

	return value
}

func (h *Handler) setLastUsedMethod(w http.ResponseWriter, method string) {
	http.SetCookie(w, &http.Cookie{
		Name:     lastUsedCookie,
		Value:    method,
		Path:     "/",
		MaxAge:   int(lastUsedMaxAge.Seconds()),
		Expires:  time.Now().Add(lastUsedMaxAge),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
