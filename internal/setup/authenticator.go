package setup

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bornholm/foyer/internal/config"
	"github.com/bornholm/foyer/internal/http/handler/authn"
	"github.com/pkg/errors"
)

// getPasswordAuthenticatorFromConfig builds the credential backend client.
// The backend URL scheme selects the implementation. A nil authenticator
// means the password method is unavailable.
var getPasswordAuthenticatorFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (authn.Authenticator, error) {
	backend := conf.HTTP.Authn.Password.Backend
	if backend == "" {
		return nil, nil
	}

	registry := NewRegistry[authn.Authenticator]()

	httpFactory := func(u *url.URL) (authn.Authenticator, error) {
		client := &http.Client{
			Timeout: conf.HTTP.Authn.Password.Timeout,
		}

		return authn.NewHTTPAuthenticator(u.String(), client), nil
	}

	registry.Register("http", httpFactory)
	registry.Register("https", httpFactory)

	authenticator, err := registry.From(backend)
	if err != nil {
		return nil, errors.Wrapf(err, "could not configure password authenticator from '%s'", backend)
	}

	return authenticator, nil
})
