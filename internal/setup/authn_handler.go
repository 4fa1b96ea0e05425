package setup

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bornholm/foyer/internal/config"
	"github.com/bornholm/foyer/internal/crypto"
	"github.com/bornholm/foyer/internal/http/handler/authn"
	"github.com/bornholm/foyer/internal/login"
	"github.com/bornholm/foyer/internal/markup"
	"github.com/bornholm/foyer/internal/store/repository/event"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"github.com/markbates/goth/providers/openidConnect"
	"github.com/markbates/goth/providers/twitter"
	"github.com/pkg/errors"
)

func getAuthnHandlerFromConfig(ctx context.Context, conf *config.Config) (*authn.Handler, error) {
	keyPairs := make([][]byte, 0)
	if len(conf.HTTP.Session.Keys) == 0 {
		key, err := crypto.RandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		keyPairs = append(keyPairs, key)
	} else {
		for _, k := range conf.HTTP.Session.Keys {
			keyPairs = append(keyPairs, []byte(k))
		}
	}

	sessionStore := sessions.NewCookieStore(keyPairs...)

	sessionStore.MaxAge(int(conf.HTTP.Session.Cookie.MaxAge.Seconds()))
	sessionStore.Options.Path = conf.HTTP.Session.Cookie.Path
	sessionStore.Options.HttpOnly = conf.HTTP.Session.Cookie.HTTPOnly
	sessionStore.Options.Secure = conf.HTTP.Session.Cookie.Secure
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	callbackURL := func(service string) string {
		return fmt.Sprintf("%s/auth/external/callback?service=%s", conf.HTTP.BaseURL, service)
	}

	// Configure providers. Configuration order is display order: the first
	// two are always visible, the rest stays behind the "show more"
	// control.

	gothProviders := make([]goth.Provider, 0)
	providers := make(login.List, 0)

	if conf.HTTP.Authn.Providers.Google.Key != "" && conf.HTTP.Authn.Providers.Google.Secret != "" {
		googleProvider := google.New(
			conf.HTTP.Authn.Providers.Google.Key,
			conf.HTTP.Authn.Providers.Google.Secret,
			callbackURL("google"),
			conf.HTTP.Authn.Providers.Google.Scopes...,
		)

		gothProviders = append(gothProviders, googleProvider)

		providers = append(providers, login.Provider{
			ID:    googleProvider.Name(),
			Title: "Google",
			Icon:  "google.svg",
		})
	}

	if conf.HTTP.Authn.Providers.Github.Key != "" && conf.HTTP.Authn.Providers.Github.Secret != "" {
		githubProvider := github.New(
			conf.HTTP.Authn.Providers.Github.Key,
			conf.HTTP.Authn.Providers.Github.Secret,
			callbackURL("github"),
			conf.HTTP.Authn.Providers.Github.Scopes...,
		)

		gothProviders = append(gothProviders, githubProvider)

		providers = append(providers, login.Provider{
			ID:    githubProvider.Name(),
			Title: "GitHub",
			Icon:  "github.svg",
		})
	}

	if conf.HTTP.Authn.Providers.Twitter.Key != "" && conf.HTTP.Authn.Providers.Twitter.Secret != "" {
		twitterProvider := twitter.New(
			conf.HTTP.Authn.Providers.Twitter.Key,
			conf.HTTP.Authn.Providers.Twitter.Secret,
			callbackURL("twitter"),
		)

		gothProviders = append(gothProviders, twitterProvider)

		providers = append(providers, login.Provider{
			ID:    twitterProvider.Name(),
			Title: "Twitter",
			Icon:  "twitter.svg",
		})
	}

	if conf.HTTP.Authn.Providers.OIDC.Key != "" && conf.HTTP.Authn.Providers.OIDC.Secret != "" {
		oidcProvider, err := openidConnect.New(
			conf.HTTP.Authn.Providers.OIDC.Key,
			conf.HTTP.Authn.Providers.OIDC.Secret,
			callbackURL("openid-connect"),
			conf.HTTP.Authn.Providers.OIDC.DiscoveryURL,
			conf.HTTP.Authn.Providers.OIDC.Scopes...,
		)
		if err != nil {
			return nil, errors.Wrap(err, "could not configure oidc provider")
		}

		gothProviders = append(gothProviders, oidcProvider)

		title := conf.HTTP.Authn.Providers.OIDC.Label
		if title == "" {
			title = "OpenID"
		}

		icon := conf.HTTP.Authn.Providers.OIDC.Icon
		if icon == "" {
			icon = "openid.svg"
		}

		providers = append(providers, login.Provider{
			ID:     oidcProvider.Name(),
			Title:  title,
			Icon:   icon,
			InPage: conf.HTTP.Authn.Providers.OIDC.InPage,
		})
	}

	goth.UseProviders(gothProviders...)
	gothic.Store = sessionStore

	authenticator, err := getPasswordAuthenticatorFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure password authenticator")
	}

	dataStore, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure store from config")
	}

	noticeHTML, err := markup.RenderMarkdown(conf.UI.Notice)
	if err != nil {
		return nil, errors.Wrap(err, "could not render login notice")
	}

	opts := []authn.OptionFunc{
		authn.WithProviders(providers...),
		authn.WithMountPath("/auth"),
		authn.WithPasswordEnabled(conf.HTTP.Authn.Password.Enabled && authenticator != nil),
		authn.WithDefaultNext(conf.HTTP.Authn.DefaultNext),
		authn.WithPrompts(conf.UI.LoginPrompt, conf.UI.PasswordPrompt),
		authn.WithNoticeHTML(noticeHTML),
		authn.WithEvents(event.NewRepository(dataStore)),
	}

	handler := authn.NewHandler(
		sessionStore,
		authenticator,
		opts...,
	)

	return handler, nil
}
