package setup

import (
	"context"
	gohttp "net/http"

	"github.com/bornholm/foyer/internal/config"
	"github.com/bornholm/foyer/internal/crypto"
	"github.com/bornholm/foyer/internal/http"
	"github.com/bornholm/foyer/internal/http/handler/icons"
	"github.com/bornholm/foyer/internal/http/handler/metrics"
	"github.com/bornholm/foyer/internal/http/handler/status"
	"github.com/bornholm/foyer/internal/http/handler/webui"
	"github.com/bornholm/foyer/internal/http/handler/webui/admin"
	"github.com/bornholm/foyer/internal/http/handler/webui/common"
	"github.com/bornholm/foyer/internal/http/i18n"
	"github.com/bornholm/foyer/internal/http/pprof"
	"github.com/bornholm/foyer/internal/store/repository/event"
	"github.com/gorilla/csrf"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	authnHandler, err := getAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authn handler from config")
	}

	authnMiddleware := authnHandler.Middleware()
	i18nMiddleware := i18n.Middleware(conf.I18n.DefaultLanguage)

	csrfMiddleware, err := getCSRFMiddlewareFromConfig(conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure csrf middleware from config")
	}

	assets := common.NewHandler()

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/assets/", assets),
		http.WithMount("/auth/", i18nMiddleware(csrfMiddleware(authnHandler))),
		http.WithMount("/icons/", icons.NewHandler(conf.Storage.Icons.Dir)),
		http.WithMount("/metrics/", authnMiddleware(metrics.NewHandler())),
		http.WithMount("/status/", status.NewHandler()),
		http.WithMount("/pprof/", authnMiddleware(pprof.NewHandler())),
	}

	dataStore, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure store from config")
	}

	adminHandler := admin.NewHandler(event.NewRepository(dataStore))
	options = append(options, http.WithMount("/admin/", i18nMiddleware(authnMiddleware(adminHandler))))

	webuiHandler := webui.NewHandler()
	options = append(options, http.WithMount("/", i18nMiddleware(authnMiddleware(webuiHandler))))

	server := http.NewServer(options...)

	return server, nil
}

func getCSRFMiddlewareFromConfig(conf *config.Config) (func(h gohttp.Handler) gohttp.Handler, error) {
	key := []byte(conf.HTTP.CSRF.Key)
	if len(key) == 0 {
		generated, err := crypto.RandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate csrf key")
		}

		key = generated
	}

	middleware := csrf.Protect(
		key,
		csrf.Secure(conf.HTTP.CSRF.Secure),
		csrf.Path("/"),
		csrf.FieldName("csrf_token"),
	)

	return middleware, nil
}
