package config

import "time"

type HTTP struct {
	BaseURL string  `env:"BASE_URL,expand" envDefault:""`
	Address string  `env:"ADDRESS,expand" envDefault:":3002"`
	Authn   Authn   `envPrefix:"AUTHN_"`
	Session Session `envPrefix:"SESSION_"`
	CSRF    CSRF    `envPrefix:"CSRF_"`
}

type Authn struct {
	Providers AuthProviders `envPrefix:"PROVIDERS_"`
	Password  Password      `envPrefix:"PASSWORD_"`

	// DefaultNext is the landing location used when a login carries no
	// next target or an unsafe one.
	DefaultNext string `env:"DEFAULT_NEXT" envDefault:"/"`
}

// Password configures the password login method. Credential verification is
// delegated to an external backend, addressed by a URL whose scheme selects
// the authenticator implementation.
type Password struct {
	Enabled bool          `env:"ENABLED" envDefault:"true"`
	Backend string        `env:"BACKEND,expand" envDefault:""`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type Session struct {
	Keys   []string `env:"KEYS" envSeparator:","`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY" envDefault:"true"`
	Secure   bool          `env:"SECURE" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE" envDefault:"24h"`
}

type CSRF struct {
	Key    string `env:"KEY"`
	Secure bool   `env:"SECURE" envDefault:"false"`
}

type AuthProviders struct {
	Google  OAuth2Provider `envPrefix:"GOOGLE_"`
	Github  OAuth2Provider `envPrefix:"GITHUB_"`
	Twitter OAuth2Provider `envPrefix:"TWITTER_"`
	OIDC    OIDCProvider   `envPrefix:"OIDC_"`
}

type OAuth2Provider struct {
	Key    string   `env:"KEY"`
	Secret string   `env:"SECRET"`
	Scopes []string `env:"SCOPES" envSeparator:"," envDefault:"profile,openid,email"`
}

type OIDCProvider struct {
	OAuth2Provider
	DiscoveryURL string `env:"DISCOVERY_URL"`
	Icon         string `env:"ICON"`
	Label        string `env:"LABEL"`

	// InPage renders an inline identifier form on the login screen instead
	// of redirecting immediately.
	InPage bool `env:"IN_PAGE" envDefault:"false"`
}
