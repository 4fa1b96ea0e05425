package authn

import (
	"github.com/bornholm/foyer/internal/login"
)

type Options struct {
	SessionName string
	Providers   login.List

	// MountPath is the prefix the handler is mounted under, used to build
	// absolute links on the login page.
	MountPath string

	// PasswordEnabled exposes the password panel and its endpoint.
	PasswordEnabled bool

	// DefaultNext is the landing location used when a login carries no
	// next target or an unsafe one.
	DefaultNext string

	// LoginPrompt and PasswordPrompt override the translated headline
	// prompts when non-empty.
	LoginPrompt    string
	PasswordPrompt string

	// NoticeHTML is an optional pre-rendered announcement shown above the
	// provider list.
	NoticeHTML string

	Events EventStore
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		SessionName:     "foyer_auth",
		Providers:       make(login.List, 0),
		MountPath:       "/auth",
		PasswordEnabled: true,
		DefaultNext:     "/",
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithProviders(providers ...login.Provider) OptionFunc {
	return func(opts *Options) {
		opts.Providers = providers
	}
}

func WithMountPath(mountPath string) OptionFunc {
	return func(opts *Options) {
		opts.MountPath = mountPath
	}
}

func WithSessionName(sessionName string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = sessionName
	}
}

func WithPasswordEnabled(enabled bool) OptionFunc {
	return func(opts *Options) {
		opts.PasswordEnabled = enabled
	}
}

func WithDefaultNext(next string) OptionFunc {
	return func(opts *Options) {
		opts.DefaultNext = next
	}
}

func WithPrompts(loginPrompt, passwordPrompt string) OptionFunc {
	return func(opts *Options) {
		opts.LoginPrompt = loginPrompt
		opts.PasswordPrompt = passwordPrompt
	}
}

func WithNoticeHTML(html string) OptionFunc {
	return func(opts *Options) {
		opts.NoticeHTML = html
	}
}

func WithEvents(events EventStore) OptionFunc {
	return func(opts *Options) {
		opts.Events = events
	}
}
