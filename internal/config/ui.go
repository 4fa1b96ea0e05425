package config

type UI struct {
	// LoginPrompt and PasswordPrompt override the two headline prompts
	// shown above the provider list and above the password panel. Empty
	// values fall back to the translated defaults.
	LoginPrompt    string `env:"LOGIN_PROMPT"`
	PasswordPrompt string `env:"PASSWORD_PROMPT"`

	// Notice is an optional markdown snippet rendered above the provider
	// list, e.g. a maintenance announcement.
	Notice string `env:"NOTICE"`
}
