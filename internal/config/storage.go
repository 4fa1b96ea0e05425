package config

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
	Icons    Icons    `envPrefix:"ICONS_"`
}

type Database struct {
	DSN string `env:"DSN,expand" envDefault:"data/store.sqlite"`
}

// Icons points at the directory holding custom provider icon files.
type Icons struct {
	Dir string `env:"DIR,expand" envDefault:"data/icons"`
}
