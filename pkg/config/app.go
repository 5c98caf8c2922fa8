package config

// App holds process-wide settings shared by the CLI and the HTTP server.
type App struct {
	Name     string `env:"APP_NAME" envDefault:"safeinput"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}
