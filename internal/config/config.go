package config

// Config is the top-level configuration container for railbook. It is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file, in that order of precedence.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the bcrypt cost and the
	// log level.
	App App `envPrefix:"APP_"`

	// Storage holds the paths of the JSON collection files.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// BcryptCost is the cost parameter for password hashing.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel is the minimum zerolog level emitted ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage holds the file locations of the persisted collections.
type Storage struct {
	// TrainsFile is the path of the JSON document holding the train catalog.
	// Env: STORAGE_TRAINS_FILE
	TrainsFile string `env:"TRAINS_FILE"`

	// UsersFile is the path of the JSON document holding registered users.
	// Env: STORAGE_USERS_FILE
	UsersFile string `env:"USERS_FILE"`
}

// GetConfig builds the application configuration from environment variables,
// command-line flags, and an optional JSON config file, then validates it and
// fills in defaults.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
