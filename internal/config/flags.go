package config

import "flag"

// parseFlags parses all configuration flags.
//
// Flags:
//
//	-trains-file path of the trains JSON document
//	-users-file path of the users JSON document
//	-bcrypt-cost password hashing cost
//	-log-level minimum log level (debug, info, warn, error)
//	-c/-config json file path with configs
func parseFlags() *Config {
	var trainsFile string
	var usersFile string
	var bcryptCost int
	var logLevel string
	var jsonConfigPath string

	flag.StringVar(&trainsFile, "trains-file", "", "Trains JSON document path")
	flag.StringVar(&usersFile, "users-file", "", "Users JSON document path")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt hashing cost")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		App: App{
			BcryptCost: bcryptCost,
			LogLevel:   logLevel,
		},
		Storage: Storage{
			TrainsFile: trainsFile,
			UsersFile:  usersFile,
		},
		JSONFilePath: jsonConfigPath,
	}
}
