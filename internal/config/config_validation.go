package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied by validate when a value is not supplied by any source.
const (
	DefaultTrainsFile = "localdb/trains.json"
	DefaultUsersFile  = "localdb/users.json"
	DefaultLogLevel   = "info"
)

// validate fills in defaults for unset fields and rejects values that would
// break the application at runtime.
func (c *Config) validate() error {
	if c.Storage.TrainsFile == "" {
		c.Storage.TrainsFile = DefaultTrainsFile
	}
	if c.Storage.UsersFile == "" {
		c.Storage.UsersFile = DefaultUsersFile
	}
	if c.Storage.TrainsFile == c.Storage.UsersFile {
		return fmt.Errorf("%w: trains and users collections must not share a file", ErrInvalidConfig)
	}

	if c.App.BcryptCost == 0 {
		c.App.BcryptCost = bcrypt.DefaultCost
	}
	if c.App.BcryptCost < bcrypt.MinCost || c.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range [%d, %d]",
			ErrInvalidConfig, c.App.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if c.App.LogLevel == "" {
		c.App.LogLevel = DefaultLogLevel
	}

	return nil
}
