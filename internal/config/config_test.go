package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestConfig_Validate_FillsDefaults(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.validate())

	assert.Equal(t, DefaultTrainsFile, cfg.Storage.TrainsFile)
	assert.Equal(t, DefaultUsersFile, cfg.Storage.UsersFile)
	assert.Equal(t, bcrypt.DefaultCost, cfg.App.BcryptCost)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
}

func TestConfig_Validate_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		App:     App{BcryptCost: bcrypt.MinCost, LogLevel: "debug"},
		Storage: Storage{TrainsFile: "data/t.json", UsersFile: "data/u.json"},
	}

	require.NoError(t, cfg.validate())

	assert.Equal(t, "data/t.json", cfg.Storage.TrainsFile)
	assert.Equal(t, "data/u.json", cfg.Storage.UsersFile)
	assert.Equal(t, bcrypt.MinCost, cfg.App.BcryptCost)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestConfig_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "trains and users sharing one file",
			cfg:  Config{Storage: Storage{TrainsFile: "db.json", UsersFile: "db.json"}},
		},
		{
			name: "bcrypt cost above maximum",
			cfg:  Config{App: App{BcryptCost: bcrypt.MaxCost + 1}},
		},
		{
			name: "bcrypt cost below minimum",
			cfg:  Config{App: App{BcryptCost: bcrypt.MinCost - 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseJSON(t *testing.T) {
	t.Run("reads all sections", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"app": {"bcrypt_cost": 6, "log_level": "debug"},
			"storage": {"trains_file": "x/trains.json", "users_file": "x/users.json"}
		}`), 0644))

		cfg, err := parseJSON(path)
		require.NoError(t, err)

		assert.Equal(t, 6, cfg.App.BcryptCost)
		assert.Equal(t, "debug", cfg.App.LogLevel)
		assert.Equal(t, "x/trains.json", cfg.Storage.TrainsFile)
		assert.Equal(t, "x/users.json", cfg.Storage.UsersFile)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"app":`), 0644))

		_, err := parseJSON(path)
		assert.Error(t, err)
	})
}
