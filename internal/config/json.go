package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type jsonConfig struct {
	App struct {
		BcryptCost int    `json:"bcrypt_cost"`
		LogLevel   string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		TrainsFile string `json:"trains_file"`
		UsersFile  string `json:"users_file"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &Config{
		App: App{
			BcryptCost: jsonCfg.App.BcryptCost,
			LogLevel:   jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			TrainsFile: jsonCfg.Storage.TrainsFile,
			UsersFile:  jsonCfg.Storage.UsersFile,
		},
	}, nil
}
