package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/lminimalist/promesse-finance-api/model"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs reads the whole configuration from a single 'config' env
// var holding a JSON blob, optionally loaded from a .env file.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	rawJson := os.Getenv("config")
	if rawJson == "" {
		return nil, fmt.Errorf("environment variable 'config' is empty or not set")
	}

	var envCfg model.EnvConfig
	err := json.Unmarshal([]byte(rawJson), &envCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}
