// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; secrets go to OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"snowchat/cli/internal/xdg"
)

// Defaults for the hosted Cortex Analyst deployment. Every field can be
// overridden in config.json.
const (
	DefaultAccount   = "GNB14769"
	DefaultHost      = "GNB14769.snowflakecomputing.com"
	DefaultWarehouse = "CORTEX_SEARCH_TUTORIAL_WH"
	DefaultRole      = "DEV_BR_CORTEX_AI_ROLE"
	DefaultDatabase  = "CORTEX_SEARCH_TUTORIAL_DB"
	DefaultSchema    = "PUBLIC"
	DefaultStage     = "CC_STAGE"
	DefaultModelFile = "Climate_Career_Final_SM_Draft.yaml"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel string  `json:"log_level"`
	Analyst  Analyst `json:"analyst"`
}

// Analyst holds the Snowflake deployment and semantic model settings used by
// both the warehouse connection and the Cortex Analyst endpoint.
type Analyst struct {
	Account   string `json:"account"`
	Host      string `json:"host"`
	Warehouse string `json:"warehouse"`
	Role      string `json:"role"`
	Database  string `json:"database"`
	Schema    string `json:"schema"`
	Stage     string `json:"stage"`
	ModelFile string `json:"model_file"`
}

// SemanticModelPath returns the stage path passed to the analyst endpoint,
// e.g. "@CORTEX_SEARCH_TUTORIAL_DB.PUBLIC.CC_STAGE/model.yaml".
func (a Analyst) SemanticModelPath() string {
	return fmt.Sprintf("@%s.%s.%s/%s", a.Database, a.Schema, a.Stage, a.ModelFile)
}

// defaultAnalyst returns the built-in deployment settings.
func defaultAnalyst() Analyst {
	return Analyst{
		Account:   DefaultAccount,
		Host:      DefaultHost,
		Warehouse: DefaultWarehouse,
		Role:      DefaultRole,
		Database:  DefaultDatabase,
		Schema:    DefaultSchema,
		Stage:     DefaultStage,
		ModelFile: DefaultModelFile,
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.LogLevel = "info"
			c.Analyst = defaultAnalyst()
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	c.Analyst = fillDefaults(c.Analyst)
	return c, nil
}

// fillDefaults backfills unset analyst fields so a partial config file still
// resolves to a usable deployment.
func fillDefaults(a Analyst) Analyst {
	d := defaultAnalyst()
	if a.Account == "" {
		a.Account = d.Account
	}
	if a.Host == "" {
		a.Host = d.Host
	}
	if a.Warehouse == "" {
		a.Warehouse = d.Warehouse
	}
	if a.Role == "" {
		a.Role = d.Role
	}
	if a.Database == "" {
		a.Database = d.Database
	}
	if a.Schema == "" {
		a.Schema = d.Schema
	}
	if a.Stage == "" {
		a.Stage = d.Stage
	}
	if a.ModelFile == "" {
		a.ModelFile = d.ModelFile
	}
	return a
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
