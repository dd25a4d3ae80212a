package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load merges configuration from the global file (~/.meetminding/config.yaml)
// and the project file (./meetminding.yaml), project winning. Missing files
// fall back to defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if home, err := os.UserHomeDir(); err == nil {
		_ = loadFile(filepath.Join(home, ".meetminding", "config.yaml"), cfg)
	}

	if cwd, err := os.Getwd(); err == nil {
		_ = loadFile(filepath.Join(cwd, "meetminding.yaml"), cfg)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".meetminding", "config.yaml")
}
