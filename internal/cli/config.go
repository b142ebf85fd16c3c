package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/bikerental/internal/paths"
	"github.com/mesh-intelligence/bikerental/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyNotifier = "notifier"
	cfgKeyBackend  = "backend"
	cfgKeyFleet    = "fleet"

	// envPrefix lets BIKERENT_NOTIFIER, BIKERENT_BACKEND and BIKERENT_FLEET
	// override config.yaml.
	envPrefix = "BIKERENT"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# bikerent configuration

# Notification channel: email or sms
notifier: email

# Searcher backend: memory or sqlite
backend: memory

# Fleet file (optional; relative paths resolve against this directory)
# fleet: fleet.yaml
`

// loadConfig reads config.yaml from configDir using Viper. It creates the
// config directory and a default config.yaml on first run. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	defaults := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyNotifier, defaults.Notifier)
	v.SetDefault(cfgKeyBackend, defaults.Backend)
	v.SetDefault(cfgKeyFleet, "")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// resolveConfig merges config.yaml, environment and flags into a validated
// Config. Flags win over the environment, which wins over config.yaml.
// Fleet holds the resolved fleet path, or "" when none is in use.
func resolveConfig(f *rootFlags) (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(f.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return types.Config{}, err
	}

	cfg := types.Config{
		Notifier: v.GetString(cfgKeyNotifier),
		Backend:  v.GetString(cfgKeyBackend),
	}
	if f.notifier != "" {
		cfg.Notifier = f.notifier
	}
	if f.backend != "" {
		cfg.Backend = f.backend
	}

	cfg.Fleet, err = paths.ResolveFleetPath(f.fleet, v.GetString(cfgKeyFleet), configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve fleet: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("%w (notifier=%q, backend=%q)", err, cfg.Notifier, cfg.Backend)
	}
	return cfg, nil
}
