// Config loading for the rmtable CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/rmtable/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix namespaces environment overrides, e.g. RMTABLE_PAGE_SIZE.
	envPrefix = "RMTABLE"

	cfgKeyEndpoint  = "endpoint"
	cfgKeySource    = "source"
	cfgKeyPageSize  = "page_size"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFile   = "log_file"
	cfgKeyExportDir = "export_dir"
)

// flagKeys maps persistent flag names to config keys. Flags override the
// config file and environment only when set on the command line.
var flagKeys = map[string]string{
	"endpoint":   cfgKeyEndpoint,
	"source":     cfgKeySource,
	"page-size":  cfgKeyPageSize,
	"log-level":  cfgKeyLogLevel,
	"log-file":   cfgKeyLogFile,
	"export-dir": cfgKeyExportDir,
}

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# rmtable configuration

# Character listing fetched once per run.
endpoint: https://rickandmortyapi.com/api/character

# Rows per page: 10, 20, 30 or 50.
page_size: 10

# Log level: panic, fatal, error, warn, info, debug, trace.
log_level: warn

# Optional log file; the interactive view logs nowhere without it.
# log_file:

# Optional JSONL file to read instead of the API.
# source:

# Directory for relative export paths.
# export_dir:
`

// loadConfig reads config.yaml from configDir using Viper, layering
// environment variables and the given flags on top. It creates the config
// directory and a default config.yaml on first run. A missing config.yaml is
// not an error.
func loadConfig(configDir string, flags *pflag.FlagSet) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyEndpoint, types.DefaultEndpoint)
	v.SetDefault(cfgKeySource, "")
	v.SetDefault(cfgKeyPageSize, types.DefaultPageSize)
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyLogFile, "")
	v.SetDefault(cfgKeyExportDir, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, cfgKey := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(cfgKey, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	return v, nil
}

// decodeConfig unmarshals the merged settings into a types.Config.
func decodeConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
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
