package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/gridtable/errors"
	log "github.com/cloudposse/gridtable/pkg/logger"
	"github.com/cloudposse/gridtable/pkg/perf"
	"github.com/cloudposse/gridtable/pkg/schema"
)

// LoadConfig loads gridtable.yaml from the following locations (from lower to higher priority):
// home dir (~/.config/gridtable), then $XDG_CONFIG_HOME/gridtable
// current directory (gridtable.yaml, then .gridtable.yaml)
// GRIDTABLE_CLI_CONFIG_PATH
// the file given with --config
// ENV vars (GRIDTABLE_*)
// Command-line arguments bound to v
func LoadConfig(v *viper.Viper, configFile string) (schema.Configuration, error) {
	defer perf.Track(nil, "config.LoadConfig")()

	var cfg schema.Configuration

	v.SetConfigType("yaml")
	v.SetTypeByDefaultValue(true)
	setDefaultConfiguration(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := readHomeConfig(v); err != nil {
		return cfg, loadError(err, "")
	}
	if err := readWorkDirConfig(v); err != nil {
		return cfg, loadError(err, "")
	}
	if err := readEnvConfigPath(v); err != nil {
		return cfg, loadError(err, os.Getenv(CliConfigPathEnvVar))
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.MergeInConfig(); err != nil {
			return cfg, loadError(err, configFile)
		}
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.StringToSliceHookFunc(","))); err != nil {
		return cfg, loadError(err, v.ConfigFileUsed())
	}

	cfg.ConfigFile = v.ConfigFileUsed()
	if cfg.ConfigFile != "" && !filepath.IsAbs(cfg.ConfigFile) {
		if abs, err := filepath.Abs(cfg.ConfigFile); err == nil {
			cfg.ConfigFile = abs
		}
	}
	if cfg.ConfigFile == "" {
		log.Debug("'gridtable.yaml' config was not found", "paths", "home dir, current dir, ENV vars")
	}
	cfg.Initialized = true

	return cfg, nil
}

// setDefaultConfiguration sets default configuration for the viper instance.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("logs.file", DefaultLogsFile)
	v.SetDefault("logs.level", DefaultLogsLevel)
	v.SetDefault("settings.terminal.color", true)
	v.SetDefault("settings.perf", false)
}

// readHomeConfig loads config from ~/.config/gridtable and from the XDG config directory.
func readHomeConfig(v *viper.Viper) error {
	var dirs []string
	if home, err := homedir.Dir(); err == nil {
		dirs = append(dirs, filepath.Join(home, HomeConfigDir))
	} else {
		log.Debug("Cannot resolve home directory", "error", err)
	}

	// XDG paths are computed at init; pick up changes to HOME and XDG_CONFIG_HOME.
	xdg.Reload()
	if dir := filepath.Join(xdg.ConfigHome, CliConfigFileName); !lo.Contains(dirs, dir) {
		dirs = append(dirs, dir)
	}

	for _, dir := range dirs {
		if err := mergeOptional(v, dir, CliConfigFileName); err != nil {
			return err
		}
	}
	return nil
}

// readWorkDirConfig loads gridtable.yaml, then .gridtable.yaml, from the current working directory.
func readWorkDirConfig(v *viper.Viper) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := mergeOptional(v, wd, CliConfigFileName); err != nil {
		return err
	}
	return mergeOptional(v, wd, DotCliConfigFileName)
}

func readEnvConfigPath(v *viper.Viper) error {
	path := os.Getenv(CliConfigPathEnvVar)
	if path == "" {
		return nil
	}

	if err := mergeOptional(v, path, CliConfigFileName); err != nil {
		return err
	}
	log.Debug("Found config ENV", CliConfigPathEnvVar, path)
	return nil
}

// mergeOptional merges path/fileName.yaml into v. A missing file is not an error.
func mergeOptional(v *viper.Viper, path string, fileName string) error {
	configFile := filepath.Join(path, fileName+".yaml")
	if _, err := os.Stat(configFile); err != nil {
		if os.IsNotExist(err) {
			log.Trace("Config not found", "file", configFile)
			return nil
		}
		return err
	}

	v.SetConfigFile(configFile)
	if err := v.MergeInConfig(); err != nil {
		return err
	}
	log.Debug("Merged config", "file", configFile)
	return nil
}

func loadError(err error, file string) error {
	b := errUtils.Build(errors.Wrap(errUtils.ErrLoadConfig, err.Error())).
		WithExitCode(errUtils.ExitCodeUsage)
	if file != "" {
		b = b.WithContext("file", file).WithHintf("Check the syntax of %s", file)
	}
	return b.Err()
}
