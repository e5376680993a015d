package flags

import (
	"github.com/cloudposse/gridtable/pkg/perf"
)

// Option is a functional option for configuring a StandardParser.
//
// Usage:
//
//	parser := flags.NewStandardParser(
//	    flags.WithStringFlag("style", "s", "", "Table style"),
//	    flags.WithViperKey("style", "table.style"),
//	)
type Option func(*parserConfig)

type parserConfig struct {
	registry *FlagRegistry
}

// WithStringFlag adds a string flag.
func WithStringFlag(name, shorthand, defaultValue, description string) Option {
	defer perf.Track(nil, "flags.WithStringFlag")()

	return func(cfg *parserConfig) {
		cfg.registry.Register(&StringFlag{
			flagBase: flagBase{Name: name, Shorthand: shorthand, Description: description},
			Default:  defaultValue,
		})
	}
}

// WithBoolFlag adds a boolean flag.
func WithBoolFlag(name, shorthand string, defaultValue bool, description string) Option {
	defer perf.Track(nil, "flags.WithBoolFlag")()

	return func(cfg *parserConfig) {
		cfg.registry.Register(&BoolFlag{
			flagBase: flagBase{Name: name, Shorthand: shorthand, Description: description},
			Default:  defaultValue,
		})
	}
}

// WithStringSliceFlag adds a repeatable string flag.
func WithStringSliceFlag(name, shorthand string, defaultValue []string, description string) Option {
	defer perf.Track(nil, "flags.WithStringSliceFlag")()

	return func(cfg *parserConfig) {
		cfg.registry.Register(&StringSliceFlag{
			flagBase: flagBase{Name: name, Shorthand: shorthand, Description: description},
			Default:  defaultValue,
		})
	}
}

// WithViperKey binds a registered flag to a configuration key, so that the
// flag overrides the value from config files and the environment.
func WithViperKey(flagName, key string) Option {
	defer perf.Track(nil, "flags.WithViperKey")()

	return func(cfg *parserConfig) {
		if b := base(cfg.registry.Get(flagName)); b != nil {
			b.ViperKey = key
		}
	}
}

// WithEnvVars binds extra environment variables to a flag's configuration key.
// Has no effect on flags without a key.
func WithEnvVars(flagName string, envVars ...string) Option {
	defer perf.Track(nil, "flags.WithEnvVars")()

	return func(cfg *parserConfig) {
		if b := base(cfg.registry.Get(flagName)); b != nil {
			b.EnvVars = append(b.EnvVars, envVars...)
		}
	}
}
