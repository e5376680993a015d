package flags

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cloudposse/gridtable/pkg/perf"
)

const (
	viperKeyAnnotation = "gridtable_viper_key"
	envVarsAnnotation  = "gridtable_env_vars"
)

// StandardParser registers a set of flags on a Cobra command and binds them to
// Viper keys for precedence (flag > env > config > default).
type StandardParser struct {
	registry *FlagRegistry
}

// NewStandardParser creates a parser with the given flags.
func NewStandardParser(opts ...Option) *StandardParser {
	defer perf.Track(nil, "flags.NewStandardParser")()

	cfg := &parserConfig{registry: NewFlagRegistry()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &StandardParser{registry: cfg.registry}
}

// Registry returns the parser's flags.
func (p *StandardParser) Registry() *FlagRegistry {
	return p.registry
}

// RegisterFlags adds the flags to cmd.
func (p *StandardParser) RegisterFlags(cmd *cobra.Command) {
	defer perf.Track(nil, "flags.StandardParser.RegisterFlags")()

	for _, flag := range p.registry.All() {
		registerFlag(cmd.Flags(), flag)
	}
}

// RegisterPersistentFlags adds the flags as persistent flags inherited by subcommands.
func (p *StandardParser) RegisterPersistentFlags(cmd *cobra.Command) {
	defer perf.Track(nil, "flags.StandardParser.RegisterPersistentFlags")()

	for _, flag := range p.registry.All() {
		registerFlag(cmd.PersistentFlags(), flag)
	}
}

func registerFlag(fs *pflag.FlagSet, flag Flag) {
	switch f := flag.(type) {
	case *StringFlag:
		fs.StringP(f.Name, f.Shorthand, f.Default, f.Description)
	case *BoolFlag:
		fs.BoolP(f.Name, f.Shorthand, f.Default, f.Description)
	case *StringSliceFlag:
		fs.StringSliceP(f.Name, f.Shorthand, f.Default, f.Description)
	default:
		return
	}

	// Annotations carry the binding so it can be reapplied to any Viper instance.
	if key := flag.GetViperKey(); key != "" {
		_ = fs.SetAnnotation(flag.GetName(), viperKeyAnnotation, []string{key})
		if envVars := flag.GetEnvVars(); len(envVars) > 0 {
			_ = fs.SetAnnotation(flag.GetName(), envVarsAnnotation, envVars)
		}
	}
}

// BindFlagsToViper binds every flag visible to cmd that carries a
// configuration key: local, persistent and inherited flags.
//
// Usage:
//
//	if err := flags.BindFlagsToViper(cmd, viper.GetViper()); err != nil {
//	    return err
//	}
func BindFlagsToViper(cmd *cobra.Command, v *viper.Viper) error {
	defer perf.Track(nil, "flags.BindFlagsToViper")()

	var bindErr error
	bind := func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		keys := f.Annotations[viperKeyAnnotation]
		if len(keys) == 0 {
			return
		}
		if err := v.BindPFlag(keys[0], f); err != nil {
			bindErr = errors.Wrapf(err, "bind flag --%s to viper", f.Name)
			return
		}
		if envVars := f.Annotations[envVarsAnnotation]; len(envVars) > 0 {
			args := append([]string{keys[0]}, envVars...)
			if err := v.BindEnv(args...); err != nil {
				bindErr = errors.Wrapf(err, "bind env vars for flag --%s", f.Name)
			}
		}
	}

	cmd.Flags().VisitAll(bind)
	cmd.PersistentFlags().VisitAll(bind)
	cmd.InheritedFlags().VisitAll(bind)
	return bindErr
}

// ResetFlags restores every flag of cmd and its subcommands to its default
// value and clears the changed state. Commands are package-level singletons,
// so repeated executions in one process need this between runs.
func ResetFlags(cmd *cobra.Command) {
	defer perf.Track(nil, "flags.ResetFlags")()

	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}

	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		ResetFlags(sub)
	}
}
