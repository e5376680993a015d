package flags

import (
	"github.com/cloudposse/gridtable/pkg/perf"
)

// Flag describes a command-line flag independent of its type.
type Flag interface {
	GetName() string
	GetShorthand() string
	GetDescription() string
	// GetViperKey returns the configuration key the flag overrides, if any.
	GetViperKey() string
	GetEnvVars() []string
}

// flagBase holds the fields shared by every flag type.
type flagBase struct {
	Name        string
	Shorthand   string
	Description string
	ViperKey    string
	EnvVars     []string
}

func (f *flagBase) GetName() string        { return f.Name }
func (f *flagBase) GetShorthand() string   { return f.Shorthand }
func (f *flagBase) GetDescription() string { return f.Description }
func (f *flagBase) GetViperKey() string    { return f.ViperKey }
func (f *flagBase) GetEnvVars() []string   { return f.EnvVars }

// StringFlag is a string-valued flag.
type StringFlag struct {
	flagBase
	Default string
}

// BoolFlag is a boolean flag.
type BoolFlag struct {
	flagBase
	Default bool
}

// StringSliceFlag is a repeatable string flag.
type StringSliceFlag struct {
	flagBase
	Default []string
}

// FlagRegistry keeps flags in registration order.
type FlagRegistry struct {
	flags []Flag
	index map[string]int
}

// NewFlagRegistry creates an empty registry.
func NewFlagRegistry() *FlagRegistry {
	defer perf.Track(nil, "flags.NewFlagRegistry")()

	return &FlagRegistry{index: map[string]int{}}
}

// Register adds flag, replacing a previous flag with the same name.
func (r *FlagRegistry) Register(flag Flag) {
	if i, ok := r.index[flag.GetName()]; ok {
		r.flags[i] = flag
		return
	}
	r.index[flag.GetName()] = len(r.flags)
	r.flags = append(r.flags, flag)
}

// Get returns the named flag or nil.
func (r *FlagRegistry) Get(name string) Flag {
	if i, ok := r.index[name]; ok {
		return r.flags[i]
	}
	return nil
}

// Has reports whether a flag is registered under name.
func (r *FlagRegistry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// All returns the flags in registration order.
func (r *FlagRegistry) All() []Flag {
	return r.flags
}

func base(f Flag) *flagBase {
	switch t := f.(type) {
	case *StringFlag:
		return &t.flagBase
	case *BoolFlag:
		return &t.flagBase
	case *StringSliceFlag:
		return &t.flagBase
	}
	return nil
}
