package config

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/perf"
	"github.com/cloudposse/gridtable/pkg/schema"
	"github.com/cloudposse/gridtable/pkg/ui/table"
)

// ResolveStyle returns the style registered under name: a custom style from
// the `styles` section of the configuration, or a built-in one.
func ResolveStyle(cfg *schema.Configuration, name string) (*table.Style, error) {
	defer perf.Track(cfg, "config.ResolveStyle")()

	if name == "" {
		name = table.StyleDefault
	}
	return resolveStyle(cfg, name, nil)
}

func resolveStyle(cfg *schema.Configuration, name string, seen []string) (*table.Style, error) {
	def, ok := lookupStyle(cfg, name)
	if !ok {
		style, err := table.GetStyle(name)
		if err != nil {
			b := errUtils.Build(err)
			if names := customStyleNames(cfg); len(names) > 0 {
				b = b.WithHintf("Custom styles: %s", strings.Join(names, ", "))
			}
			return nil, b.Err()
		}
		return style, nil
	}

	for _, s := range seen {
		if s == name {
			return nil, errUtils.Build(errors.Wrapf(errUtils.ErrStyleCycle, "%s -> %s", strings.Join(seen, " -> "), name)).
				WithContext("style", name).
				WithExitCode(errUtils.ExitCodeUsage).
				Err()
		}
	}

	base := def.Extends
	if base == "" {
		base = table.StyleDefault
	}

	var (
		style *table.Style
		err   error
	)
	if base == name {
		// A custom style may shadow a built-in of the same name and extend it.
		style, err = table.GetStyle(base)
	} else {
		style, err = resolveStyle(cfg, base, append(seen, name))
	}
	if err != nil {
		return nil, err
	}

	if err := applyStyleDefinition(style, def); err != nil {
		return nil, errUtils.Build(err).
			WithContext("style", name).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
	return style, nil
}

func lookupStyle(cfg *schema.Configuration, name string) (schema.StyleDefinition, bool) {
	if cfg == nil {
		return schema.StyleDefinition{}, false
	}
	def, ok := cfg.Styles[name]
	return def, ok
}

func customStyleNames(cfg *schema.Configuration) []string {
	if cfg == nil {
		return nil
	}
	names := make([]string, 0, len(cfg.Styles))
	for name := range cfg.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StyleNames returns the built-in and custom style names in sorted order.
func StyleNames(cfg *schema.Configuration) []string {
	names := table.StyleNames()
	for _, name := range customStyleNames(cfg) {
		if _, err := table.GetStyle(name); err != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// applyStyleDefinition overrides the fields of style that def sets.
func applyStyleDefinition(style *table.Style, def schema.StyleDefinition) error {
	borders := style.BorderChars()
	if def.HorizontalOutside != nil || def.HorizontalInside != nil {
		outside, inside := borders[0], borders[2]
		if def.HorizontalOutside != nil {
			outside = *def.HorizontalOutside
			if def.HorizontalInside == nil {
				inside = outside
			}
		}
		if def.HorizontalInside != nil {
			inside = *def.HorizontalInside
		}
		style.SetHorizontalBorderChars(outside, inside)
	}
	if def.VerticalOutside != nil || def.VerticalInside != nil {
		outside, inside := borders[1], borders[3]
		if def.VerticalOutside != nil {
			outside = *def.VerticalOutside
			if def.VerticalInside == nil {
				inside = outside
			}
		}
		if def.VerticalInside != nil {
			inside = *def.VerticalInside
		}
		style.SetVerticalBorderChars(outside, inside)
	}

	switch len(def.Crossings) {
	case 0:
	case 1:
		style.SetDefaultCrossingChar(def.Crossings[0])
	default:
		if err := style.SetCrossingChars(def.Crossings...); err != nil {
			return err
		}
	}

	if def.PaddingChar != "" {
		if err := style.SetPaddingChar(def.PaddingChar); err != nil {
			return err
		}
	}
	if def.PadType != "" {
		padType, err := table.ParsePadType(def.PadType)
		if err != nil {
			return err
		}
		style.SetPadType(padType)
	}

	setIf(def.CellHeaderFormat, style.SetCellHeaderFormat)
	setIf(def.CellRowFormat, style.SetCellRowFormat)
	setIf(def.CellRowContentFormat, style.SetCellRowContentFormat)
	setIf(def.BorderFormat, style.SetBorderFormat)
	setIf(def.HeaderTitleFormat, style.SetHeaderTitleFormat)
	setIf(def.FooterTitleFormat, style.SetFooterTitleFormat)

	return nil
}

func setIf(value string, set func(string) *table.Style) {
	if value != "" {
		set(value)
	}
}
