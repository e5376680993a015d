package table

import (
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/perf"
)

// Built-in style names.
const (
	StyleDefault    = "default"
	StyleBorderless = "borderless"
	StyleCompact    = "compact"
	StyleBox        = "box"
	StyleBoxDouble  = "box-double"
)

var (
	registryOnce sync.Once
	registry     map[string]*Style
)

func builtinStyles() map[string]*Style {
	borderless := NewStyle()
	borderless.SetHorizontalBorderChars("=")
	borderless.SetVerticalBorderChars(" ")
	borderless.SetDefaultCrossingChar(" ")

	compact := NewStyle()
	compact.SetHorizontalBorderChars("")
	compact.SetVerticalBorderChars(" ")
	compact.SetDefaultCrossingChar("")
	compact.SetCellRowContentFormat("{}")

	box := NewStyle()
	box.SetHorizontalBorderChars("─")
	box.SetVerticalBorderChars("│")
	mustSetCrossings(box, "┼", "┌", "┬", "┐", "┤", "┘", "┴", "└", "├")

	boxDouble := NewStyle()
	boxDouble.SetHorizontalBorderChars("═", "─")
	boxDouble.SetVerticalBorderChars("║", "│")
	mustSetCrossings(boxDouble, "┼", "╔", "╤", "╗", "╢", "╝", "╧", "╚", "╟", "╠", "╪", "╣")

	return map[string]*Style{
		StyleDefault:    NewStyle(),
		StyleBorderless: borderless,
		StyleCompact:    compact,
		StyleBox:        box,
		StyleBoxDouble:  boxDouble,
	}
}

func mustSetCrossings(s *Style, chars ...string) {
	if err := s.SetCrossingChars(chars...); err != nil {
		panic(err)
	}
}

// GetStyle returns a copy of the named built-in style.
func GetStyle(name string) (*Style, error) {
	defer perf.Track(nil, "table.GetStyle")()

	registryOnce.Do(func() {
		registry = builtinStyles()
	})

	style, ok := registry[name]
	if !ok {
		return nil, errUtils.Build(errors.Wrapf(errUtils.ErrTableStyleNotDefined, "style %q", name)).
			WithHintf("Available styles: %s", strings.Join(StyleNames(), ", ")).
			WithContext("style", name).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	return style.Clone(), nil
}

// StyleNames returns the built-in style names in sorted order.
func StyleNames() []string {
	registryOnce.Do(func() {
		registry = builtinStyles()
	})

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
