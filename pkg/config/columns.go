package config

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/perf"
	"github.com/cloudposse/gridtable/pkg/schema"
	"github.com/cloudposse/gridtable/pkg/ui/table"
)

// ParseColumnSpecs parses `index=value` pairs, e.g. `--width 0=10`.
func ParseColumnSpecs(flag string, specs []string) (map[int]string, error) {
	values := make(map[int]string, len(specs))
	for _, spec := range specs {
		index, value, ok := strings.Cut(spec, ColumnSpecSeparator)
		column, err := strconv.Atoi(strings.TrimSpace(index))
		if !ok || err != nil || column < 0 || strings.TrimSpace(value) == "" {
			return nil, errUtils.Build(errors.Wrapf(errUtils.ErrInvalidColumnSpec, "--%s %q", flag, spec)).
				WithHintf("Use --%s <column>=<value>, e.g. --%s 0=%s", flag, flag, exampleValue(flag)).
				WithExitCode(errUtils.ExitCodeUsage).
				Err()
		}
		values[column] = strings.TrimSpace(value)
	}
	return values, nil
}

// ParseColumnWidths parses `index=width` pairs with non-negative widths.
func ParseColumnWidths(flag string, specs []string) (map[int]int, error) {
	values, err := ParseColumnSpecs(flag, specs)
	if err != nil {
		return nil, err
	}

	widths := make(map[int]int, len(values))
	for column, value := range values {
		width, err := strconv.Atoi(value)
		if err != nil || width < 0 {
			return nil, errUtils.Build(errors.Wrapf(errUtils.ErrInvalidColumnSpec, "--%s %d=%s: width must be a non-negative integer", flag, column, value)).
				WithExitCode(errUtils.ExitCodeUsage).
				Err()
		}
		widths[column] = width
	}
	return widths, nil
}

func exampleValue(flag string) string {
	if strings.Contains(flag, "style") {
		return table.StyleBox
	}
	return "20"
}

// MergeColumns overlays per-column flag values on the configured column settings.
// Flags win over configuration.
func MergeColumns(columns []schema.ColumnSettings, widths, maxWidths map[int]int, styles map[int]string) []schema.ColumnSettings {
	byIndex := lo.SliceToMap(columns, func(c schema.ColumnSettings) (int, schema.ColumnSettings) {
		return c.Index, c
	})

	for column, width := range widths {
		c := byIndex[column]
		c.Index, c.Width = column, width
		byIndex[column] = c
	}
	for column, width := range maxWidths {
		c := byIndex[column]
		c.Index, c.MaxWidth = column, width
		byIndex[column] = c
	}
	for column, style := range styles {
		c := byIndex[column]
		c.Index, c.Style = column, style
		byIndex[column] = c
	}

	merged := lo.Values(byIndex)
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Index < merged[j].Index
	})
	return merged
}

// ApplyTableSettings configures t from the table settings: style, orientation,
// titles and column overrides. Custom styles are resolved through cfg.
func ApplyTableSettings(cfg *schema.Configuration, t *table.Table, settings schema.TableSettings) error {
	defer perf.Track(cfg, "config.ApplyTableSettings")()

	if settings.Style != "" {
		style, err := ResolveStyle(cfg, settings.Style)
		if err != nil {
			return err
		}
		t.SetCustomStyle(style)
	}

	t.SetHorizontal(settings.Horizontal)
	if settings.HeaderTitle != "" {
		t.SetHeaderTitle(settings.HeaderTitle)
	}
	if settings.FooterTitle != "" {
		t.SetFooterTitle(settings.FooterTitle)
	}

	for _, c := range settings.Columns {
		if c.Index < 0 {
			return errUtils.Build(errors.Wrapf(errUtils.ErrInvalidColumnSpec, "column index %d", c.Index)).
				WithExitCode(errUtils.ExitCodeUsage).
				Err()
		}
		if c.Width > 0 {
			t.SetColumnWidth(c.Index, c.Width)
		}
		if c.MaxWidth > 0 {
			t.SetColumnMaxWidth(c.Index, c.MaxWidth)
		}
		if c.Style != "" {
			style, err := ResolveStyle(cfg, c.Style)
			if err != nil {
				return err
			}
			t.SetColumnCustomStyle(c.Index, style)
		}
	}
	return nil
}
