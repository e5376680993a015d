package config

import (
	"strings"

	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/perf"
	"github.com/cloudposse/gridtable/pkg/schema"
	"github.com/cloudposse/gridtable/pkg/ui/markup"
)

// MarkupStyles returns the named tags of the `markup` section, validated the
// same way as inline `<fg=..;bg=..;options=..>` tags.
func MarkupStyles(cfg *schema.Configuration) (map[string]markup.Style, error) {
	defer perf.Track(cfg, "config.MarkupStyles")()

	styles := make(map[string]markup.Style, len(cfg.Markup))
	for name, def := range cfg.Markup {
		tag := markup.Style{Foreground: def.Foreground, Background: def.Background, Options: def.Options}.Tag()
		style, err := markup.ParseStyle(strings.TrimSuffix(strings.TrimPrefix(tag, "<"), ">"))
		if err != nil {
			return nil, errUtils.Build(errors.Wrapf(errUtils.ErrInvalidStyleDefinition, "markup style %q: %v", name, err)).
				WithHint("Colors are ANSI names such as red or light_blue, hex values or default").
				WithContext("markup", name).
				WithExitCode(errUtils.ExitCodeUsage).
				Err()
		}
		styles[name] = style
	}
	return styles, nil
}
