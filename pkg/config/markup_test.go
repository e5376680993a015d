package config

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/schema"
	"github.com/cloudposse/gridtable/pkg/ui/markup"
)

func TestMarkupStyles(t *testing.T) {
	cfg := &schema.Configuration{Markup: map[string]schema.MarkupStyle{
		"price": {Foreground: "green", Options: []string{"bold"}},
		"alert": {Background: "#ff0000"},
	}}

	styles, err := MarkupStyles(cfg)

	require.NoError(t, err)
	assert.Equal(t, map[string]markup.Style{
		"price": {Foreground: "green", Options: []string{"bold"}},
		"alert": {Background: "#ff0000"},
	}, styles)
}

func TestMarkupStyles_Empty(t *testing.T) {
	styles, err := MarkupStyles(&schema.Configuration{})

	require.NoError(t, err)
	assert.Empty(t, styles)
}

func TestMarkupStyles_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		style schema.MarkupStyle
	}{
		{"unknown color", schema.MarkupStyle{Foreground: "ultraviolet"}},
		{"unknown option", schema.MarkupStyle{Options: []string{"sparkle"}}},
		{"empty", schema.MarkupStyle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &schema.Configuration{Markup: map[string]schema.MarkupStyle{"bad": tt.style}}

			_, err := MarkupStyles(cfg)

			require.Error(t, err)
			assert.True(t, errors.Is(err, errUtils.ErrInvalidStyleDefinition))
			assert.Equal(t, errUtils.ExitCodeUsage, errUtils.GetExitCode(err))
		})
	}
}
