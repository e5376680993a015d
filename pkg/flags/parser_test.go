package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *StandardParser {
	return NewStandardParser(
		WithStringFlag("style", "s", "", "Table style"),
		WithBoolFlag("horizontal", "", false, "Horizontal layout"),
		WithStringSliceFlag("width", "", nil, "Column widths"),
		WithViperKey("style", "table.style"),
		WithViperKey("horizontal", "table.horizontal"),
		WithEnvVars("style", "TEST_TABLE_STYLE"),
	)
}

func TestFlagRegistry(t *testing.T) {
	r := NewFlagRegistry()
	r.Register(&StringFlag{flagBase: flagBase{Name: "a"}})
	r.Register(&BoolFlag{flagBase: flagBase{Name: "b"}})
	r.Register(&StringFlag{flagBase: flagBase{Name: "a", Description: "replaced"}})

	require.Len(t, r.All(), 2)
	assert.True(t, r.Has("b"))
	assert.False(t, r.Has("c"))
	assert.Nil(t, r.Get("c"))
	assert.Equal(t, "replaced", r.Get("a").GetDescription())
	assert.Equal(t, "a", r.All()[0].GetName())
}

func TestOptions(t *testing.T) {
	p := newTestParser()

	style := p.Registry().Get("style")
	require.NotNil(t, style)
	assert.Equal(t, "s", style.GetShorthand())
	assert.Equal(t, "table.style", style.GetViperKey())
	assert.Equal(t, []string{"TEST_TABLE_STYLE"}, style.GetEnvVars())
	assert.Empty(t, p.Registry().Get("width").GetViperKey())

	// Options naming unknown flags are ignored.
	p = NewStandardParser(WithViperKey("missing", "x"), WithEnvVars("missing", "X"))
	assert.Empty(t, p.Registry().All())
}

func TestBindFlagsToViper(t *testing.T) {
	cmd := &cobra.Command{Use: "render", RunE: func(*cobra.Command, []string) error { return nil }}
	newTestParser().RegisterFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--style", "box", "--width", "0=3"}))

	v := viper.New()
	require.NoError(t, BindFlagsToViper(cmd, v))

	assert.Equal(t, "box", v.GetString("table.style"))
	assert.False(t, v.GetBool("table.horizontal"))
	assert.False(t, v.IsSet("width"))
}

func TestBindFlagsToViper_EnvVars(t *testing.T) {
	t.Setenv("TEST_TABLE_STYLE", "compact")
	cmd := &cobra.Command{Use: "render"}
	newTestParser().RegisterFlags(cmd)

	v := viper.New()
	require.NoError(t, BindFlagsToViper(cmd, v))

	assert.Equal(t, "compact", v.GetString("table.style"))
}

func TestBindFlagsToViper_InheritedPersistentFlags(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	NewStandardParser(
		WithStringFlag("logs-level", "", "", "Log level"),
		WithViperKey("logs-level", "logs.level"),
	).RegisterPersistentFlags(root)
	child := &cobra.Command{Use: "child", RunE: func(*cobra.Command, []string) error { return nil }}
	root.AddCommand(child)

	root.SetArgs([]string{"child", "--logs-level", "Debug"})
	require.NoError(t, root.Execute())

	v := viper.New()
	require.NoError(t, BindFlagsToViper(child, v))
	assert.Equal(t, "Debug", v.GetString("logs.level"))
}

func TestResetFlags(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	child := &cobra.Command{Use: "render"}
	root.AddCommand(child)
	newTestParser().RegisterFlags(child)
	require.NoError(t, child.ParseFlags([]string{"--style", "box", "--horizontal", "--width", "0=3", "--width", "1=4"}))

	ResetFlags(root)

	style, _ := child.Flags().GetString("style")
	horizontal, _ := child.Flags().GetBool("horizontal")
	widths, _ := child.Flags().GetStringSlice("width")
	assert.Empty(t, style)
	assert.False(t, horizontal)
	assert.Empty(t, widths)
	assert.False(t, child.Flags().Changed("style"))
}
