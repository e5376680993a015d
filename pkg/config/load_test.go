package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/gridtable/errors"
)

const sampleConfig = `
logs:
  level: Debug
settings:
  terminal:
    unicode: false
table:
  style: fancy
  header_title: Books
  columns:
    - index: 1
      max_width: 10
styles:
  fancy:
    extends: box
    padding_char: "."
    crossings: ["*"]
`

// isolate runs the test in an empty working and home directory.
func isolate(t *testing.T) string {
	t.Helper()

	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv(CliConfigPathEnvVar, "")

	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig(viper.New(), "")

	require.NoError(t, err)
	assert.True(t, cfg.Initialized)
	assert.Empty(t, cfg.ConfigFile)
	assert.Equal(t, DefaultLogsFile, cfg.Logs.File)
	assert.Equal(t, DefaultLogsLevel, cfg.Logs.Level)
	assert.True(t, cfg.Settings.Terminal.Color)
	assert.Nil(t, cfg.Settings.Terminal.Unicode)
	assert.Empty(t, cfg.Table.Style)
}

func TestLoadConfig_WorkDir(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "gridtable.yaml"), sampleConfig)

	cfg, err := LoadConfig(viper.New(), "")

	require.NoError(t, err)
	assert.Equal(t, "Debug", cfg.Logs.Level)
	assert.Equal(t, DefaultLogsFile, cfg.Logs.File)
	require.NotNil(t, cfg.Settings.Terminal.Unicode)
	assert.False(t, *cfg.Settings.Terminal.Unicode)
	assert.Equal(t, "fancy", cfg.Table.Style)
	assert.Equal(t, "Books", cfg.Table.HeaderTitle)
	require.Len(t, cfg.Table.Columns, 1)
	assert.Equal(t, 1, cfg.Table.Columns[0].Index)
	assert.Equal(t, 10, cfg.Table.Columns[0].MaxWidth)
	assert.Equal(t, "box", cfg.Styles["fancy"].Extends)
	assert.Equal(t, []string{"*"}, cfg.Styles["fancy"].Crossings)
	assert.Equal(t, "gridtable.yaml", filepath.Base(cfg.ConfigFile))
	assert.True(t, filepath.IsAbs(cfg.ConfigFile))
}

func TestLoadConfig_DotFileOverridesWorkDirFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "gridtable.yaml"), "logs:\n  level: Debug\ntable:\n  style: box\n")
	writeFile(t, filepath.Join(dir, ".gridtable.yaml"), "logs:\n  level: Trace\n")

	cfg, err := LoadConfig(viper.New(), "")

	require.NoError(t, err)
	assert.Equal(t, "Trace", cfg.Logs.Level)
	assert.Equal(t, "box", cfg.Table.Style)
}

func TestLoadConfig_HomeDir(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")
	writeFile(t, filepath.Join(home, HomeConfigDir, "gridtable.yaml"), "table:\n  style: compact\n")

	cfg, err := LoadConfig(viper.New(), "")

	require.NoError(t, err)
	assert.Equal(t, "compact", cfg.Table.Style)
}

func TestLoadConfig_XDGConfigHome(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")
	xdgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdgHome)
	writeFile(t, filepath.Join(home, HomeConfigDir, "gridtable.yaml"), "table:\n  style: compact\n  horizontal: true\n")
	writeFile(t, filepath.Join(xdgHome, "gridtable", "gridtable.yaml"), "table:\n  style: box\n")

	cfg, err := LoadConfig(viper.New(), "")

	require.NoError(t, err)
	assert.Equal(t, "box", cfg.Table.Style)
	assert.True(t, cfg.Table.Horizontal)
}

func TestLoadConfig_EnvConfigPath(t *testing.T) {
	isolate(t)
	path := t.TempDir()
	writeFile(t, filepath.Join(path, "gridtable.yaml"), "table:\n  horizontal: true\n")
	t.Setenv(CliConfigPathEnvVar, path)

	cfg, err := LoadConfig(viper.New(), "")

	require.NoError(t, err)
	assert.True(t, cfg.Table.Horizontal)
}

func TestLoadConfig_ExplicitFileWins(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "gridtable.yaml"), "table:\n  style: box\n")
	explicit := filepath.Join(t.TempDir(), "custom.yml")
	writeFile(t, explicit, "table:\n  style: borderless\n")

	cfg, err := LoadConfig(viper.New(), explicit)

	require.NoError(t, err)
	assert.Equal(t, "borderless", cfg.Table.Style)
	assert.Equal(t, explicit, cfg.ConfigFile)
}

func TestLoadConfig_EnvVarsOverrideFiles(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "gridtable.yaml"), sampleConfig)
	t.Setenv("GRIDTABLE_LOGS_LEVEL", "Warning")

	cfg, err := LoadConfig(viper.New(), "")

	require.NoError(t, err)
	assert.Equal(t, "Warning", cfg.Logs.Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "gridtable.yaml"), "table: [style\n")

		_, err := LoadConfig(viper.New(), "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errUtils.ErrLoadConfig))
		assert.Equal(t, errUtils.ExitCodeUsage, errUtils.GetExitCode(err))
	})

	t.Run("missing explicit file", func(t *testing.T) {
		isolate(t)

		_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))

		assert.True(t, errors.Is(err, errUtils.ErrLoadConfig))
	})
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic(err)
		}
	})
}
