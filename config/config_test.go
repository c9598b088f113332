package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtable/table"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv(ConfigDirEnv, "/tmp/termtable-test")
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/termtable-test", dir)

	t.Setenv(ConfigDirEnv, "")
	t.Setenv("HOME", "/home/someone")
	dir, err = GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/someone", ".termtable"), dir)
}

func TestLoadConfigMissing(t *testing.T) {
	assert.Equal(t, DefaultConfig(), LoadConfigFrom(t.TempDir()))
	assert.Equal(t, DefaultConfig(), LoadConfigFrom(filepath.Join(t.TempDir(), "absent")))
}

func TestLoadConfigJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{"box": "ascii", "expand": true, "padding_left": 2}`)

	cfg := LoadConfigFrom(dir)
	assert.Equal(t, "ascii", cfg.Box)
	assert.True(t, cfg.Expand)
	assert.Equal(t, 2, cfg.PaddingLeft)
	// Unset fields keep their defaults.
	assert.True(t, cfg.ShowBorder)
	assert.Equal(t, 1, cfg.PaddingRight)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoadConfigPrefersTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{"box": "ascii"}`)
	writeFile(t, dir, TOMLConfigFileName, "box = \"double\"\nshow_border = false\ncolor = \"never\"\n")

	cfg := LoadConfigFrom(dir)
	assert.Equal(t, "double", cfg.Box)
	assert.False(t, cfg.ShowBorder)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoadConfigCorrupt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{"box": `)

	assert.Equal(t, DefaultConfig(), LoadConfigFrom(dir))

	backups, err := filepath.Glob(filepath.Join(dir, ConfigFileName+".corrupt.*"))
	require.NoError(t, err)
	require.Len(t, backups, 1)
	data, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, `{"box": `, string(data))
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{"box": "wavy"}`)
	assert.Equal(t, DefaultConfig(), LoadConfigFrom(dir))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown box", func(c *Config) { c.Box = "wavy" }, "unknown box"},
		{"negative padding", func(c *Config) { c.PaddingRight = -1 }, "padding"},
		{"color", func(c *Config) { c.Color = "sometimes" }, "color mode"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	cfg := DefaultConfig()
	cfg.Box = "thick"
	cfg.Expand = true
	cfg.BorderColor = "#00ff00"

	require.NoError(t, SaveConfigTo(dir, cfg))
	assert.FileExists(t, filepath.Join(dir, ConfigFileName))
	assert.NoFileExists(t, filepath.Join(dir, ConfigFileName+".tmp"))
	assert.Equal(t, cfg, LoadConfigFrom(dir))

	cfg.Box = "bogus"
	assert.Error(t, SaveConfigTo(dir, cfg))
}

func TestSaveConfigKeepsTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TOMLConfigFileName, "box = \"ascii\"\n")

	cfg := LoadConfigFrom(dir)
	cfg.PaddingLeft = 3
	require.NoError(t, SaveConfigTo(dir, cfg))

	data, err := os.ReadFile(filepath.Join(dir, TOMLConfigFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "padding_left = 3")
	assert.NoFileExists(t, filepath.Join(dir, ConfigFileName))
	assert.Equal(t, 3, LoadConfigFrom(dir).PaddingLeft)
}

func TestSaveConfigUsesEnvDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)
	require.NoError(t, SaveConfig(DefaultConfig()))
	assert.Equal(t, DefaultConfig(), LoadConfig())
}

func TestFileLock(t *testing.T) {
	dir := t.TempDir()
	lock := NewFileLock(filepath.Join(dir, ConfigFileName))
	assert.Equal(t, filepath.Join(dir, lockFileName), lock.Path())

	require.NoError(t, lock.Lock())
	err := lock.RLock()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already held")
	require.NoError(t, lock.Unlock())
	require.NoError(t, lock.Unlock(), "unlocking twice is a no-op")

	require.NoError(t, lock.RLock())
	other := NewFileLock(filepath.Join(dir, ConfigFileName))
	require.NoError(t, other.RLock(), "shared locks coexist")
	require.NoError(t, other.Unlock())
	require.NoError(t, lock.Unlock())

	t.Setenv(ConfigDirEnv, dir)
	l, err := GetConfigLock()
	require.NoError(t, err)
	assert.Equal(t, lock.Path(), l.Path())
}

func TestTableOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Box = "ascii"
	cfg.HeaderBold = false

	tbl := table.New(cfg.TableOptions()...)
	require.NoError(t, tbl.AddColumns("k", "v"))
	require.NoError(t, tbl.AddTextRow("a", "1"))
	lines, err := tbl.Render(20)
	require.NoError(t, err)
	assert.Equal(t, "+---+---+", lines[0])

	cfg.ShowBorder = false
	cfg.PadRightLastCell = false
	tbl = table.New(cfg.TableOptions()...)
	require.NoError(t, tbl.AddColumns("k", "v"))
	lines, err = tbl.Render(20)
	require.NoError(t, err)
	assert.Equal(t, " k  v", strings.Join(lines, "\n"))

	assert.Equal(t, table.Padding{Left: 1, Right: 1}, cfg.Padding())
}
