package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"termtable/log"
	"termtable/table"
)

const (
	ConfigFileName     = "config.json"
	TOMLConfigFileName = "config.toml"

	// ConfigDirEnv overrides the configuration directory.
	ConfigDirEnv = "TERMTABLE_CONFIG_DIR"
)

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".termtable"), nil
}

// Config holds the rendering defaults. Command line flags override them.
type Config struct {
	// Box is the name of the border glyph set, see table.BoxNames.
	Box string `json:"box" toml:"box"`
	// ShowBorder draws the outer edges and column separators.
	ShowBorder bool `json:"show_border" toml:"show_border"`
	// Expand grows the columns so the table fills the terminal.
	Expand bool `json:"expand" toml:"expand"`
	// PadRightLastCell keeps the right padding of the last column.
	PadRightLastCell bool `json:"pad_right_last_cell" toml:"pad_right_last_cell"`
	PaddingLeft      int  `json:"padding_left" toml:"padding_left"`
	PaddingRight     int  `json:"padding_right" toml:"padding_right"`
	// HeaderBold renders header cells in bold.
	HeaderBold bool `json:"header_bold" toml:"header_bold"`
	// BorderColor is a lipgloss color for the border glyphs. Empty means
	// the terminal's default foreground.
	BorderColor string `json:"border_color,omitempty" toml:"border_color,omitempty"`
	// Color is one of "auto", "always" or "never".
	Color string `json:"color" toml:"color"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Box:              table.RoundedBox.Name,
		ShowBorder:       true,
		PadRightLastCell: true,
		PaddingLeft:      table.DefaultPadding.Left,
		PaddingRight:     table.DefaultPadding.Right,
		HeaderBold:       true,
		Color:            ColorAuto,
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, ok := table.BoxByName(c.Box); !ok {
		return fmt.Errorf("unknown box %q, expected one of %v", c.Box, table.BoxNames())
	}
	if c.PaddingLeft < 0 || c.PaddingRight < 0 {
		return fmt.Errorf("padding must not be negative, got %d/%d", c.PaddingLeft, c.PaddingRight)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	return nil
}

// Padding returns the cell padding applied to every column.
func (c *Config) Padding() table.Padding {
	return table.Padding{Left: c.PaddingLeft, Right: c.PaddingRight}
}

// TableOptions converts the configuration into table options.
func (c *Config) TableOptions() []table.Option {
	box, ok := table.BoxByName(c.Box)
	if !ok {
		box = table.RoundedBox
	}
	border := lipgloss.NewStyle()
	if c.BorderColor != "" {
		border = border.Foreground(lipgloss.Color(c.BorderColor))
	}
	return []table.Option{
		table.WithBox(box),
		table.WithBorder(c.ShowBorder),
		table.WithExpand(c.Expand),
		table.WithPadRightLastCell(c.PadRightLastCell),
		table.WithHeaderStyle(lipgloss.NewStyle().Bold(c.HeaderBold)),
		table.WithBorderStyle(border),
	}
}

// LoadConfig reads config.toml or, failing that, config.json from the
// configuration directory. Missing or unreadable files yield the defaults.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Errorf("failed to get config directory: %v", err)
		return DefaultConfig()
	}
	return LoadConfigFrom(configDir)
}

// LoadConfigFrom is LoadConfig for an explicit directory.
func LoadConfigFrom(configDir string) *Config {
	lock := NewFileLock(filepath.Join(configDir, ConfigFileName))
	if err := lock.RLock(); err != nil {
		// Continue without lock, a stale read beats no config.
		log.WarningLog.Warnf("failed to acquire read lock: %v", err)
	} else {
		defer lock.Unlock()
	}

	tomlPath := filepath.Join(configDir, TOMLConfigFileName)
	if data, err := os.ReadFile(tomlPath); err == nil {
		cfg := DefaultConfig()
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return corrupt(tomlPath, data, err)
		}
		return checked(tomlPath, cfg)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.WarningLog.Warnf("failed to get config file: %v", err)
		}
		return DefaultConfig()
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return corrupt(configPath, data, err)
	}
	return checked(configPath, cfg)
}

func checked(path string, cfg *Config) *Config {
	if err := cfg.Validate(); err != nil {
		log.ErrorLog.Errorf("invalid config file at %s: %v", path, err)
		return DefaultConfig()
	}
	return cfg
}

// corrupt backs up an unparsable config file and returns the defaults.
func corrupt(path string, data []byte, err error) *Config {
	preview := string(data)
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	log.ErrorLog.Errorf("failed to parse config file at %s: %v\nConfig content preview: %s", path, err, preview)

	backupPath := path + ".corrupt." + time.Now().Format("20060102-150405")
	if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
		log.InfoLog.Infof("Backed up corrupted config to: %s", backupPath)
	}
	return DefaultConfig()
}

// SaveConfig writes the configuration to disk while holding the config
// lock. An existing config.toml is rewritten as TOML, otherwise JSON is used.
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	return SaveConfigTo(configDir, config)
}

// SaveConfigTo is SaveConfig for an explicit directory.
func SaveConfigTo(configDir string, config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save config: %w", err)
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := NewFileLock(filepath.Join(configDir, ConfigFileName))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	path := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if tomlPath := filepath.Join(configDir, TOMLConfigFileName); fileExists(tomlPath) {
		path = tomlPath
		if data, err = toml.Marshal(config); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
	}

	// Write to a temp file and rename so readers never see a partial file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
