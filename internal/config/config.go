package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DirName is the project-local directory holding the configuration.
const DirName = ".dialogstack"

// Config represents the dialogstack configuration
type Config struct {
	Stack  StackConfig  `toml:"stack"`
	Dialog DialogConfig `toml:"dialog"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

// StackConfig holds the settings of the dialog stack scope.
type StackConfig struct {
	PortalTarget  string `toml:"portal_target"`
	EscapeTrigger string `toml:"escape_trigger" comment:"release or press"`
}

// DialogConfig holds the defaults the demo dialogs start with.
type DialogConfig struct {
	CloseOnEsc          bool `toml:"close_on_esc"`
	CloseOnOverlayClick bool `toml:"close_on_overlay_click"`
	ShowOverlay         bool `toml:"show_overlay"`
}

// UIConfig holds presentation preferences.
type UIConfig struct {
	Theme         string `toml:"theme"`
	MarkdownStyle string `toml:"markdown_style"`
}

// LogConfig controls logging. An empty File logs to stderr, or nowhere while
// the demo owns the terminal.
type LogConfig struct {
	Level string `toml:"level" comment:"debug, info, warn or error"`
	File  string `toml:"file"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Stack: StackConfig{
			PortalTarget:  "body",
			EscapeTrigger: "press",
		},
		Dialog: DialogConfig{
			CloseOnEsc:          true,
			CloseOnOverlayClick: true,
			ShowOverlay:         true,
		},
		UI: UIConfig{
			Theme:         "fire",
			MarkdownStyle: "dracula",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Keys lists every key accepted by Value and Set, in file order.
var Keys = []string{
	"stack.portal_target",
	"stack.escape_trigger",
	"dialog.close_on_esc",
	"dialog.close_on_overlay_click",
	"dialog.show_overlay",
	"ui.theme",
	"ui.markdown_style",
	"log.level",
	"log.file",
}

// ErrUnknownKey is returned by Value and Set for keys not in Keys.
var ErrUnknownKey = errors.New("unknown config key")

// Manager handles configuration loading and saving
type Manager struct {
	projectPath string
	configPath  string

	// config is what the file says and what Save writes. expanded is the
	// same with environment variables substituted.
	config   *Config
	expanded *Config
}

// NewManager creates a new configuration manager
func NewManager(projectPath string) *Manager {
	m := &Manager{
		projectPath: projectPath,
		configPath:  filepath.Join(projectPath, DirName, "config.toml"),
		config:      DefaultConfig(),
	}
	m.expand()
	return m
}

// Path returns the location of the config file.
func (m *Manager) Path() string {
	return m.configPath
}

// Load reads the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", DirName, err)
	}

	if err := m.ensureGitignore(); err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	data, err := os.ReadFile(m.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return m.Save()
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Missing keys keep their defaults.
	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config TOML: %w", err)
	}

	m.config = config
	m.expand()
	return nil
}

func (m *Manager) expand() {
	c := *m.config
	expandEnvVars(&c)
	m.expanded = &c
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	data, err := toml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", DirName, err)
	}
	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration with environment variables
// expanded. Changes to it are not saved.
func (m *Manager) Get() *Config {
	return m.expanded
}

// Value returns the current value of key formatted as a string, with
// environment variables expanded.
func (m *Manager) Value(key string) (string, error) {
	c := m.expanded
	switch key {
	case "stack.portal_target":
		return c.Stack.PortalTarget, nil
	case "stack.escape_trigger":
		return c.Stack.EscapeTrigger, nil
	case "dialog.close_on_esc":
		return strconv.FormatBool(c.Dialog.CloseOnEsc), nil
	case "dialog.close_on_overlay_click":
		return strconv.FormatBool(c.Dialog.CloseOnOverlayClick), nil
	case "dialog.show_overlay":
		return strconv.FormatBool(c.Dialog.ShowOverlay), nil
	case "ui.theme":
		return c.UI.Theme, nil
	case "ui.markdown_style":
		return c.UI.MarkdownStyle, nil
	case "log.level":
		return c.Log.Level, nil
	case "log.file":
		return c.Log.File, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set updates a configuration value and saves
func (m *Manager) Set(key, value string) error {
	c := m.config
	switch key {
	case "stack.portal_target":
		c.Stack.PortalTarget = value
	case "stack.escape_trigger":
		if value != "release" && value != "press" {
			return fmt.Errorf("invalid escape trigger %q: want release or press", value)
		}
		c.Stack.EscapeTrigger = value
	case "dialog.close_on_esc":
		return m.setBool(&c.Dialog.CloseOnEsc, key, value)
	case "dialog.close_on_overlay_click":
		return m.setBool(&c.Dialog.CloseOnOverlayClick, key, value)
	case "dialog.show_overlay":
		return m.setBool(&c.Dialog.ShowOverlay, key, value)
	case "ui.theme":
		c.UI.Theme = value
	case "ui.markdown_style":
		c.UI.MarkdownStyle = value
	case "log.level":
		if _, err := ParseLogLevel(value); err != nil {
			return err
		}
		c.Log.Level = value
	case "log.file":
		c.Log.File = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	m.expand()
	return m.Save()
}

func (m *Manager) setBool(dst *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dst = b
	m.expand()
	return m.Save()
}

// ParseLogLevel parses debug, info, warn (or warning) and error, ignoring
// case. An empty string means info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q: want debug, info, warn or error", s)
	}
}

// ensureGitignore creates a .gitignore in the config directory with smart defaults
func (m *Manager) ensureGitignore() error {
	gitignorePath := filepath.Join(filepath.Dir(m.configPath), ".gitignore")

	if _, err := os.Stat(gitignorePath); err == nil {
		return nil
	}

	gitignoreContent := `# dialogstack data directory .gitignore
#
# Config is committed, logs and scratch files are not.

*.log
*.tmp
.DS_Store

!config.toml
!.gitignore
`

	return os.WriteFile(gitignorePath, []byte(gitignoreContent), 0o644)
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandEnvVars expands environment variables in the string settings
func expandEnvVars(c *Config) {
	for _, s := range []*string{
		&c.Stack.PortalTarget,
		&c.UI.Theme,
		&c.UI.MarkdownStyle,
		&c.Log.File,
	} {
		*s = expandString(*s)
	}
}

// expandString expands $VAR and ${VAR}. Unset variables are left as written.
func expandString(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		var name string
		if strings.HasPrefix(match, "${") {
			name = match[2 : len(match)-1]
		} else {
			name = match[1:]
		}

		if value := os.Getenv(name); value != "" {
			return value
		}
		return match
	})
}
