package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// EnvPrefix prefixes every environment override (DOCPEEK_SOURCE -> source)
	EnvPrefix = "DOCPEEK_"
)

var (
	// ConfigDir is the global configuration directory (~/.docpeek)
	ConfigDir string

	// ConfigFile is the YAML configuration file
	ConfigFile string

	// KeybindsFile is the user keybinding overrides file
	KeybindsFile string

	// LogFile is the rotating log file (the TUI owns the terminal)
	LogFile string
)

// Clipboard methods
const (
	ClipboardSystem = "system"
	ClipboardOSC52  = "osc52"
)

// Config is the docpeek configuration, corresponding to ~/.docpeek/config.yaml
type Config struct {
	// Source is a base URL (http/https) or a local directory that file
	// identifiers are resolved against
	Source string `yaml:"source" koanf:"source"`

	// Index is an HTML page, relative to Source, whose copy/view buttons
	// name the files
	Index string `yaml:"index" koanf:"index"`

	// Manifest is a YAML file listing the files, takes precedence over Index
	Manifest string `yaml:"manifest" koanf:"manifest"`

	// Include are doublestar globs used when neither Manifest nor Index is set
	Include []string `yaml:"include" koanf:"include"`

	Markdown      bool   `yaml:"markdown" koanf:"markdown"`
	Highlight     bool   `yaml:"highlight" koanf:"highlight"`
	MarkdownStyle string `yaml:"markdown_style" koanf:"markdown_style"`
	CodeStyle     string `yaml:"code_style" koanf:"code_style"`

	Clipboard string `yaml:"clipboard" koanf:"clipboard"`

	// FetchTimeout of zero leaves the transport defaults in charge
	FetchTimeout time.Duration `yaml:"fetch_timeout" koanf:"fetch_timeout"`

	LogLevel string `yaml:"log_level" koanf:"log_level"`

	Serve ServeConfig `yaml:"serve" koanf:"serve"`
}

// ServeConfig holds settings for the serve subcommand
type ServeConfig struct {
	Addr            string `yaml:"addr" koanf:"addr"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Source:        ".",
		Index:         "index.html",
		Include:       []string{"**/*.md", "**/*.txt"},
		Markdown:      true,
		Highlight:     true,
		MarkdownStyle: "dark",
		CodeStyle:     "monokai",
		Clipboard:     ClipboardSystem,
		LogLevel:      "info",
		Serve: ServeConfig{
			Addr: "127.0.0.1:8765",
		},
	}
}

// Initialize sets up the configuration directories
// It creates ~/.docpeek/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".docpeek")
	ConfigFile = filepath.Join(ConfigDir, "config.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	LogFile = filepath.Join(ConfigDir, "docpeek.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCPEEK_*).
// A missing file is not an error: defaults are used.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// DOCPEEK_SERVE_ADDR -> serve.addr, DOCPEEK_CODE_STYLE stays code_style
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Decoding into the default slice keeps trailing defaults when the
	// configured list is shorter
	if k.Exists("include") {
		cfg.Include = k.Strings("include")
	}

	return cfg, nil
}

// envKey maps an environment variable name to a koanf key
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if strings.HasPrefix(key, "serve_") {
		return "serve." + strings.TrimPrefix(key, "serve_")
	}
	return key
}

// Save writes the configuration to the given YAML file path
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("source is required")
	}

	switch c.Clipboard {
	case ClipboardSystem, ClipboardOSC52:
	default:
		return fmt.Errorf("invalid clipboard %q: must be one of system, osc52", c.Clipboard)
	}

	if c.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout must be non-negative")
	}

	if c.Serve.Addr == "" {
		return fmt.Errorf("serve.addr is required")
	}

	return nil
}

// IsRemote reports whether Source is an HTTP(S) base URL
func (c *Config) IsRemote() bool {
	return IsRemote(c.Source)
}

// IsRemote reports whether a source is an HTTP(S) base URL
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// ResolveSource expands a leading ~/ in a local source directory
func ResolveSource(source string) (string, error) {
	if IsRemote(source) {
		return source, nil
	}

	if strings.HasPrefix(source, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		source = filepath.Join(homeDir, source[2:])
	}

	abs, err := filepath.Abs(source)
	if err != nil {
		return "", fmt.Errorf("failed to resolve source %s: %w", source, err)
	}
	return abs, nil
}
