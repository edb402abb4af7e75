package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// Config represents the user's keybinding configuration.
// Each section maps an action to a comma-separated key list, e.g.
// "copy": "c,y". Listing an action replaces its default keys in that
// context; an empty string unbinds it.
type Config struct {
	Version string            `json:"version"`
	Global  map[string]string `json:"global,omitempty"`
	Normal  map[string]string `json:"normal,omitempty"`
	Viewer  map[string]string `json:"viewer,omitempty"`
	Search  map[string]string `json:"search,omitempty"`
	Help    map[string]string `json:"help,omitempty"`
}

// sections maps config sections to contexts
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal: c.Global,
		ContextNormal: c.Normal,
		ContextViewer: c.Viewer,
		ContextSearch: c.Search,
		ContextHelp:   c.Help,
	}
}

// LoadConfig loads keybinding configuration from a JSON file.
// Comments and trailing commas are allowed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SplitKeys parses a comma-separated key list
func SplitKeys(list string) []string {
	var keys []string
	for _, k := range strings.Split(list, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings.
func ApplyConfig(registry *Registry, config *Config) error {
	for context, section := range config.sections() {
		for actionStr, keyList := range section {
			action := Action(actionStr)
			if !action.IsKnown() {
				return fmt.Errorf("unknown action %q in %s", actionStr, context)
			}

			keys := SplitKeys(keyList)
			for _, key := range keys {
				if err := ValidateKey(key); err != nil {
					return fmt.Errorf("%s.%s: %w", context, actionStr, err)
				}
			}

			registry.Unbind(context, action)
			registry.RegisterMultiple(context, keys, action)
		}
	}

	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
		}

		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}

	return registry, nil
}

// ExportConfig turns a registry back into the file format, so users can
// start from the effective bindings
func ExportConfig(registry *Registry) *Config {
	config := &Config{Version: "1.0"}

	for context, section := range map[Context]*map[string]string{
		ContextGlobal: &config.Global,
		ContextNormal: &config.Normal,
		ContextViewer: &config.Viewer,
		ContextSearch: &config.Search,
		ContextHelp:   &config.Help,
	} {
		for _, b := range registry.ListBindings(context) {
			if *section == nil {
				*section = make(map[string]string)
			}
			if existing := (*section)[string(b.Action)]; existing != "" {
				(*section)[string(b.Action)] = existing + "," + b.Key
			} else {
				(*section)[string(b.Action)] = b.Key
			}
		}
	}

	return config
}
