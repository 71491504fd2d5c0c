package config

import (
	"errors"
	"os"
	"regexp"
	"strings"
)

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// ErrUnknownKey is returned when a config line names a key berdump does
// not recognize.
var ErrUnknownKey = errors.New("config: unknown key")

// Load reads and parses path, returning DefaultConfig() unmodified if
// the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse parses a flat key:value configuration body, applying
// ${VAR}/${VAR:-default} environment substitution before parsing
// (grounded on the reference server's config loader, reduced from a
// full YAML subset to this package's two keys).
func Parse(data []byte) (*Config, error) {
	data = substituteEnvVars(data)
	cfg := DefaultConfig()

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "trace":
			cfg.Trace = value == "on" || value == "true"
		case "allocator":
			cfg.Allocator = value
		default:
			return nil, ErrUnknownKey
		}
	}
	return cfg, nil
}

func substituteEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		content := string(match[2 : len(match)-1])
		if name, def, ok := strings.Cut(content, ":-"); ok {
			if val := os.Getenv(name); val != "" {
				return []byte(val)
			}
			return []byte(def)
		}
		return []byte(os.Getenv(content))
	})
}
