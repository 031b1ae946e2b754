package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRegistry    = "npm"
	DefaultConcurrency = 5
	DefaultTimeout     = 15 * time.Second
	DefaultMaxRetries  = 3
	DefaultTripAfter   = 5
	DefaultManifest    = "package.json"
)

// Settings is the top-level configuration for skewcheck.
type Settings struct {
	Manifest    string         `yaml:"manifest"`
	Concurrency int            `yaml:"concurrency"`
	Tilde       RangePolicy    `yaml:"tilde"`
	SkipDev     bool           `yaml:"skip_dev"`
	Only        []string       `yaml:"only"`
	Output      string         `yaml:"output"`
	Registry    RegistryConfig `yaml:"registry"`
}

// RegistryConfig describes how latest versions are looked up.
type RegistryConfig struct {
	Type       string        `yaml:"type"`        // "npm" or "npm-cli"
	URL        string        `yaml:"url"`         // Empty means the public registry
	Token      string        `yaml:"token"`       // Inline, ${ENV_VAR}, or file path
	Timeout    time.Duration `yaml:"timeout"`     // Per-package lookup timeout
	MaxRetries int           `yaml:"max_retries"` // HTTP retries per lookup
	TripAfter  int           `yaml:"trip_after"`  // Consecutive failures before the breaker opens; 0 disables it
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		Manifest:    DefaultManifest,
		Concurrency: DefaultConcurrency,
		Tilde:       TildePinned,
		Output:      "table",
		Registry: RegistryConfig{
			Type:       DefaultRegistry,
			Timeout:    DefaultTimeout,
			MaxRetries: DefaultMaxRetries,
			TripAfter:  DefaultTripAfter,
		},
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding environment variables in the registry token.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Registry.Token = resolveToken(settings.Registry.Token)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".skewcheck.yaml",
		".skewcheck.yml",
		"skewcheck.yaml",
		"skewcheck.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// BumpFilter returns the parsed "only" list.
func (s *Settings) BumpFilter() ([]BumpType, error) {
	bumps := make([]BumpType, 0, len(s.Only))
	for _, raw := range s.Only {
		bump, ok := ParseBumpType(strings.TrimSpace(raw))
		if !ok {
			return nil, fmt.Errorf("unknown bump type %q (expected major, minor or patch)", raw)
		}
		bumps = append(bumps, bump)
	}
	return bumps, nil
}

// Validate checks for invalid configuration values.
func (s *Settings) Validate() error {
	if s.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", s.Concurrency)
	}
	if !s.Tilde.Valid() {
		return fmt.Errorf("tilde must be %q or %q, got %q", TildePinned, TildeFloating, s.Tilde)
	}
	switch s.Output {
	case "", "table", "json", "markdown":
	default:
		return fmt.Errorf("output must be table, json or markdown, got %q", s.Output)
	}
	if s.Registry.Type == "" {
		return errors.New("registry.type is required")
	}
	if s.Registry.Timeout <= 0 {
		return fmt.Errorf("registry.timeout must be positive, got %s", s.Registry.Timeout)
	}
	if s.Registry.MaxRetries < 0 || s.Registry.TripAfter < 0 {
		return errors.New("registry.max_retries and registry.trip_after cannot be negative")
	}
	if _, err := s.BumpFilter(); err != nil {
		return err
	}
	return nil
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}
