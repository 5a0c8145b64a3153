package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/scmbridge/internal/domain/entities"
)

const (
	// SupportedMajorVersion is the only configuration schema major accepted.
	SupportedMajorVersion = "v1"

	// DefaultVersion is assumed when the file does not declare one.
	DefaultVersion = "v1.0.0"

	// DefaultAddress is where `serve` listens when the file does not say.
	DefaultAddress = ":8080"

	// KindStatic is the provider kind backed entirely by the configuration.
	KindStatic = "static"
)

// Config is the top-level workspace configuration.
type Config struct {
	Version   string           `yaml:"version"   toml:"version"`
	Server    ServerConfig     `yaml:"server"    toml:"server"`
	Providers []ProviderConfig `yaml:"providers" toml:"providers"`
}

// ServerConfig holds the HTTP host API settings.
type ServerConfig struct {
	Address string `yaml:"address" toml:"address"`
}

// ProviderConfig describes one SCM provider to register at startup.
type ProviderConfig struct {
	ID           string `yaml:"id"            toml:"id"`
	Kind         string `yaml:"kind"          toml:"kind"` // "static"
	Label        string `yaml:"label"         toml:"label"`
	ContextValue string `yaml:"context_value" toml:"context_value"`
	RootURI      string `yaml:"root_uri"      toml:"root_uri"` // Inline or with ${ENV_VAR}
	Count        *int   `yaml:"count"         toml:"count"`

	// Selected marks the repository selected once every provider is registered.
	Selected bool `yaml:"selected" toml:"selected"`

	// Input box settings applied to the registered repository.
	CommitTemplate   string `yaml:"commit_template"    toml:"commit_template"`
	Placeholder      string `yaml:"placeholder"        toml:"placeholder"`
	MaxSubjectLength int    `yaml:"max_subject_length" toml:"max_subject_length"`

	AcceptInputCommand *entities.Command                `yaml:"accept_input_command" toml:"accept_input_command"`
	StatusBarCommands  []entities.Command               `yaml:"status_bar_commands"  toml:"status_bar_commands"`
	Status             *entities.WorkingDirectoryStatus `yaml:"status"               toml:"status"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file. The format follows the file
// extension: YAML (.yaml, .yml), TOML (.toml) or HCL (.hcl).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg *Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = decodeYAML(data)
	case ".toml":
		cfg, err = decodeTOML(data)
	case ".hcl":
		cfg, err = decodeHCL(data, path)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)
	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

func decodeYAML(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	expandProviders(&cfg)
	return &cfg, nil
}

func decodeTOML(data []byte) (*Config, error) {
	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	expandProviders(&cfg)
	return &cfg, nil
}

// expandProviders resolves ${ENV_VAR} references in free-text provider fields.
// HCL files use native `env.NAME` references instead.
func expandProviders(cfg *Config) {
	for i := range cfg.Providers {
		provider := &cfg.Providers[i]
		provider.Label = expandEnv(provider.Label)
		provider.RootURI = expandEnv(provider.RootURI)
		provider.CommitTemplate = expandEnv(provider.CommitTemplate)
		provider.Placeholder = expandEnv(provider.Placeholder)
	}
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
		".scmbridge.yaml",
		".scmbridge.yml",
		".scmbridge.toml",
		".scmbridge.hcl",
		"scmbridge.yaml",
		"scmbridge.yml",
		"scmbridge.toml",
		"scmbridge.hcl",
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

// expandEnv expands environment variable references (${VAR}). Unset
// variables expand to the empty string and are logged.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = DefaultAddress
	}
	for i := range cfg.Providers {
		if cfg.Providers[i].Kind == "" {
			cfg.Providers[i].Kind = KindStatic
		}
		if cfg.Providers[i].Label == "" {
			cfg.Providers[i].Label = cfg.Providers[i].ID
		}
	}
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if !semver.IsValid(cfg.Version) {
		return fmt.Errorf("version %q is not a valid semantic version (e.g. %s)", cfg.Version, DefaultVersion)
	}
	if major := semver.Major(cfg.Version); major != SupportedMajorVersion {
		return fmt.Errorf("unsupported config version %q: only %s.x is supported", cfg.Version, SupportedMajorVersion)
	}

	if len(cfg.Providers) == 0 {
		return errors.New("at least one provider must be configured")
	}

	for i, p := range cfg.Providers {
		if p.ID == "" {
			return fmt.Errorf("providers[%d].id is required", i)
		}
		if p.MaxSubjectLength < 0 {
			return fmt.Errorf("providers[%d].max_subject_length must not be negative", i)
		}
		for j, command := range p.StatusBarCommands {
			if command.ID == "" {
				return fmt.Errorf("providers[%d].status_bar_commands[%d].id is required", i, j)
			}
		}
		if p.AcceptInputCommand != nil && p.AcceptInputCommand.ID == "" {
			return fmt.Errorf("providers[%d].accept_input_command.id is required", i)
		}
	}

	return nil
}
