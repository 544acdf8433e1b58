package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/redactyl/globfind/internal/pattern"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for globfind.
type FileConfig struct {
	Include    []string `yaml:"include,omitempty"`
	Exclude    []string `yaml:"exclude,omitempty"`
	Dot        *bool    `yaml:"dot,omitempty"`
	MatchBase  *bool    `yaml:"match_base,omitempty"`
	NoCase     *bool    `yaml:"nocase,omitempty"`
	NoGlobStar *bool    `yaml:"no_globstar,omitempty"`

	// NoRules turns pattern validation off entirely.
	NoRules *bool `yaml:"no_rules,omitempty"`
	// DisableRules drops built-in rules by name.
	DisableRules []string `yaml:"disable_rules,omitempty"`
	// Rules adds rules, or replaces built-in ones of the same name.
	Rules []RuleSpec `yaml:"rules,omitempty"`
}

// RuleSpec declares a rule in YAML. A pattern violates it when every
// condition that is set holds.
type RuleSpec struct {
	Name     string `yaml:"name"`
	Message  string `yaml:"message"`
	Prefix   string `yaml:"prefix,omitempty"`
	Contains string `yaml:"contains,omitempty"`
	Equals   string `yaml:"equals,omitempty"`
}

// Rule compiles s into a pattern.Rule.
func (s RuleSpec) Rule() (pattern.Rule, error) {
	if s.Name == "" {
		return pattern.Rule{}, errors.New("rule without name")
	}
	if s.Prefix == "" && s.Contains == "" && s.Equals == "" {
		return pattern.Rule{}, fmt.Errorf("rule %s: one of prefix, contains or equals is required", s.Name)
	}
	msg := s.Message
	if msg == "" {
		msg = "rejected by rule " + s.Name
	}
	return pattern.Rule{
		Name:    s.Name,
		Message: msg,
		Test: func(p string) bool {
			if s.Prefix != "" && !strings.HasPrefix(p, s.Prefix) {
				return false
			}
			if s.Contains != "" && !strings.Contains(p, s.Contains) {
				return false
			}
			if s.Equals != "" && p != s.Equals {
				return false
			}
			return true
		},
	}, nil
}

// RuleSet builds the active rule set starting from the built-in rules.
func (fc FileConfig) RuleSet() (pattern.RuleSet, error) {
	if fc.NoRules != nil && *fc.NoRules {
		return pattern.NoRules, nil
	}
	rules := pattern.DefaultRules().Without(fc.DisableRules...)
	for _, rs := range fc.Rules {
		r, err := rs.Rule()
		if err != nil {
			return nil, err
		}
		rules = rules.Merge(r)
	}
	return rules, nil
}

// ErrNotFound is returned when no config file exists at the searched locations.
var ErrNotFound = errors.New("config not found")

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LocalNames lists the repo-local config file names in search order.
var LocalNames = []string{".globfind.yml", ".globfind.yaml", "globfind.yml", "globfind.yaml"}

// LoadLocal searches for a config file in the given root.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range LocalNames {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, fmt.Errorf("no local config in %s: %w", root, ErrNotFound)
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, fmt.Errorf("no config dir: %w", ErrNotFound)
	}
	p := filepath.Join(base, "globfind", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, fmt.Errorf("no global config: %w", ErrNotFound)
}
