package core

import (
	"github.com/redactyl/globfind/internal/engine"
	"github.com/redactyl/globfind/internal/pattern"
)

// Re-export selected internal types as a stable public API surface.
type (
	Config              = engine.Config
	MatchOptions        = engine.MatchOptions
	InvalidPatternError = engine.InvalidPatternError
	Rule                = pattern.Rule
	RuleSet             = pattern.RuleSet
	Violation           = pattern.Violation
)

var (
	// ErrInvalidPattern matches errors returned for rejected patterns.
	ErrInvalidPattern = engine.ErrInvalidPattern
	// ErrFilesystem matches errors raised while listing the tree.
	ErrFilesystem = engine.ErrFilesystem
)

// FindFiles is the stable entrypoint for other programs.
func FindFiles(cfg Config) ([]string, error) {
	return engine.FindFiles(cfg)
}

// Check validates patterns without scanning.
func Check(includes, excludes []string, rules RuleSet) []Violation {
	return engine.Check(includes, excludes, rules)
}

// DefaultRules returns the built-in pattern rules.
func DefaultRules() RuleSet { return pattern.DefaultRules() }

// DefaultMatchOptions returns the options used when Config.Options is nil.
func DefaultMatchOptions() MatchOptions { return engine.DefaultMatchOptions() }
