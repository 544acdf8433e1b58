package engine

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/redactyl/globfind/internal/pattern"
	"go.uber.org/zap"
)

// Config describes one FindFiles call.
type Config struct {
	// Root is the directory to scan; relative roots resolve against the
	// working directory.
	Root     string
	Includes []string
	Excludes []string
	// Options defaults to DefaultMatchOptions when nil.
	Options *MatchOptions
	// Rules defaults to pattern.DefaultRules when nil; pass pattern.NoRules
	// to skip validation.
	Rules  pattern.RuleSet
	Logger *zap.Logger
}

func (cfg Config) matchOptions() MatchOptions {
	if cfg.Options == nil {
		return DefaultMatchOptions()
	}
	return *cfg.Options
}

func (cfg Config) logger() *zap.Logger {
	if cfg.Logger == nil {
		return zap.NewNop()
	}
	return cfg.Logger
}

// Check validates includes and excludes without touching the filesystem.
func Check(includes, excludes []string, rules pattern.RuleSet) []pattern.Violation {
	violations := pattern.ValidateAll(includes, rules)
	return append(violations, pattern.ValidateAll(excludes, rules)...)
}

// FindFiles validates the patterns, roots them at cfg.Root and returns every
// selected file as an absolute slash-separated path in depth-first, name
// sorted order.
func FindFiles(cfg Config) ([]string, error) {
	log := cfg.logger()
	if violations := Check(cfg.Includes, cfg.Excludes, cfg.Rules); len(violations) > 0 {
		for _, v := range violations {
			log.Warn("invalid pattern", zap.String("pattern", v.Pattern), zap.String("rule", v.Rule), zap.String("reason", v.Message))
		}
		return nil, &InvalidPatternError{Violations: violations}
	}

	abs, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve root %s", cfg.Root)
	}
	root := pattern.SanitisePath(abs)
	includes := pattern.AddPathToPatterns(root, cfg.Includes)
	excludes := pattern.AddPathToPatterns(root, cfg.Excludes)

	log.Debug("scan started", zap.String("root", root), zap.Strings("includes", includes), zap.Strings("excludes", excludes))
	files, err := NewScanner(log).Scan(root, includes, excludes, cfg.matchOptions())
	if err != nil {
		return nil, err
	}
	log.Debug("scan finished", zap.String("root", root), zap.Int("files", len(files)))
	return files, nil
}
