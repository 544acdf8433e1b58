package globfind

import (
	"errors"
	"path/filepath"

	"github.com/redactyl/globfind/internal/config"
	"github.com/redactyl/globfind/internal/pattern"
	"github.com/spf13/cobra"
)

// patternOptions are the flags shared by find, check and rules.
type patternOptions struct {
	path         string
	include      []string
	exclude      []string
	noRules      bool
	disableRules []string
}

func (o *patternOptions) register(cmd *cobra.Command, withPatterns bool) {
	cmd.Flags().StringVarP(&o.path, "path", "p", ".", "root directory to scan")
	if withPatterns {
		cmd.Flags().StringArrayVarP(&o.include, "include", "i", nil, "include glob (repeatable, ! negates)")
		cmd.Flags().StringArrayVarP(&o.exclude, "exclude", "e", nil, "exclude glob (repeatable, ! re-admits)")
	}
	cmd.Flags().BoolVar(&o.noRules, "no-rules", false, "skip pattern validation")
	cmd.Flags().StringSliceVar(&o.disableRules, "disable-rule", nil, "disable a validation rule by name (see 'globfind rules')")
}

// scanSetup is the configuration resolved from flags and config files.
type scanSetup struct {
	root     string
	includes []string
	excludes []string
	rules    pattern.RuleSet
	global   config.FileConfig
	local    config.FileConfig
}

func (o *patternOptions) resolve() (scanSetup, error) {
	abs, err := filepath.Abs(o.path)
	if err != nil {
		return scanSetup{}, err
	}
	// Load configs: CLI > local > global
	gcfg, lcfg, err := loadConfigs(abs)
	if err != nil {
		return scanSetup{}, err
	}
	rules, err := pickRules(o.noRules, o.disableRules, lcfg, gcfg)
	if err != nil {
		return scanSetup{}, err
	}
	return scanSetup{
		root:     abs,
		includes: pickStrings(o.include, lcfg.Include, gcfg.Include),
		excludes: pickStrings(o.exclude, lcfg.Exclude, gcfg.Exclude),
		rules:    rules,
		global:   gcfg,
		local:    lcfg,
	}, nil
}

func pickStrings(cli, local, global []string) []string {
	if len(cli) > 0 {
		return cli
	}
	if len(local) > 0 {
		return local
	}
	return global
}

// pickBool honours an explicitly set flag, then local, then global config.
func pickBool(cmd *cobra.Command, name string, cli bool, local, global *bool) bool {
	if cmd.Flags().Changed(name) {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}

func hasRuleConfig(fc config.FileConfig) bool {
	return fc.NoRules != nil || len(fc.DisableRules) > 0 || len(fc.Rules) > 0
}

// pickRules builds the rule set from the first config that mentions rules,
// then applies --no-rules and --disable-rule.
func pickRules(noRules bool, disable []string, local, global config.FileConfig) (pattern.RuleSet, error) {
	if noRules {
		return pattern.NoRules, nil
	}
	src := global
	if hasRuleConfig(local) {
		src = local
	}
	rules, err := src.RuleSet()
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return rules, nil
	}
	return rules.Without(disable...), nil
}

// loadConfigs returns the global and local configs. Missing files yield zero
// values; unreadable or malformed ones are errors.
func loadConfigs(root string) (global, local config.FileConfig, err error) {
	global, err = config.LoadGlobal()
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return global, local, err
	}
	local, err = config.LoadLocal(root)
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return global, local, err
	}
	return global, local, nil
}
