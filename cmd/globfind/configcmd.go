package globfind

import (
	"fmt"
	"os"

	"github.com/redactyl/globfind/internal/config"
	"github.com/redactyl/globfind/internal/pattern"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type configInitOptions struct {
	output  string
	include []string
	exclude []string
	dot     bool
	noCase  bool
	force   bool
}

func newConfigCmd() *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}

	o := &configInitOptions{}
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .globfind.yml with default patterns and options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, o)
		},
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&o.output, "output", ".globfind.yml", "output file path")
	initCmd.Flags().StringArrayVar(&o.include, "include", []string{"./src/**/*"}, "include globs to record")
	initCmd.Flags().StringArrayVar(&o.exclude, "exclude", nil, "exclude globs to record")
	initCmd.Flags().BoolVar(&o.dot, "dot", false, "record dot: true")
	initCmd.Flags().BoolVar(&o.noCase, "nocase", false, "record nocase: true")
	initCmd.Flags().BoolVar(&o.force, "force", false, "overwrite an existing file")
	return cfgCmd
}

func runConfigInit(cmd *cobra.Command, o *configInitOptions) error {
	if _, err := os.Stat(o.output); err == nil && !o.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", o.output)
	}
	matchBase := true
	fc := config.FileConfig{
		Include:   o.include,
		Exclude:   o.exclude,
		Dot:       boolPtr(o.dot),
		MatchBase: &matchBase,
		NoCase:    boolPtr(o.noCase),
	}
	rules, err := fc.RuleSet()
	if err != nil {
		return err
	}
	for _, p := range append(append([]string{}, fc.Include...), fc.Exclude...) {
		if v := pattern.Validate(p, rules); len(v) > 0 {
			return fmt.Errorf("refusing to record %s", v[0])
		}
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(o.output, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", o.output)
	return nil
}

func boolPtr(v bool) *bool { return &v }
