package globfind

import (
	"errors"
	"fmt"
	"time"

	"github.com/redactyl/globfind/internal/engine"
	"github.com/redactyl/globfind/internal/logging"
	"github.com/redactyl/globfind/internal/report"
	"github.com/spf13/cobra"
)

type findOptions struct {
	patternOptions
	dot        bool
	matchBase  bool
	noCase     bool
	noGlobStar bool
	json       bool
	digest     bool
	stats      bool
}

func newFindCmd(ro *rootOptions) *cobra.Command {
	o := &findOptions{}
	cmd := &cobra.Command{
		Use:   "find",
		Short: "List files selected by include and exclude globs",
		Example: `  globfind find -i './src/**/*.js' -e './src/**/deeper/*.js'
  globfind find -p ./repo -i '*.go' -e '*_test.go' --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFind(cmd, ro, o)
		},
	}
	o.register(cmd, true)
	cmd.Flags().BoolVar(&o.dot, "dot", false, "let wildcards match names starting with a dot")
	cmd.Flags().BoolVar(&o.matchBase, "match-base", true, "match patterns without / against file names at any depth")
	cmd.Flags().BoolVar(&o.noCase, "nocase", false, "match case-insensitively")
	cmd.Flags().BoolVar(&o.noGlobStar, "no-globstar", false, "treat ** like *")
	cmd.Flags().BoolVar(&o.json, "json", false, "emit JSON")
	cmd.Flags().BoolVar(&o.digest, "digest", false, "print a fingerprint of the result list")
	cmd.Flags().BoolVar(&o.stats, "stats", false, "print file count and scan duration")
	return cmd
}

func runFind(cmd *cobra.Command, ro *rootOptions, o *findOptions) error {
	setup, err := o.resolve()
	if err != nil {
		return err
	}
	gcfg, lcfg := setup.global, setup.local
	opts := engine.MatchOptions{
		Dot:        pickBool(cmd, "dot", o.dot, lcfg.Dot, gcfg.Dot),
		MatchBase:  pickBool(cmd, "match-base", o.matchBase, lcfg.MatchBase, gcfg.MatchBase),
		NoCase:     pickBool(cmd, "nocase", o.noCase, lcfg.NoCase, gcfg.NoCase),
		NoGlobStar: pickBool(cmd, "no-globstar", o.noGlobStar, lcfg.NoGlobStar, gcfg.NoGlobStar),
	}

	stderr := cmd.ErrOrStderr()
	log := logging.New(ro.verbose, stderr)
	defer func() { _ = log.Sync() }()

	start := time.Now()
	files, err := engine.FindFiles(engine.Config{
		Root:     setup.root,
		Includes: setup.includes,
		Excludes: setup.excludes,
		Options:  &opts,
		Rules:    setup.rules,
		Logger:   log,
	})
	var invalid *engine.InvalidPatternError
	if errors.As(err, &invalid) {
		report.PrintViolationLines(stderr, invalid.Violations, report.PrintOptions{NoColor: ro.colorOff(stderr)})
		return err
	}
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	out := cmd.OutOrStdout()
	if o.json {
		return report.WriteJSON(out, files, o.digest)
	}
	po := report.PrintOptions{NoColor: ro.colorOff(out), Digest: o.digest}
	if o.stats {
		po.Duration = time.Since(start)
	}
	report.PrintFiles(out, files, po)
	return nil
}
