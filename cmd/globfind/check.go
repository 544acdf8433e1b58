package globfind

import (
	"github.com/redactyl/globfind/internal/engine"
	"github.com/redactyl/globfind/internal/report"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	o := &patternOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate include and exclude globs without scanning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setup, err := o.resolve()
			if err != nil {
				return err
			}
			violations := engine.Check(setup.includes, setup.excludes, setup.rules)
			if err := report.PrintViolationTable(cmd.OutOrStdout(), violations); err != nil {
				return err
			}
			if len(violations) > 0 {
				return errCheckFailed
			}
			return nil
		},
	}
	o.register(cmd, true)
	return cmd
}
