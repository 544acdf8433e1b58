package globfind

import (
	"github.com/redactyl/globfind/internal/report"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	o := &patternOptions{}
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the active pattern validation rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setup, err := o.resolve()
			if err != nil {
				return err
			}
			return report.PrintRules(cmd.OutOrStdout(), setup.rules)
		},
	}
	o.register(cmd, false)
	return cmd
}
