package globfind

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "0.1.0"

// errCheckFailed makes Execute exit 1 without printing anything further.
var errCheckFailed = errors.New("patterns failed validation")

// rootOptions holds the persistent flags.
type rootOptions struct {
	noColor bool
	verbose bool
}

// colorOff reports whether output to w should stay unstyled.
func (o *rootOptions) colorOff(w io.Writer) bool {
	if o.noColor {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return !term.IsTerminal(int(f.Fd()))
}

// newRootCmd builds the base Cobra command with every subcommand attached.
func newRootCmd() *cobra.Command {
	ro := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "globfind",
		Short:         "Find files by include and exclude globs",
		Long:          "globfind resolves include/exclude glob patterns against a directory tree, skipping directories no include can match.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&ro.noColor, "no-color", false, "disable colorized output")
	cmd.PersistentFlags().BoolVarP(&ro.verbose, "verbose", "v", false, "log directory walk decisions to stderr")

	cmd.AddCommand(
		newFindCmd(ro),
		newCheckCmd(),
		newRulesCmd(),
		newConfigCmd(),
		newCompletionCmd(),
	)
	return cmd
}

// Execute runs the globfind CLI. It should be called by the main package.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errCheckFailed) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}
