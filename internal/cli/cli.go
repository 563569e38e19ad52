// Package cli implements the command-line surface. It drives the service
// facade only; discovery and resolution internals stay behind it.
package cli

import (
	"fmt"
	"os"

	"github.com/dpshade/prompt-workbench/internal/logging"
	"github.com/dpshade/prompt-workbench/internal/service"
	"github.com/dpshade/prompt-workbench/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	flagVerbosity int
	flagWorkspace string
)

// Execute runs the root command.
func Execute(version string) {
	root := newRootCmd(version)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

func newRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "prompt-workbench",
		Short:   "Discover, validate, and resolve prompt templates in a project tree",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(flagVerbosity)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().CountVarP(&flagVerbosity, "verbose", "v", "increase log verbosity (repeatable)")
	root.PersistentFlags().StringVarP(&flagWorkspace, "workspace", "w", ".", "workspace root directory")

	root.AddCommand(
		newInitCmd(),
		newListCmd(),
		newShowCmd(),
		newRenderCmd(),
		newValidateCmd(),
		newVarsCmd(),
		newConfigCmd(),
	)
	return root
}

// openService opens the workspace named by --workspace and wraps it in a
// service.
func openService() (*service.Service, error) {
	ws, err := workspace.Open(flagWorkspace)
	if err != nil {
		return nil, err
	}
	return service.NewService(ws), nil
}

// printWarnings renders discovery warnings to stderr so stdout stays
// machine-readable.
func printWarnings(svc *service.Service) {
	for _, warning := range svc.Warnings() {
		fmt.Fprintln(os.Stderr, warningStyle.Render(warning))
	}
}
