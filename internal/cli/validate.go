package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a template file's placeholder syntax",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			valid, violations := svc.ValidateText(string(content))
			if valid {
				fmt.Println(okStyle.Render("valid") + mutedStyle.Render(
					fmt.Sprintf("  (%d placeholder(s))",
						svc.Workspace().Parser().CountOccurrences(string(content)))))
				return nil
			}
			for _, violation := range violations {
				fmt.Println(errorStyle.Render("invalid: ") + violation)
			}
			os.Exit(1)
			return nil
		},
	}
}
