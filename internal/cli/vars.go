package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newVarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vars <name>",
		Short: "Report required, missing, and unused variables for a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}

			report, err := svc.VariableReport(args[0])
			if err != nil {
				return err
			}

			for _, diag := range report {
				fmt.Println(titleStyle.Render(string(diag.Role)) + mutedStyle.Render("  "+diag.FilePath))
				if !diag.Valid {
					for _, violation := range diag.Errors {
						fmt.Println("  " + errorStyle.Render("syntax: ") + violation)
					}
				}
				if len(diag.Required) > 0 {
					fmt.Println("  requires: " + strings.Join(diag.Required, ", "))
				}
				if len(diag.Missing) > 0 {
					fmt.Println("  " + warningStyle.Render("missing:  "+strings.Join(diag.Missing, ", ")))
				}
				if len(diag.Unused) > 0 {
					fmt.Println("  " + mutedStyle.Render("unused:   "+strings.Join(diag.Unused, ", ")))
				}
			}

			unused, err := svc.UnusedAcrossTemplate(args[0])
			if err != nil {
				return err
			}
			if len(unused) > 0 {
				fmt.Println(mutedStyle.Render("declared but unused in every role: " + strings.Join(unused, ", ")))
			}
			return nil
		},
	}
}
