package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one prompt set: its files, variable config, and orphan status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}

			set, ok := svc.GetPromptSet(args[0])
			if !ok {
				fmt.Println(mutedStyle.Render("prompt set " + args[0] + " not found"))
				return nil
			}

			fmt.Println(titleStyle.Render(set.Name))
			for _, key := range set.RoleKeys() {
				fmt.Printf("  %-10s %s\n", key, set.Prompts[key].Path)
			}
			if set.VarFile == nil {
				fmt.Println("  " + orphanStyle.Render("orphaned: no matching variable-config file"))
				return nil
			}
			fmt.Println("  " + mutedStyle.Render("vars:      "+set.VarFile.Path))

			tmpl, err := svc.Workspace().LoadTemplate(set.Name)
			if err != nil {
				return err
			}
			if tmpl.Description != "" {
				fmt.Println("  " + mutedStyle.Render(tmpl.Description))
			}
			if names := tmpl.VariableNames(); len(names) > 0 {
				fmt.Println("  variables: " + strings.Join(names, ", "))
			}
			return nil
		},
	}
}
