package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:     "list [query]",
		Aliases: []string{"ls"},
		Short:   "List discovered prompt sets, optionally fuzzy-filtered",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			if refresh {
				svc.Refresh()
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			sets := svc.ListPromptSets(query)
			printWarnings(svc)

			if len(sets) == 0 {
				fmt.Println(mutedStyle.Render("no prompt sets found"))
				return nil
			}
			for _, set := range sets {
				line := nameStyle.Render(set.Name) +
					mutedStyle.Render("  ["+strings.Join(set.RoleKeys(), ", ")+"]")
				if set.IsOrphaned {
					line += orphanStyle.Render("  (orphaned)")
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&refresh, "refresh", "r", false, "rescan the workspace before listing")
	return cmd
}
