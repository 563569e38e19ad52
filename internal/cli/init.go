package cli

import (
	"fmt"
	"strings"

	"github.com/dpshade/prompt-workbench/internal/workspace"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		name     string
		preset   string
		noDetect bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a workspace config in the current project",
		Long: "Creates " + workspace.ConfigPath("<root>") + ". With --preset the named layout\n" +
			"is used; otherwise the project type is auto-detected from its build files.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = "workspace"
			}
			ws, err := workspace.Create(flagWorkspace, name, preset, !noDetect)
			if err != nil {
				return err
			}
			cfg := ws.Config()
			fmt.Println(okStyle.Render("Initialized workspace ") + nameStyle.Render(cfg.Name))
			fmt.Println(mutedStyle.Render("  templates: " + cfg.Layout.TemplateDir + " (" + cfg.Layout.TemplateExtension + ")"))
			fmt.Println(mutedStyle.Render("  variables: " + cfg.Layout.VarDir + " (" + cfg.Layout.VarExtension + ")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "workspace name")
	cmd.Flags().StringVarP(&preset, "preset", "p", "",
		"layout preset ("+strings.Join(workspace.PresetNames(), ", ")+")")
	cmd.Flags().BoolVar(&noDetect, "no-detect", false, "skip project type auto-detection")
	return cmd
}
