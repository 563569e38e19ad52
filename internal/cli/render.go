package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/dpshade/prompt-workbench/internal/clipboard"
	"github.com/dpshade/prompt-workbench/internal/renderer"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		strict   bool
		asJSON   bool
		pretty   bool
		copyOut  bool
		varFlags []string
	)

	cmd := &cobra.Command{
		Use:   "render <name>",
		Short: "Resolve a template's variables and print the role messages",
		Long: "Loads the named prompt set, resolves its declared variables (file- or\n" +
			"value-backed), substitutes placeholders in every role file, and prints the\n" +
			"assembled messages. --strict fails on any unmapped placeholder; the default\n" +
			"preview mode leaves unmapped placeholders visibly marked.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}

			overrides := make(map[string]string)
			for _, pair := range varFlags {
				key, value, found := strings.Cut(pair, "=")
				if !found || key == "" {
					return fmt.Errorf("invalid --var %q, expected name=value", pair)
				}
				overrides[key] = value
			}

			result, err := svc.RenderTemplate(args[0], overrides, strict)
			if err != nil {
				return err
			}

			var out string
			if asJSON {
				if out, err = renderer.RenderJSON(result.Messages); err != nil {
					return err
				}
				out += "\n"
			} else {
				out = renderer.RenderText(result.Messages)
			}

			if copyOut {
				if err := clipboard.Copy(out); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render("copied to clipboard"))
			}

			if pretty && !asJSON {
				if rendered, err := glamour.Render(out, "auto"); err == nil {
					out = rendered
				}
			}
			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&strict, "strict", "s", false, "fail when any placeholder lacks a value")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print messages as a JSON array")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "render output as markdown")
	cmd.Flags().BoolVarP(&copyOut, "copy", "c", false, "copy the output to the system clipboard")
	cmd.Flags().StringArrayVar(&varFlags, "var", nil, "override a variable (name=value, repeatable)")
	return cmd
}
