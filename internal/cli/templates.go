package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/crudforge/internal/derive"
	"github.com/example/crudforge/internal/render"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the required templates and available placeholders",
	Long: `List every template a --templates-dir directory must provide, and
every placeholder key those templates may reference. Unknown keys in a
template pass through unchanged, so a custom set only needs the keys it
actually uses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Required templates:")
		for _, name := range render.RequiredTemplates() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
		fmt.Println("Available placeholders:")
		for _, key := range derive.Keys() {
			fmt.Printf("  $%s\n", key)
		}
		return nil
	},
}

// TemplatesCmd returns the templates command
func TemplatesCmd() *cobra.Command {
	return templatesCmd
}
