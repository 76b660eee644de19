package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/crudforge/internal/schema"
	"github.com/example/crudforge/internal/spec"
	"github.com/example/crudforge/internal/typemap"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the DDL for an entity spec",
	Long: `Print CREATE TABLE statements for an entity spec: the entity table
plus one join table per owning many-to-many relationship.

With --check the statements are also executed against an in-memory
database to catch malformed DDL before it reaches a migration.

Examples:
  crudforge schema --spec product.json
  crudforge schema --spec product.json --table m_product --check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		specPath, _ := cmd.Flags().GetString("spec")
		table, _ := cmd.Flags().GetString("table")
		check, _ := cmd.Flags().GetBool("check")

		if specPath == "" {
			return fmt.Errorf("--spec is required")
		}

		reg := typemap.Default()
		entity, err := spec.Load(specPath, reg)
		if err != nil {
			return err
		}

		stmts, err := schema.Statements(*entity, reg, table)
		if err != nil {
			return err
		}

		fmt.Println(strings.Join(stmts, "\n\n"))

		if check {
			if err := schema.Check(stmts); err != nil {
				return err
			}
			fmt.Println()
			fmt.Printf("%s Schema check passed\n", color.New(color.FgGreen).Sprint("✓"))
		}

		return nil
	},
}

func init() {
	schemaCmd.Flags().String("spec", "", "Path to the entity spec (.json, .yml, or .yaml)")
	schemaCmd.Flags().String("table", "", "Override the entity table name")
	schemaCmd.Flags().Bool("check", false, "Execute the DDL against an in-memory database")
}

// SchemaCmd returns the schema command
func SchemaCmd() *cobra.Command {
	return schemaCmd
}
