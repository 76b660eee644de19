package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/crudforge/internal/cli"
	"github.com/example/crudforge/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "crudforge",
		Short:   "crudforge - layered CRUD stack generator",
		Version: version.String(),
		Long: `crudforge turns a declarative entity spec into a complete layered CRUD
stack: domain model, persistence layer, application services, DTOs, and
a REST controller, all derived from one JSON or YAML document.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.SchemaCmd())
	rootCmd.AddCommand(cli.TemplatesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
