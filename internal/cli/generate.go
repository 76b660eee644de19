package cli

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/crudforge/internal/config"
	"github.com/example/crudforge/internal/derive"
	"github.com/example/crudforge/internal/relation"
	"github.com/example/crudforge/internal/render"
	"github.com/example/crudforge/internal/spec"
	"github.com/example/crudforge/internal/templates/crud"
	"github.com/example/crudforge/internal/typemap"
	"github.com/example/crudforge/internal/writer"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a layered CRUD stack from an entity spec",
	Long: `Generate the full layered CRUD stack for one entity:
  - Domain model, repository port, and service interface
  - JPA entity, Spring Data repository, and persistence adapter
  - Create/Get/Update/Delete/List application services
  - Request/response DTOs, REST controller, and exception handling

The spec is a JSON or YAML document naming the entity, its id, fields,
and relationships. Flags omitted on the command line fall back to
.crudforge/config.json in the working directory.

Examples:
  crudforge generate --spec product.json --package com.example.shop
  crudforge generate --spec product.yml --package com.example.shop --lombok --output generated
  crudforge generate --spec product.json --package com.example.shop --templates-dir my-templates --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		specPath, _ := cmd.Flags().GetString("spec")
		basePkg, _ := cmd.Flags().GetString("package")
		output, _ := cmd.Flags().GetString("output")
		lombok, _ := cmd.Flags().GetBool("lombok")
		templatesDir, _ := cmd.Flags().GetString("templates-dir")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		// Config fills in whatever the command line left unset.
		if cfg, err := config.LoadConfig("."); err == nil {
			if basePkg == "" {
				basePkg = cfg.Package
			}
			if output == "" {
				output = cfg.Output
			}
			if templatesDir == "" {
				templatesDir = cfg.TemplatesDir
			}
			if !cmd.Flags().Changed("lombok") {
				lombok = cfg.Lombok
			}
		}
		if specPath == "" {
			return fmt.Errorf("--spec is required")
		}
		if basePkg == "" {
			return fmt.Errorf("--package is required (flag or .crudforge/config.json)")
		}
		if output == "" {
			output = "."
		}

		reg := typemap.Default()
		entity, err := spec.Load(specPath, reg)
		if err != nil {
			return err
		}

		var source fs.FS = crud.FS()
		if templatesDir != "" {
			source = os.DirFS(templatesDir)
		}

		rels := relation.Resolve(basePkg, entity.Relationships)
		ph := derive.Build(entity, reg, rels, derive.Options{BasePackage: basePkg, Lombok: lombok})

		artifacts, err := render.New(source).RenderAll(ph)
		if err != nil {
			return err
		}

		fmt.Printf("Generating entity '%s' (%d files)\n", entity.Name, len(artifacts))
		fmt.Println()

		if dryRun {
			fmt.Println("Files to create:")
			for _, a := range artifacts {
				fmt.Printf("  %s\n", a.RelativePath)
			}
			fmt.Println()
			fmt.Println("(dry-run mode - no files written)")
			return nil
		}

		if err := writer.WriteAll(output, artifacts); err != nil {
			return err
		}
		if err := writer.WriteManifest(output, entity.Name, artifacts); err != nil {
			return err
		}

		check := color.New(color.FgGreen).Sprint("✓")
		for _, a := range artifacts {
			fmt.Printf("%s Created %s\n", check, a.RelativePath)
		}
		fmt.Printf("%s Created %s\n", check, writer.ManifestName)

		return nil
	},
}

func init() {
	generateCmd.Flags().String("spec", "", "Path to the entity spec (.json, .yml, or .yaml)")
	generateCmd.Flags().String("package", "", "Base Java package (e.g., com.example.shop)")
	generateCmd.Flags().String("output", "", "Output directory (default current directory)")
	generateCmd.Flags().Bool("lombok", false, "Emit Lombok annotations instead of hand-written accessors")
	generateCmd.Flags().String("templates-dir", "", "Directory of template overrides (default embedded set)")
	generateCmd.Flags().Bool("dry-run", false, "Preview without writing files")
}

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	return generateCmd
}
