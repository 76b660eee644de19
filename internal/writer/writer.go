// Package writer materializes rendered artifacts on disk.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/crudforge/internal/render"
)

// ManifestName is the summary file written next to the generated tree.
const ManifestName = "README-GENERATED.md"

// WriteAll writes every artifact under root, creating parent directories
// as needed. Existing files are overwritten; regeneration is the normal
// workflow.
func WriteAll(root string, artifacts []render.Artifact) error {
	for _, a := range artifacts {
		path := filepath.Join(root, filepath.FromSlash(a.RelativePath))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", a.RelativePath, err)
		}
		if err := os.WriteFile(path, []byte(a.Content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", a.RelativePath, err)
		}
	}
	return nil
}

// Manifest builds the README-GENERATED.md content: what was generated,
// for which entity, file by file.
func Manifest(entity string, artifacts []render.Artifact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Generated sources for %s\n\n", entity)
	b.WriteString("This tree was produced by crudforge. Regenerating overwrites every file listed below.\n\n")
	for _, a := range artifacts {
		fmt.Fprintf(&b, "- `%s`\n", a.RelativePath)
	}
	return b.String()
}

// WriteManifest writes the manifest file at the output root.
func WriteManifest(root, entity string, artifacts []render.Artifact) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(root, ManifestName)
	if err := os.WriteFile(path, []byte(Manifest(entity, artifacts)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ManifestName, err)
	}
	return nil
}
