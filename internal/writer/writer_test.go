package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/crudforge/internal/render"
)

func TestWriteAll(t *testing.T) {
	root := t.TempDir()
	artifacts := []render.Artifact{
		{RelativePath: "src/main/java/com/example/domain/model/Product.java", Content: "class Product {}\n"},
		{RelativePath: "src/main/java/com/example/presentation/rest/ProductController.java", Content: "class ProductController {}\n"},
	}

	if err := WriteAll(root, artifacts); err != nil {
		t.Fatal(err)
	}

	for _, a := range artifacts {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(a.RelativePath)))
		if err != nil {
			t.Fatalf("reading %s: %v", a.RelativePath, err)
		}
		if string(data) != a.Content {
			t.Errorf("%s: content = %q, want %q", a.RelativePath, data, a.Content)
		}
	}
}

func TestWriteAllOverwrites(t *testing.T) {
	root := t.TempDir()
	artifact := render.Artifact{RelativePath: "a/File.java", Content: "new\n"}

	if err := WriteAll(root, []render.Artifact{{RelativePath: "a/File.java", Content: "old\n"}}); err != nil {
		t.Fatal(err)
	}
	if err := WriteAll(root, []render.Artifact{artifact}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(root, "a", "File.java"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new\n" {
		t.Errorf("content = %q, want overwritten value", data)
	}
}

func TestManifestListsArtifacts(t *testing.T) {
	artifacts := []render.Artifact{
		{RelativePath: "src/main/java/com/example/domain/model/Product.java"},
		{RelativePath: "src/main/java/com/example/presentation/dto/ProductRequest.java"},
	}
	got := Manifest("Product", artifacts)

	if !strings.Contains(got, "# Generated sources for Product") {
		t.Errorf("missing heading:\n%s", got)
	}
	for _, a := range artifacts {
		if !strings.Contains(got, "`"+a.RelativePath+"`") {
			t.Errorf("manifest missing %s:\n%s", a.RelativePath, got)
		}
	}
}

func TestWriteManifest(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")
	if err := WriteManifest(root, "Product", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, ManifestName)); err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
}
