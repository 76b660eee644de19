package spec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/crudforge/internal/typemap"
)

// Load reads a spec document from disk, chooses the wire format by file
// extension (.yml/.yaml for YAML, JSON otherwise), and returns the
// validated entity.
func Load(path string, reg *typemap.Registry) (*Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	return Parse(data, ext == ".yml" || ext == ".yaml", reg)
}

// Parse decodes and validates a spec document. No partial model is
// returned on failure.
func Parse(data []byte, isYAML bool, reg *typemap.Registry) (*Entity, error) {
	var e Entity
	if isYAML {
		if err := yaml.Unmarshal(data, &e); err != nil {
			return nil, &FormatError{Reason: fmt.Sprintf("failed to parse YAML: %v", err)}
		}
	} else {
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, &FormatError{Reason: fmt.Sprintf("failed to parse JSON: %v", err)}
		}
	}

	// A missing id object defaults to an auto-generated Long "id".
	if e.ID.Name == "" && e.ID.Type == "" {
		e.ID = ID{Name: "id", Type: "Long", Generated: true}
	}

	if err := Validate(&e, reg); err != nil {
		return nil, err
	}
	return &e, nil
}
