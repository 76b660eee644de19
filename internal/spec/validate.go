package spec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/example/crudforge/internal/typemap"
)

var entityNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

// Validate checks an entity against the type registry and the
// relationship shape rules. Checks run in a fixed order so the first
// violated rule is the one reported.
func Validate(e *Entity, reg *typemap.Registry) error {
	if !entityNamePattern.MatchString(e.Name) {
		return &FormatError{Reason: fmt.Sprintf("entity name %q must be a PascalCase identifier", e.Name)}
	}

	if e.ID.Name == "" {
		return &FormatError{Reason: "id field requires a name"}
	}
	if _, ok := reg.Lookup(e.ID.Type); !ok {
		return &UnsupportedTypeError{Field: e.ID.Name, Type: e.ID.Type}
	}
	for _, f := range e.Fields {
		if f.Name == "" {
			return &FormatError{Reason: "field requires a name"}
		}
		if _, ok := reg.Lookup(f.Type); !ok {
			return &UnsupportedTypeError{Field: f.Name, Type: f.Type}
		}
	}

	seen := map[string]bool{e.ID.Name: true}
	for _, f := range e.Fields {
		if seen[f.Name] {
			return &FormatError{Reason: fmt.Sprintf("duplicate field name %q", f.Name)}
		}
		seen[f.Name] = true
	}

	for _, r := range e.Relationships {
		// Entries without name and target are not-yet-specified; the
		// resolver skips them, so validation does too.
		if !r.Declared() {
			continue
		}
		if err := validateRelationship(r); err != nil {
			return err
		}
	}

	return nil
}

func validateRelationship(r Relationship) error {
	switch r.Kind {
	case OneToOne, OneToMany, ManyToMany:
	default:
		return &RelationshipError{
			Name: r.Name,
			Reason: fmt.Sprintf("unknown kind %q (valid: %s)", r.Kind,
				strings.Join([]string{OneToOne, OneToMany, ManyToMany}, ", ")),
		}
	}

	if r.MappedBy != "" {
		// Inverse side mirrors the owning side; it must not declare
		// physical join metadata of its own.
		if r.JoinColumn != "" {
			return &RelationshipError{Name: r.Name, Reason: "mappedBy and joinColumn are mutually exclusive"}
		}
		if r.JoinTable != nil {
			return &RelationshipError{Name: r.Name, Reason: "mappedBy and joinTable are mutually exclusive"}
		}
		return nil
	}

	if r.Kind == ManyToMany {
		jt := r.JoinTable
		if jt == nil || jt.Name == "" || jt.JoinColumn == "" || jt.InverseJoinColumn == "" {
			return &RelationshipError{
				Name:   r.Name,
				Reason: "owning many-to-many requires a complete joinTable (name, joinColumn, inverseJoinColumn)",
			}
		}
	}

	return nil
}
