// Package relation resolves declarative relationship specs into the join
// descriptors the persistence layer needs.
package relation

import (
	"fmt"

	"github.com/example/crudforge/internal/spec"
)

const setImport = "import java.util.Set;"

// Resolved carries everything a template needs to emit one relationship
// field on the persistence entity: the Java field shape, the JPA
// annotation lines for the owning or inverse side, and the imports the
// field pulls in.
type Resolved struct {
	Name        string
	Target      string
	Kind        string
	Collection  bool
	Owning      bool
	FieldType   string   // DetailEntity or Set<TagEntity>
	Init        string   // field initializer, "" for singular references
	Annotations []string // JPA annotation lines, unindented
	Imports     []string
}

// Resolve converts relationship declarations into resolved descriptors.
// Entries lacking a name or target are silently skipped: they count as
// not-yet-specified, not as errors. Everything else was already checked
// by spec validation.
func Resolve(basePkg string, rels []spec.Relationship) []Resolved {
	var resolved []Resolved
	for _, r := range rels {
		if !r.Declared() {
			continue
		}
		resolved = append(resolved, resolveOne(basePkg, r))
	}
	return resolved
}

func resolveOne(basePkg string, r spec.Relationship) Resolved {
	res := Resolved{
		Name:   r.Name,
		Target: r.Target,
		Kind:   r.Kind,
		Owning: r.MappedBy == "",
		Imports: []string{
			fmt.Sprintf("import %s.infrastructure.persistence.%sEntity;", basePkg, r.Target),
		},
	}

	switch r.Kind {
	case spec.OneToOne:
		res.FieldType = r.Target + "Entity"
		if r.MappedBy != "" {
			res.Annotations = []string{
				fmt.Sprintf("@OneToOne(mappedBy = %q, fetch = FetchType.LAZY)", r.MappedBy),
			}
		} else {
			res.Annotations = []string{
				fmt.Sprintf("@OneToOne(fetch = FetchType.LAZY, optional = %t)", r.IsOptional()),
			}
			if r.JoinColumn != "" {
				res.Annotations = append(res.Annotations,
					fmt.Sprintf("@JoinColumn(name = %q)", r.JoinColumn))
			}
		}

	case spec.OneToMany:
		res.Collection = true
		if r.MappedBy != "" {
			res.Annotations = []string{
				fmt.Sprintf("@OneToMany(mappedBy = %q, fetch = FetchType.LAZY)", r.MappedBy),
			}
		} else {
			res.Annotations = []string{"@OneToMany(fetch = FetchType.LAZY)"}
			if r.JoinColumn != "" {
				res.Annotations = append(res.Annotations,
					fmt.Sprintf("@JoinColumn(name = %q)", r.JoinColumn))
			}
		}

	case spec.ManyToMany:
		res.Collection = true
		if r.MappedBy != "" {
			// Inverse side mirrors the owning side; no join table here.
			res.Annotations = []string{
				fmt.Sprintf("@ManyToMany(mappedBy = %q, fetch = FetchType.LAZY)", r.MappedBy),
			}
		} else {
			jt := r.JoinTable
			res.Annotations = []string{
				"@ManyToMany(fetch = FetchType.LAZY)",
				fmt.Sprintf("@JoinTable(name = %q, joinColumns = @JoinColumn(name = %q), inverseJoinColumns = @JoinColumn(name = %q))",
					jt.Name, jt.JoinColumn, jt.InverseJoinColumn),
			}
		}
	}

	if res.Collection {
		res.FieldType = fmt.Sprintf("Set<%sEntity>", r.Target)
		res.Init = " = new java.util.LinkedHashSet<>()"
		res.Imports = append(res.Imports, setImport)
	}

	return res
}
