// Package spec loads and validates entity specifications.
package spec

// Relationship kinds accepted in a spec document.
const (
	OneToOne   = "ONE_TO_ONE"
	OneToMany  = "ONE_TO_MANY"
	ManyToMany = "MANY_TO_MANY"
)

// Field is one typed field of an entity.
type Field struct {
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	Length int    `json:"length,omitempty" yaml:"length,omitempty"`
}

// ID describes the identifier field.
type ID struct {
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type" yaml:"type"`
	Generated bool   `json:"generated" yaml:"generated"`
}

// JoinTable is the column triple for an owning many-to-many side.
type JoinTable struct {
	Name              string `json:"name" yaml:"name"`
	JoinColumn        string `json:"joinColumn" yaml:"joinColumn"`
	InverseJoinColumn string `json:"inverseJoinColumn" yaml:"inverseJoinColumn"`
}

// Relationship declares a link to another entity. The wire key for the
// kind is "type", matching the spec document format.
type Relationship struct {
	Kind       string     `json:"type" yaml:"type"`
	Name       string     `json:"name" yaml:"name"`
	Target     string     `json:"target" yaml:"target"`
	MappedBy   string     `json:"mappedBy,omitempty" yaml:"mappedBy,omitempty"`
	JoinColumn string     `json:"joinColumn,omitempty" yaml:"joinColumn,omitempty"`
	JoinTable  *JoinTable `json:"joinTable,omitempty" yaml:"joinTable,omitempty"`
	Optional   *bool      `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// IsOptional reports whether a singular reference may be null. Unset
// defaults to true.
func (r Relationship) IsOptional() bool {
	return r.Optional == nil || *r.Optional
}

// Entity is the validated in-memory model of one spec document. It is
// built once per invocation and never mutated afterwards.
type Entity struct {
	Name          string         `json:"entity" yaml:"entity"`
	ID            ID             `json:"id" yaml:"id"`
	Fields        []Field        `json:"fields" yaml:"fields"`
	Relationships []Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty"`
}

// Declared returns true when the relationship carries both a name and a
// target. Entries without either are treated as not-yet-specified and
// skipped by validation and resolution alike.
func (r Relationship) Declared() bool {
	return r.Name != "" && r.Target != ""
}
