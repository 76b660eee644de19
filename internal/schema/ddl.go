// Package schema turns a validated entity into CREATE TABLE statements
// and can smoke-test them against an in-memory database.
package schema

import (
	"fmt"
	"strings"

	"github.com/example/crudforge/internal/naming"
	"github.com/example/crudforge/internal/spec"
	"github.com/example/crudforge/internal/typemap"
)

// Statements builds the DDL for an entity: one CREATE TABLE for the
// entity itself, plus one per owning many-to-many join table. The table
// parameter overrides the entity table name; empty means the snake_case
// entity name.
//
// The entity table carries the id column first, then scalar columns in
// declaration order, then join columns for owning singular references.
// Inverse sides and one-to-many relationships contribute no columns
// here; their join column lives on the target's table.
func Statements(e spec.Entity, reg *typemap.Registry, table string) ([]string, error) {
	if table == "" {
		table = naming.ToSnakeCase(e.Name)
	}

	var cols []string
	idCol, err := column(spec.Field{Name: e.ID.Name, Type: e.ID.Type}, reg)
	if err != nil {
		return nil, err
	}
	cols = append(cols, idCol+" NOT NULL")

	for _, f := range e.Fields {
		col, err := column(f, reg)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}

	for _, r := range e.Relationships {
		if !r.Declared() || r.Kind != spec.OneToOne || r.MappedBy != "" {
			continue
		}
		name := r.JoinColumn
		if name == "" {
			name = naming.ToSnakeCase(r.Name) + "_id"
		}
		join := fmt.Sprintf("%s BIGINT", name)
		if !r.IsOptional() {
			join += " NOT NULL"
		}
		cols = append(cols, join)
	}

	cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", naming.ToSnakeCase(e.ID.Name)))

	statements := []string{createTable(table, cols)}

	for _, r := range e.Relationships {
		if !r.Declared() || r.Kind != spec.ManyToMany || r.MappedBy != "" || r.JoinTable == nil {
			continue
		}
		jt := r.JoinTable
		statements = append(statements, createTable(jt.Name, []string{
			jt.JoinColumn + " BIGINT NOT NULL",
			jt.InverseJoinColumn + " BIGINT NOT NULL",
			fmt.Sprintf("PRIMARY KEY (%s, %s)", jt.JoinColumn, jt.InverseJoinColumn),
		}))
	}

	return statements, nil
}

func column(f spec.Field, reg *typemap.Registry) (string, error) {
	m, ok := reg.Lookup(f.Type)
	if !ok {
		return "", &spec.UnsupportedTypeError{Field: f.Name, Type: f.Type}
	}
	col := fmt.Sprintf("%s %s", naming.ToSnakeCase(f.Name), m.Column(f.Length))
	if m.NotNull {
		col += " NOT NULL"
	}
	if m.Default != "" {
		col += " DEFAULT " + m.Default
	}
	return col, nil
}

func createTable(name string, cols []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", name)
	for i, col := range cols {
		b.WriteString("    " + col)
		if i < len(cols)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(");")
	return b.String()
}
