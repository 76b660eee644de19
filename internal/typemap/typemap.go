// Package typemap holds the closed mapping from abstract field types to
// Java types, column types, imports, and JDBC extraction methods.
package typemap

import (
	"fmt"
	"sort"
)

// Mapping describes everything the generators need to know about one
// abstract field type.
type Mapping struct {
	JavaType   string              // type name emitted in declarations
	Import     string              // import statement, or "" for java.lang types
	Column     func(length int) string // DDL column type; length 0 means unspecified
	NotNull    bool                // column carries NOT NULL regardless of spec
	Default    string              // column default expression, or ""
	Extraction string              // ResultSet accessor: getString, getLong, ...
}

// Registry is the immutable type table. Construct it once with Default and
// pass it to every component that needs type information.
type Registry struct {
	entries map[string]Mapping
}

// Default returns the registry covering the supported type tags.
func Default() *Registry {
	fixed := func(t string) func(int) string {
		return func(int) string { return t }
	}
	return &Registry{entries: map[string]Mapping{
		"String": {
			JavaType: "String",
			Column: func(length int) string {
				if length <= 0 {
					length = 255
				}
				return fmt.Sprintf("VARCHAR(%d)", length)
			},
			Extraction: "getString",
		},
		"Long": {
			JavaType:   "Long",
			Column:     fixed("BIGINT"),
			Extraction: "getLong",
		},
		"Integer": {
			JavaType:   "Integer",
			Column:     fixed("INT"),
			Extraction: "getInt",
		},
		"Boolean": {
			JavaType:   "Boolean",
			Column:     fixed("TINYINT(1)"),
			NotNull:    true,
			Default:    "0",
			Extraction: "getBoolean",
		},
		"BigDecimal": {
			JavaType:   "BigDecimal",
			Import:     "import java.math.BigDecimal;",
			Column:     fixed("DECIMAL(19,6)"),
			Extraction: "getBigDecimal",
		},
		"UUID": {
			JavaType:   "UUID",
			Import:     "import java.util.UUID;",
			Column:     fixed("VARCHAR(36)"),
			Extraction: "getObject",
		},
		"LocalDate": {
			JavaType:   "LocalDate",
			Import:     "import java.time.LocalDate;",
			Column:     fixed("DATE"),
			Extraction: "getObject",
		},
		"LocalDateTime": {
			JavaType:   "LocalDateTime",
			Import:     "import java.time.LocalDateTime;",
			Column:     fixed("DATETIME"),
			Extraction: "getObject",
		},
	}}
}

// Lookup returns the mapping for a type tag.
func (r *Registry) Lookup(tag string) (Mapping, bool) {
	m, ok := r.entries[tag]
	return m, ok
}

// Tags returns the registered type tags, sorted.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.entries))
	for tag := range r.entries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Imports collects the import statements needed by the given type tags,
// deduplicated and sorted. Unknown tags are ignored; validation has
// already rejected them.
func (r *Registry) Imports(tags []string) []string {
	seen := make(map[string]bool)
	var imports []string
	for _, tag := range tags {
		m, ok := r.entries[tag]
		if !ok || m.Import == "" || seen[m.Import] {
			continue
		}
		seen[m.Import] = true
		imports = append(imports, m.Import)
	}
	sort.Strings(imports)
	return imports
}
