// Package derive computes the placeholder map consumed by template
// rendering. It is a pure function of a validated entity spec: every
// invalid state was rejected by spec validation or relationship
// resolution before this package runs.
package derive

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/crudforge/internal/naming"
	"github.com/example/crudforge/internal/relation"
	"github.com/example/crudforge/internal/spec"
	"github.com/example/crudforge/internal/typemap"
)

// Options holds the generation switches that affect derived fragments.
type Options struct {
	BasePackage string
	// Lombok delegates accessor and constructor generation to Lombok
	// annotations instead of emitting them by hand.
	Lombok bool
}

// Placeholders maps placeholder keys to rendered code fragments. The key
// set is stable for every entity: absent optional sections render to the
// empty string, never to a missing key.
type Placeholders map[string]string

// field is the uniform view of the id and declared fields.
type field struct {
	name     string
	tag      string
	javaType string
}

// Build derives the complete placeholder map for one entity. Argument
// ordering in every forwarding expression is id first, then declared
// fields in spec order; relationship fields come last wherever field
// lists are emitted.
func Build(e *spec.Entity, reg *typemap.Registry, rels []relation.Resolved, opts Options) Placeholders {
	all := make([]field, 0, len(e.Fields)+1)
	tags := make([]string, 0, len(e.Fields)+1)
	addField := func(name, tag string) {
		m, _ := reg.Lookup(tag)
		all = append(all, field{name: name, tag: tag, javaType: m.JavaType})
		tags = append(tags, tag)
	}
	addField(e.ID.Name, e.ID.Type)
	for _, f := range e.Fields {
		addField(f.Name, f.Type)
	}
	id := all[0]
	rest := all[1:]

	entity := e.Name
	tableName := naming.ToSnakeCase(entity)
	basePath := "/api/" + tableName + "s" // naive pluralization, kept deliberately

	getter := func(f field) string { return naming.GetterName(f.name, f.tag) }

	finalKw := "final "
	if opts.Lombok {
		finalKw = ""
	}

	// Domain model fragments.
	var declLines, assignLines, getterLines []string
	var ctorParams, names []string
	for _, f := range all {
		declLines = append(declLines, fmt.Sprintf("    private %s%s %s;", finalKw, f.javaType, f.name))
		assignLines = append(assignLines, fmt.Sprintf("        this.%s = %s;", f.name, f.name))
		getterLines = append(getterLines, fmt.Sprintf("    public %s %s() { return %s; }", f.javaType, getter(f), f.name))
		ctorParams = append(ctorParams, f.javaType+" "+f.name)
		names = append(names, f.name)
	}
	domainCtorParams := strings.Join(ctorParams, ", ")
	domainAssigns := strings.Join(assignLines, "\n")

	domainGetters := strings.Join(getterLines, "\n")
	// The constructor stays under Lombok: the switch delegates accessor
	// generation only, and the create factory still needs it.
	modelConstructor := fmt.Sprintf("    private %s(%s) {\n%s\n    }", entity, domainCtorParams, domainAssigns)
	if opts.Lombok {
		domainGetters = ""
	}

	// Persistence entity fragments.
	var jpaDecls, jpaAccessors []string
	for i, f := range all {
		if i == 0 {
			lines := []string{"    @Id"}
			if e.ID.Generated && (f.tag == "Long" || f.tag == "Integer") {
				lines = append(lines, "    @GeneratedValue(strategy = GenerationType.IDENTITY)")
			}
			lines = append(lines, fmt.Sprintf("    private %s %s;", f.javaType, f.name))
			jpaDecls = append(jpaDecls, strings.Join(lines, "\n"))
		} else {
			jpaDecls = append(jpaDecls, fmt.Sprintf("    @Column(nullable = false)\n    private %s %s;", f.javaType, f.name))
		}
		jpaAccessors = append(jpaAccessors, fmt.Sprintf(
			"    public %s %s() { return %s; }\n    public void %s(%s %s) { this.%s = %s; }",
			f.javaType, getter(f), f.name, naming.SetterName(f.name), f.javaType, f.name, f.name, f.name))
	}
	jpaGettersSetters := strings.Join(jpaAccessors, "\n")
	if opts.Lombok {
		jpaGettersSetters = ""
	}

	// Relationship fragments, in declaration order after the scalars.
	var relDecls, relAccessors []string
	relImports := make(map[string]bool)
	for _, r := range rels {
		var lines []string
		for _, ann := range r.Annotations {
			lines = append(lines, "    "+ann)
		}
		lines = append(lines, fmt.Sprintf("    private %s %s%s;", r.FieldType, r.Name, r.Init))
		relDecls = append(relDecls, strings.Join(lines, "\n"))
		relAccessors = append(relAccessors, fmt.Sprintf(
			"    public %s get%s() { return %s; }\n    public void set%s(%s %s) { this.%s = %s; }",
			r.FieldType, naming.Capitalize(r.Name), r.Name,
			naming.Capitalize(r.Name), r.FieldType, r.Name, r.Name, r.Name))
		for _, imp := range r.Imports {
			relImports[imp] = true
		}
	}
	relImportList := make([]string, 0, len(relImports))
	for imp := range relImports {
		relImportList = append(relImportList, imp)
	}
	sort.Strings(relImportList)
	relAccessorsBlock := strings.Join(relAccessors, "\n")
	if opts.Lombok {
		relAccessorsBlock = ""
	}

	// DTO components: the request omits the id when it is generated.
	requestFields := all
	if e.ID.Generated {
		requestFields = rest
	}
	var requestComponents, responseComponents []string
	for _, f := range requestFields {
		requestComponents = append(requestComponents, f.javaType+" "+f.name)
	}
	for _, f := range all {
		responseComponents = append(responseComponents, f.javaType+" "+f.name)
	}

	// Layer-forwarding argument lists.
	var entityArgs, domainArgs, aggArgs []string
	for _, f := range all {
		entityArgs = append(entityArgs, "a."+getter(f)+"()")
		domainArgs = append(domainArgs, "e."+getter(f)+"()")
		aggArgs = append(aggArgs, "agg."+getter(f)+"()")
	}
	var requestFieldArgs []string
	for _, f := range rest {
		requestFieldArgs = append(requestFieldArgs, fmt.Sprintf("request.%s()", f.name))
	}
	createIDArg := fmt.Sprintf("request.%s()", id.name)
	if e.ID.Generated {
		createIDArg = "null"
	}
	requestAllArgs := strings.Join(append([]string{createIDArg}, requestFieldArgs...), ", ")
	updateCreateArgs := strings.Join(append([]string{id.name}, requestFieldArgs...), ", ")
	mapperCreateArgs := strings.Join(append([]string{"id"}, requestFieldArgs...), ", ")

	// JDBC row-mapper lines, available to template sets that read through
	// a RowMapper instead of JPA.
	var mapperLines []string
	for _, f := range all {
		m, _ := reg.Lookup(f.tag)
		col := naming.ToSnakeCase(f.name)
		if m.Extraction == "getObject" {
			mapperLines = append(mapperLines, fmt.Sprintf(
				"            data.%s(rs.getObject(%q, %s.class));", naming.SetterName(f.name), col, f.javaType))
		} else {
			mapperLines = append(mapperLines, fmt.Sprintf(
				"            data.%s(rs.%s(%q));", naming.SetterName(f.name), m.Extraction, col))
		}
	}

	ph := Placeholders{
		"entity":         entity,
		"Entity":         entity,
		"EntityRequest":  entity + "Request",
		"EntityResponse": entity + "Response",
		"entity_lower":   naming.ToCamelCase(entity),
		"package":        opts.BasePackage,
		"Package":        strings.ReplaceAll(opts.BasePackage, ".", "/"),
		"table_name":     tableName,
		"base_path":      basePath,
		"id_type":        id.javaType,
		"id_name":        id.name,
		"id_name_lower":  naming.ToCamelCase(id.name),
		"id_generated":   fmt.Sprintf("%t", e.ID.Generated),

		"extra_imports": strings.Join(reg.Imports(tags), "\n"),
		"final_kw":      finalKw,

		"domain_fields_decls":     strings.Join(declLines, "\n"),
		"domain_ctor_params":      domainCtorParams,
		"domain_assigns":          domainAssigns,
		"domain_getters":          domainGetters,
		"model_constructor_block": modelConstructor,
		"all_names_csv":           strings.Join(names, ", "),

		"jpa_fields_decls":           strings.Join(jpaDecls, "\n"),
		"jpa_ctor_params":            domainCtorParams,
		"jpa_assigns":                domainAssigns,
		"jpa_getters_setters":        jpaGettersSetters,
		"jpa_relationship_imports":   strings.Join(relImportList, "\n"),
		"jpa_relationship_decls":     strings.Join(relDecls, "\n"),
		"jpa_relationship_accessors": relAccessorsBlock,

		"dto_request_components":  strings.Join(requestComponents, ", "),
		"dto_response_components": strings.Join(responseComponents, ", "),

		"adapter_to_entity_args":  strings.Join(entityArgs, ", "),
		"adapter_to_domain_args":  strings.Join(domainArgs, ", "),
		"request_all_args":        requestAllArgs,
		"response_from_agg_args":  strings.Join(aggArgs, ", "),
		"list_map_response_args":  strings.Join(entityArgs, ", "),
		"update_create_args":      updateCreateArgs,
		"mapper_create_args":      mapperCreateArgs,
		"create_id_arg":           createIDArg,
		"row_mapper_lines":        strings.Join(mapperLines, "\n"),
	}

	addLombok(ph, opts.Lombok)
	addConstructorKeys(ph)
	return ph
}

// addLombok fills the annotation keys. When the switch is off every key
// still exists, holding the empty string.
func addLombok(ph Placeholders, lombok bool) {
	set := func(key, on string) {
		if lombok {
			ph[key] = on
		} else {
			ph[key] = ""
		}
	}
	// The domain aggregate only gets @Getter: immutability stays with the
	// hand-written factory.
	set("lombok_domain_imports", "import lombok.Getter;")
	set("lombok_model_imports", "import lombok.Getter;\nimport lombok.Setter;")
	set("lombok_common_imports", "import lombok.extern.slf4j.Slf4j;")
	set("model_annotations", "@Getter\n@Setter")
	set("service_annotations", "@Slf4j")
	set("controller_annotations", "@Slf4j")
	set("adapter_annotations", "@Slf4j")

	// Block variants carry a leading newline so templates avoid blank
	// lines when the section is absent.
	block := func(key, src string) {
		if ph[src] == "" {
			ph[key] = ""
		} else {
			ph[key] = "\n" + ph[src]
		}
	}
	set("lombok_domain_annotations", "@Getter")
	block("lombok_domain_annotations_block", "lombok_domain_annotations")
	block("model_annotations_block", "model_annotations")
	block("service_annotations_block", "service_annotations")
	block("controller_annotations_block", "controller_annotations")
	block("adapter_annotations_block", "adapter_annotations")
}

// addConstructorKeys registers the per-artifact constructor keys. The
// default template set carries explicit constructors in its bodies, so
// these render empty; custom template sets may target them instead.
func addConstructorKeys(ph Placeholders) {
	for _, key := range []string{
		"controller_constructor",
		"adapter_constructor",
		"create_constructor",
		"update_constructor",
		"get_constructor",
		"list_constructor",
		"delete_constructor",
		"domain_service_constructor",
	} {
		ph[key] = ""
	}
}

// Keys returns the stable placeholder key set, sorted. The set does not
// depend on which fields or relationships a spec declares.
func Keys() []string {
	sample := &spec.Entity{
		Name: "Sample",
		ID:   spec.ID{Name: "id", Type: "Long", Generated: true},
	}
	ph := Build(sample, typemap.Default(), nil, Options{BasePackage: "com.example"})
	keys := make([]string, 0, len(ph))
	for k := range ph {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
