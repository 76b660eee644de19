package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/example/crudforge/internal/spec"
	"github.com/example/crudforge/internal/typemap"
)

func boolPtr(b bool) *bool { return &b }

func TestStatementsEntityTable(t *testing.T) {
	e := spec.Entity{
		Name: "ProductItem",
		ID:   spec.ID{Name: "id", Type: "Long", Generated: true},
		Fields: []spec.Field{
			{Name: "displayName", Type: "String", Length: 120},
			{Name: "quantity", Type: "Integer"},
			{Name: "active", Type: "Boolean"},
			{Name: "unitPrice", Type: "BigDecimal"},
		},
	}

	stmts, err := Statements(e, typemap.Default(), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}

	want := "CREATE TABLE product_item (\n" +
		"    id BIGINT NOT NULL,\n" +
		"    display_name VARCHAR(120),\n" +
		"    quantity INT,\n" +
		"    active TINYINT(1) NOT NULL DEFAULT 0,\n" +
		"    unit_price DECIMAL(19,6),\n" +
		"    PRIMARY KEY (id)\n" +
		");"
	if stmts[0] != want {
		t.Errorf("entity table DDL:\n%s\nwant:\n%s", stmts[0], want)
	}
}

func TestStatementsTableOverride(t *testing.T) {
	e := spec.Entity{Name: "Product", ID: spec.ID{Name: "id", Type: "Long"}}
	stmts, err := Statements(e, typemap.Default(), "m_product")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stmts[0], "CREATE TABLE m_product (") {
		t.Errorf("override ignored: %s", stmts[0])
	}
}

func TestStatementsRelationshipColumns(t *testing.T) {
	e := spec.Entity{
		Name:   "Product",
		ID:     spec.ID{Name: "id", Type: "Long"},
		Fields: []spec.Field{{Name: "name", Type: "String"}},
		Relationships: []spec.Relationship{
			{Kind: spec.OneToOne, Name: "detail", Target: "Detail", JoinColumn: "detail_id"},
			{Kind: spec.OneToOne, Name: "mainSupplier", Target: "Supplier", Optional: boolPtr(false)},
			{Kind: spec.OneToOne, Name: "shadow", Target: "Shadow", MappedBy: "product"},
			{Kind: spec.OneToMany, Name: "orders", Target: "Order", MappedBy: "product"},
			{Kind: spec.ManyToMany, Name: "tags", Target: "Tag", JoinTable: &spec.JoinTable{
				Name: "product_tag", JoinColumn: "product_id", InverseJoinColumn: "tag_id",
			}},
			{Kind: spec.ManyToMany, Name: "bundles", Target: "Bundle", MappedBy: "products"},
			{Kind: spec.OneToOne, Name: "incomplete"},
		},
	}

	stmts, err := Statements(e, typemap.Default(), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want entity table + join table", len(stmts))
	}

	entity := stmts[0]
	if !strings.Contains(entity, "    detail_id BIGINT,\n") {
		t.Errorf("explicit join column missing:\n%s", entity)
	}
	if !strings.Contains(entity, "    main_supplier_id BIGINT NOT NULL,\n") {
		t.Errorf("derived required join column missing:\n%s", entity)
	}
	for _, absent := range []string{"shadow", "orders", "tag", "bundle", "incomplete"} {
		if strings.Contains(entity, absent) {
			t.Errorf("entity table should not mention %q:\n%s", absent, entity)
		}
	}

	wantJoin := "CREATE TABLE product_tag (\n" +
		"    product_id BIGINT NOT NULL,\n" +
		"    tag_id BIGINT NOT NULL,\n" +
		"    PRIMARY KEY (product_id, tag_id)\n" +
		");"
	if stmts[1] != wantJoin {
		t.Errorf("join table DDL:\n%s\nwant:\n%s", stmts[1], wantJoin)
	}
}

func TestStatementsUnknownType(t *testing.T) {
	e := spec.Entity{
		Name:   "Product",
		ID:     spec.ID{Name: "id", Type: "Long"},
		Fields: []spec.Field{{Name: "blob", Type: "ByteArray"}},
	}
	_, err := Statements(e, typemap.Default(), "")
	var ute *spec.UnsupportedTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
	if ute.Field != "blob" || ute.Type != "ByteArray" {
		t.Errorf("got %+v", ute)
	}
}

func TestCheckAcceptsGeneratedDDL(t *testing.T) {
	e := spec.Entity{
		Name: "Product",
		ID:   spec.ID{Name: "id", Type: "Long"},
		Fields: []spec.Field{
			{Name: "name", Type: "String", Length: 80},
			{Name: "active", Type: "Boolean"},
			{Name: "createdAt", Type: "LocalDateTime"},
		},
		Relationships: []spec.Relationship{
			{Kind: spec.ManyToMany, Name: "tags", Target: "Tag", JoinTable: &spec.JoinTable{
				Name: "product_tag", JoinColumn: "product_id", InverseJoinColumn: "tag_id",
			}},
		},
	}
	stmts, err := Statements(e, typemap.Default(), "")
	if err != nil {
		t.Fatal(err)
	}
	if err := Check(stmts); err != nil {
		t.Fatalf("generated DDL rejected: %v", err)
	}
}

func TestCheckRejectsBrokenDDL(t *testing.T) {
	if err := Check([]string{"CREATE TABLE ("}); err == nil {
		t.Error("expected error for broken DDL")
	}
}
