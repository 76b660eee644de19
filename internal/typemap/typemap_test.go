package typemap

import (
	"reflect"
	"testing"
)

func TestLookup(t *testing.T) {
	reg := Default()

	tests := []struct {
		tag        string
		javaType   string
		extraction string
	}{
		{"String", "String", "getString"},
		{"Long", "Long", "getLong"},
		{"Integer", "Integer", "getInt"},
		{"Boolean", "Boolean", "getBoolean"},
		{"BigDecimal", "BigDecimal", "getBigDecimal"},
		{"UUID", "UUID", "getObject"},
		{"LocalDate", "LocalDate", "getObject"},
		{"LocalDateTime", "LocalDateTime", "getObject"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			m, ok := reg.Lookup(tt.tag)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.tag)
			}
			if m.JavaType != tt.javaType {
				t.Errorf("JavaType = %q, want %q", m.JavaType, tt.javaType)
			}
			if m.Extraction != tt.extraction {
				t.Errorf("Extraction = %q, want %q", m.Extraction, tt.extraction)
			}
		})
	}

	if _, ok := reg.Lookup("Timestamp"); ok {
		t.Error("Lookup(Timestamp) found, want closed table miss")
	}
}

func TestColumnTypes(t *testing.T) {
	reg := Default()

	tests := []struct {
		tag    string
		length int
		want   string
	}{
		{"String", 0, "VARCHAR(255)"},
		{"String", 100, "VARCHAR(100)"},
		{"BigDecimal", 0, "DECIMAL(19,6)"},
		{"Long", 0, "BIGINT"},
		{"Integer", 0, "INT"},
		{"Boolean", 0, "TINYINT(1)"},
		{"LocalDate", 0, "DATE"},
		{"LocalDateTime", 0, "DATETIME"},
		{"UUID", 0, "VARCHAR(36)"},
	}

	for _, tt := range tests {
		m, _ := reg.Lookup(tt.tag)
		if got := m.Column(tt.length); got != tt.want {
			t.Errorf("%s.Column(%d) = %q, want %q", tt.tag, tt.length, got, tt.want)
		}
	}
}

func TestBooleanColumnConstraints(t *testing.T) {
	reg := Default()
	m, _ := reg.Lookup("Boolean")
	if !m.NotNull {
		t.Error("Boolean.NotNull = false, want true")
	}
	if m.Default != "0" {
		t.Errorf("Boolean.Default = %q, want %q", m.Default, "0")
	}
}

func TestImports(t *testing.T) {
	reg := Default()

	got := reg.Imports([]string{"BigDecimal", "String", "LocalDate", "BigDecimal", "Long"})
	want := []string{
		"import java.math.BigDecimal;",
		"import java.time.LocalDate;",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Imports = %v, want %v", got, want)
	}

	// Adding a field whose type is already imported must not change the block.
	again := reg.Imports([]string{"BigDecimal", "String", "LocalDate", "BigDecimal", "Long", "BigDecimal"})
	if !reflect.DeepEqual(again, want) {
		t.Errorf("Imports with duplicate type = %v, want %v", again, want)
	}
}

func TestTagsSorted(t *testing.T) {
	tags := Default().Tags()
	if len(tags) != 8 {
		t.Fatalf("len(Tags) = %d, want 8", len(tags))
	}
	for i := 1; i < len(tags); i++ {
		if tags[i-1] >= tags[i] {
			t.Errorf("Tags not sorted: %v", tags)
		}
	}
}
