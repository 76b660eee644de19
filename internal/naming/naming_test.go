package naming

import (
	"testing"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"Product", "product"},
		{"fooBar", "foo_bar"},
		{"FooBar", "foo_bar"},
		{"FooBARBaz", "foo_bar_baz"},
		{"OrderItem", "order_item"},
		{"address2Line", "address2_line"},
		{"APIKey", "api_key"},
		{"already_snake", "already_snake"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToSnakeCase(tt.input); got != tt.want {
				t.Errorf("ToSnakeCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToUpperSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Product", "PRODUCT"},
		{"OrderItem", "ORDER_ITEM"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ToUpperSnakeCase(tt.input); got != tt.want {
			t.Errorf("ToUpperSnakeCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"Product", "product"},
		{"OrderItem", "orderItem"},
		{"already", "already"},
		{"X", "x"},
	}

	for _, tt := range tests {
		if got := ToCamelCase(tt.input); got != tt.want {
			t.Errorf("ToCamelCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// ToCamelCase only changes the first character; Capitalize restores the
// first character's case for any PascalCase identifier.
func TestCamelCapitalizeRoundTrip(t *testing.T) {
	inputs := []string{"Product", "OrderItem", "Widget2Go", "A"}
	for _, s := range inputs {
		camel := ToCamelCase(s)
		if camel[1:] != s[1:] {
			t.Errorf("ToCamelCase(%q) changed more than the first character: %q", s, camel)
		}
		if got := Capitalize(camel); got != s {
			t.Errorf("Capitalize(ToCamelCase(%q)) = %q, want %q", s, got, s)
		}
	}
}

func TestAccessorNames(t *testing.T) {
	if got := GetterName("inStock", "Boolean"); got != "isInStock" {
		t.Errorf("GetterName boolean = %q, want isInStock", got)
	}
	if got := GetterName("name", "String"); got != "getName" {
		t.Errorf("GetterName string = %q, want getName", got)
	}
	if got := SetterName("name"); got != "setName" {
		t.Errorf("SetterName = %q, want setName", got)
	}
}
