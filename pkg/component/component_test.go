package component

import "testing"

func TestTypeStringRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		name := typ.String()
		got, err := ParseType(name)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", name, err)
		}
		if got != typ {
			t.Errorf("ParseType(%q) = %v, want %v", name, got, typ)
		}
	}
}

func TestTypesCoversEnumeration(t *testing.T) {
	if got := len(Types()); got != 12 {
		t.Fatalf("len(Types()) = %d, want 12", got)
	}
}

func TestTypeOutOfRange(t *testing.T) {
	for _, typ := range []Type{-1, TypeCount, 42} {
		if typ.Valid() {
			t.Errorf("%d should not be valid", int(typ))
		}
	}
	if got := Type(42).String(); got != "Type(42)" {
		t.Errorf("String() = %q, want Type(42)", got)
	}
	if _, err := ParseType("Carousel"); err == nil {
		t.Error("expected error for unknown type name")
	}
}

func TestIsTextOnlyForText(t *testing.T) {
	for _, typ := range Types() {
		if got, want := typ.IsText(), typ == TypeText; got != want {
			t.Errorf("%v.IsText() = %v, want %v", typ, got, want)
		}
	}
}

func TestPropertyAccessors(t *testing.T) {
	h := &Static{ID: "c1", Kind: TypeText, Props: map[string]any{
		"text":     "hello",
		"fontSize": 20,
		"width":    float32(12.5),
		"wrap":     true,
	}}

	if got := String(h, "text", ""); got != "hello" {
		t.Errorf("String(text) = %q", got)
	}
	if got := String(h, "fontSize", "x"); got != "x" {
		t.Errorf("String on int property should return default, got %q", got)
	}
	if got := Float(h, "fontSize", 0); got != 20 {
		t.Errorf("Float(fontSize) = %v", got)
	}
	if got := Float(h, "width", 0); got != 12.5 {
		t.Errorf("Float(width) = %v", got)
	}
	if got := Float(h, "missing", 7); got != 7 {
		t.Errorf("Float(missing) = %v", got)
	}
	if !Bool(h, "wrap", false) {
		t.Error("Bool(wrap) = false")
	}
}

func TestStaticEnsureLayout(t *testing.T) {
	called := 0
	h := &Static{ID: "c1", OnLayout: func() { called++ }}
	h.EnsureLayout()
	h.EnsureLayout()
	if h.LayoutCount() != 2 || called != 2 {
		t.Errorf("LayoutCount = %d, callback = %d, want 2 and 2", h.LayoutCount(), called)
	}
}
