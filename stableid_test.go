package idcompressor

import "testing"

func TestStableIdZeroValue(t *testing.T) {
	var id StableId
	if id != Nil {
		t.Errorf("zero value should equal Nil")
	}
	if !id.IsNil() {
		t.Errorf("zero value IsNil() should be true")
	}
}

func TestVersion(t *testing.T) {
	id := MustParseStableId("00000000-0000-4000-8000-000000000000")
	if got := id.Version(); got != 4 {
		t.Errorf("Version() = %d, want 4", got)
	}
}

func TestVariant(t *testing.T) {
	tests := []struct {
		name    string
		byte8   byte
		variant int
	}{
		{"RFC9562 lower", 0x80, 0b10},
		{"RFC9562 upper", 0xbf, 0b10},
		{"NCS", 0x00, 0b00},
		{"Microsoft", 0xc0, 0b11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id StableId
			id[8] = tt.byte8
			if got := id.Variant(); got != tt.variant {
				t.Errorf("variant byte %#x: got %d, want %d", tt.byte8, got, tt.variant)
			}
		})
	}
}

func TestStableIdString(t *testing.T) {
	id := MustParseStableId("6ba7b810-9dad-41d1-80b4-00c04fd430c8")
	want := "6ba7b810-9dad-41d1-80b4-00c04fd430c8"
	if got := id.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBytes(t *testing.T) {
	id := MustParseStableId("6ba7b810-9dad-41d1-80b4-00c04fd430c8")
	b := id.Bytes()
	if len(b) != 16 {
		t.Fatalf("Bytes() length = %d, want 16", len(b))
	}
	b[0] = 0xff
	if id[0] == 0xff {
		t.Errorf("Bytes() should return a copy, not a reference")
	}
}

func TestIsNil(t *testing.T) {
	if !Nil.IsNil() {
		t.Errorf("Nil.IsNil() should be true")
	}
	id := MustParseStableId("6ba7b810-9dad-41d1-80b4-00c04fd430c8")
	if id.IsNil() {
		t.Errorf("non-nil StableId.IsNil() should be false")
	}
}

func TestCompare(t *testing.T) {
	a := MustParseStableId("00000000-0000-4000-8000-000000000001")
	b := MustParseStableId("00000000-0000-4000-8000-000000000002")

	if Compare(a, b) != -1 {
		t.Errorf("Compare(a, b) should be -1")
	}
	if Compare(b, a) != 1 {
		t.Errorf("Compare(b, a) should be 1")
	}
	if Compare(a, a) != 0 {
		t.Errorf("Compare(a, a) should be 0")
	}
}

func TestStableIdComparable(t *testing.T) {
	a := MustParseStableId("6ba7b810-9dad-41d1-80b4-00c04fd430c8")
	b := MustParseStableId("6ba7b810-9dad-41d1-80b4-00c04fd430c8")
	m := map[StableId]bool{a: true}
	if !m[b] {
		t.Errorf("StableId should be usable as a map key")
	}
}
