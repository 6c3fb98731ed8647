package characters

import "testing"

func TestCatalog(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(all))
	}
	if all[0].ID != DefaultID {
		t.Errorf("first frame = %s, want %s", all[0].ID, DefaultID)
	}

	seen := make(map[string]bool)
	for _, c := range all {
		if seen[c.ID] {
			t.Errorf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestByID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"frame_proto", "SOLARIS PRIME"},
		{"frame_stealth", "VOID WALKER"},
		{"frame_missing", "VANGUARD"},
		{"", "VANGUARD"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := ByID(tt.id).Name; got != tt.want {
				t.Errorf("ByID(%q).Name = %q, want %q", tt.id, got, tt.want)
			}
		})
	}

	if _, ok := Lookup("frame_missing"); ok {
		t.Error("Lookup should report unknown ids")
	}
}

func TestAppearance(t *testing.T) {
	proto := ByID("frame_proto")
	if proto.Rarity != Legendary || proto.Glyph() != '★' {
		t.Errorf("proto = %+v glyph %q", proto, proto.Glyph())
	}
	if proto.Color() != "#fbbf24" {
		t.Errorf("proto colour = %q", proto.Color())
	}
	if ByID(DefaultID).Glyph() != '●' {
		t.Error("standard frame glyph")
	}
	if RarityColor(Common) == RarityColor(Legendary) {
		t.Error("rarities should be distinguishable")
	}
}
