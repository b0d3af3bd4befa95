package theme

import "testing"

func TestGlyph(t *testing.T) {
	cases := []struct {
		icon string
		want string
	}{
		{"database", "◆"},
		{" Database ", "◆"},
		{"folder-open", "▸"},
		{"unknown-icon", defaultGlyph},
		{"", defaultGlyph},
	}
	for _, tc := range cases {
		if got := Glyph(tc.icon); got != tc.want {
			t.Fatalf("Glyph(%q) = %q, want %q", tc.icon, got, tc.want)
		}
	}
}

func TestDefaultStylesPopulated(t *testing.T) {
	s := Default()
	if s.Chip == nil || s.ActiveChip == nil || s.Confirm == nil || s.SelectedItem == nil {
		t.Fatal("expected chip, confirm and selection styles")
	}
}
