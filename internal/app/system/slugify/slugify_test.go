package slugify

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Luxury Villas", "luxury-villas"},
		{"Beachfront", "beachfront"},
		{"  Phuket  Residences  ", "phuket-residences"},
		{"Novaa's Top 10 Picks!", "novaa-s-top-10-picks"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Make(tt.in); got != tt.want {
			t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"luxury-villas", "beachfront", "top-10"}
	for _, s := range valid {
		if !IsValid(s) {
			t.Errorf("IsValid(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "Luxury Villas", "UPPER", "double--hyphen", "-lead", "trail-"}
	for _, s := range invalid {
		if IsValid(s) {
			t.Errorf("IsValid(%q) = true, want false", s)
		}
	}
}
