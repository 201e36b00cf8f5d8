package overlay

import "testing"

func TestNumberFormats(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"viewers", thousands(4203), "4,203"},
		{"small", thousands(9), "9"},
		{"earnings", money("€", 35.12), "€35.12"},
		{"goal", wholeMoney("€", 200), "€200"},
		{"percent", percentLabel(17.5), "18%"},
		{"percent full", percentLabel(100), "100%"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestPlatformStyle(t *testing.T) {
	if c := platformColor("Twitch"); c != platformColors["twitch"] {
		t.Errorf("platform lookup is case sensitive: %v", c)
	}
	if c := platformColor("myspace"); c != colorGray {
		t.Errorf("unknown platform color = %v, want gray", c)
	}
	if g := platformGlyph("kick"); g != "K" {
		t.Errorf("platformGlyph(kick) = %q", g)
	}
	if g := platformGlyph(""); g != "?" {
		t.Errorf("platformGlyph(\"\") = %q", g)
	}
}

func TestLoadFonts(t *testing.T) {
	fonts, err := LoadFonts()
	if err != nil {
		t.Fatal(err)
	}
	face := fonts.Bold(18)
	long := "Cereal_Killer_With_A_Very_Long_Handle"
	short := truncate(long, face, 80)
	if short == long || short == "" {
		t.Errorf("truncate did not shorten: %q", short)
	}
	if got := truncate("ok", face, 80); got != "ok" {
		t.Errorf("truncate changed a short string: %q", got)
	}
}
