package lookup

import "testing"

func TestInferDiscFormat(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Example Movie (Blu-ray + Digital) (2018)", "Blu-ray"},
		{"Example Movie (4K Ultra HD + Blu-ray)", "4K"},
		{"Example Movie (DVD)", "DVD"},
		{"Example Movie (Digital Copy)", "Digital"},
		{"Example Movie (Collector's Edition)", ""},
		{"Blu-ray Story", ""},
		{"Example Movie", ""},
	}
	for _, tc := range cases {
		if got := inferDiscFormat(tc.title); got != tc.want {
			t.Errorf("inferDiscFormat(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestInferDiscFormatPrecedence(t *testing.T) {
	// Combo packs resolve to the richest format regardless of token order.
	if got := inferDiscFormat("Example (Blu-ray + 4K + Digital)"); got != "4K" {
		t.Fatalf("got %q, want 4K", got)
	}
}

func TestInferAudioFormat(t *testing.T) {
	cases := []struct {
		title    string
		category string
		want     string
	}{
		{"Abbey Road (Vinyl)", "", "Vinyl"},
		{"Abbey Road", "Music > CDs", "CD"},
		{"Greatest Hits LP", "", "Vinyl"},
		{"Help!", "Music", ""},
		{"Mixtape", "Cassette Tapes", "Cassette"},
	}
	for _, tc := range cases {
		if got := inferAudioFormat(tc.title, tc.category); got != tc.want {
			t.Errorf("inferAudioFormat(%q, %q) = %q, want %q", tc.title, tc.category, got, tc.want)
		}
	}
}

func TestInferBookFormat(t *testing.T) {
	cases := []struct {
		physical string
		want     string
	}{
		{"paperback", "Paperback"},
		{"Mass Market Paperback", "Paperback"},
		{"hardcover", "Hardcover"},
		{"Audio CD", "Audiobook"},
		{"Spiral-bound", "Spiral-bound"},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := inferBookFormat(tc.physical); got != tc.want {
			t.Errorf("inferBookFormat(%q) = %q, want %q", tc.physical, got, tc.want)
		}
	}
}

func TestInferGamePlatform(t *testing.T) {
	cases := []struct {
		title    string
		category string
		want     string
	}{
		{"Example Quest - PlayStation 5", "", "PlayStation 5"},
		{"Example Quest (PS4)", "", "PlayStation 4"},
		{"Example Quest", "Video Games > Xbox Series X", "Xbox Series X"},
		{"Example Quest for Nintendo Switch", "", "Nintendo Switch"},
		{"Example Quest", "PC Games", "PC"},
		{"Example Quest", "Video Games", ""},
	}
	for _, tc := range cases {
		if got := inferGamePlatform(tc.title, tc.category); got != tc.want {
			t.Errorf("inferGamePlatform(%q, %q) = %q, want %q", tc.title, tc.category, got, tc.want)
		}
	}
}

func TestGameFormat(t *testing.T) {
	cases := map[string]string{
		"Nintendo Switch": "Cartridge",
		"PC":              "Digital",
		"PlayStation 5":   "Disc",
		"":                "",
	}
	for platform, want := range cases {
		if got := gameFormat(platform); got != want {
			t.Errorf("gameFormat(%q) = %q, want %q", platform, got, want)
		}
	}
}
