package verify

import "testing"

func TestNormalizeCollapsesCaseAndWhitespace(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"OLD  TOM", "old tom"},
		{"old tom", "old tom"},
		{"  Old\tTom  ", "old tom"},
		{"OLD\n\nTOM", "old tom"},
		{"", ""},
		{"   ", ""},
		{"45% Alc./Vol.", "45% alc./vol."},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"OLD  TOM", "  mixed \t Case\n", "already normal", ""}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestStripPunctuation(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"45% alc./vol.", "45 alcvol"},
		{"45%", "45"},
		{"no-punctuation here!", "nopunctuation here"},
		{"...", ""},
		{"plain words", "plain words"},
	}
	for _, c := range cases {
		if got := StripPunctuation(c.in); got != c.want {
			t.Fatalf("StripPunctuation(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
