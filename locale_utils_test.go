package numstring

import "testing"

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "en", want: "en"},
		{in: "EN", want: "en"},
		{in: "en_us", want: "en-US"},
		{in: " fr-CA ", want: "fr-CA"},
		{in: "", want: ""},
		{in: "not a tag", want: "not a tag"},
	}

	for _, tc := range tests {
		if got := normalizeTag(tc.in); got != tc.want {
			t.Fatalf("normalizeTag(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestTagParentChain(t *testing.T) {
	chain := tagParentChain("de-CH")
	if len(chain) == 0 || chain[0] != "de" {
		t.Fatalf("tagParentChain(de-CH) = %v", chain)
	}

	if chain := tagParentChain(""); chain != nil {
		t.Fatalf("tagParentChain(\"\") = %v", chain)
	}

	if chain := tagParentChain("en"); len(chain) != 0 {
		t.Fatalf("tagParentChain(en) = %v", chain)
	}
}
