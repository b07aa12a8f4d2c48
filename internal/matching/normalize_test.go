package matching

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Trims and lowers", "  Flour ", "flour"},
		{"ies to y", "Candies", "candy"},
		{"oes to o", "Tomatoes", "tomato"},
		{"oes to o potatoes", "potatoes", "potato"},
		{"ses drops two", "classes", "classe"},
		{"es after consonant", "Boxes", "box"},
		{"es after consonant dishes", "dishes", "dish"},
		{"plain s", "eggs", "egg"},
		{"ss preserved", "swiss", "swiss"},
		{"single char left alone", "s", "s"},
		{"oes wins over es", "toes", "to"},
		{"es after vowel falls through to s rule", "blues", "blue"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{"Tomatoes", "candies", "Boxes", "classes", "eggs", "Milk", "swiss", ""}
	for _, in := range inputs {
		once := NormalizeName(in)
		twice := NormalizeName(once)
		if once != twice {
			t.Errorf("NormalizeName not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeNamePluralMatching(t *testing.T) {
	pairs := [][2]string{
		{"Tomatoes", "tomato"},
		{"Boxes", "box"},
		{"Candies", "candy"},
		{"Eggs", "egg"},
	}
	for _, p := range pairs {
		if NormalizeName(p[0]) != NormalizeName(p[1]) {
			t.Errorf("NormalizeName(%q) != NormalizeName(%q): %q vs %q",
				p[0], p[1], NormalizeName(p[0]), NormalizeName(p[1]))
		}
	}
}

func TestSearchKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Crème Brûlée", "creme brulee"},
		{"Sarmale  ", "sarmale"},
		{"Mămăligă", "mamaliga"},
		{"PLAIN", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SearchKey(tt.input); got != tt.expected {
				t.Errorf("SearchKey(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
