package engine

import "testing"

func TestVNI_ToneKeys(t *testing.T) {
	tests := []struct {
		name, input, expected string
	}{
		{"sac", "a1", "á"},
		{"huyen", "a2", "à"},
		{"hoi", "a3", "ả"},
		{"nga", "a4", "ã"},
		{"nang", "a5", "ạ"},
		{"double tap cancels", "a11", "a1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedString(t, VNI, tt.input)
			if got != tt.expected {
				t.Errorf("feed(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestVNI_DigitModifiers(t *testing.T) {
	tests := []struct {
		name, input, expected string
	}{
		{"a6 -> â", "a6", "â"},
		{"a8 -> ă", "a8", "ă"},
		{"e6 -> ê", "e6", "ê"},
		{"o6 -> ô", "o6", "ô"},
		{"o7 -> ơ", "o7", "ơ"},
		{"u7 -> ư", "u7", "ư"},
		{"d9 -> đ", "d9", "đ"},
		{"modifier then tone", "a81", "ắ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedString(t, VNI, tt.input)
			if got != tt.expected {
				t.Errorf("feed(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestVNI_NoModifierBubbling(t *testing.T) {
	// "n6" has no vowel for the digit to modify, so it renders with no
	// vowel at all and the validation phase falls back to raw bytes.
	got := feedString(t, VNI, "n6")
	if got != "n6" {
		t.Errorf("feed(%q) = %q, want %q", "n6", got, "n6")
	}
}

func TestVNI_TripleCollapse(t *testing.T) {
	got := feedString(t, VNI, "ddd")
	if got != "d" {
		t.Errorf("feed(%q) = %q, want %q", "ddd", got, "d")
	}
}
