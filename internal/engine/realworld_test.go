package engine

import "testing"

// Tests for real-world Vietnamese typing scenarios exercising tone
// placement, multi-vowel clusters, and bubbling together.

func TestRealWorld_TonePosition(t *testing.T) {
	tests := []struct{ name, input, expected string }{
		{"chaof -> chào", "chaof", "chào"},
		{"xoas -> xoá", "xoas", "xoá"},
		{"nghiax -> nghĩa", "nghiax", "nghĩa"},
		{"thoar -> thoả", "thoar", "thoả"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedString(t, Telex, tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRealWorld_DoubleVowelWithSuffix(t *testing.T) {
	tests := []struct{ name, input, expected string }{
		{"tooi -> tôi", "tooi", "tôi"},
		{"muwa -> mưa", "muwa", "mưa"},
		{"bowi -> bơi", "bowi", "bơi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedString(t, Telex, tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRealWorld_CompleteWords(t *testing.T) {
	tests := []struct{ name, input, expected string }{
		{"vieejt -> việt", "vieejt", "việt"},
		{"tieesng -> tiếng", "tieesng", "tiếng"},
		{"cacs -> các", "cacs", "các"},
		{"banj -> bạn", "banj", "bạn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedString(t, Telex, tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRealWorld_ToneAfterCoda(t *testing.T) {
	// Telex lets the tone key land after a trailing consonant ("coda").
	tests := []struct{ name, input, expected string }{
		{"banj -> bạn (tone after n)", "banj", "bạn"},
		{"cacs -> các (tone after c)", "cacs", "các"},
		{"mats -> mát (tone after t)", "mats", "mát"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedString(t, Telex, tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
