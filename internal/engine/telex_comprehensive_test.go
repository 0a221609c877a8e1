package engine

import "testing"

// Exercises the full five-phase pipeline end to end: tone extraction,
// triple-collapse, free-style and w-style modifier bubbling, pair
// resolution with its special cases, the foreign-word validation
// fallback, and tone placement across open/closed vowel pairs.

func TestPipeline_ToneCancellation(t *testing.T) {
	tests := []struct{ name, input, expected string }{
		{"tone key then z removes it", "asz", "a"},
		{"same tone key twice cancels", "ass", "as"},
		{"typing continues after cancellation", "assa", "âsa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedString(t, Telex, tt.input)
			if got != tt.expected {
				t.Errorf("feed(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPipeline_TripleCollapse(t *testing.T) {
	tests := []struct{ name, input, expected string }{
		{"aaa collapses", "aaa", "a"},
		{"ddd collapses", "ddd", "d"},
		{"eee collapses", "eee", "e"},
		{"ooo collapses", "ooo", "o"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedString(t, Telex, tt.input)
			if got != tt.expected {
				t.Errorf("feed(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPipeline_FreeStyleBubbling(t *testing.T) {
	tests := []struct{ name, input, expected string }{
		{"out-of-order repeat bubbles", "hana", "hâna"},
		{"adjacent repeat stays a plain digraph", "nghees", "nghế"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedString(t, Telex, tt.input)
			if got != tt.expected {
				t.Errorf("feed(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPipeline_PairResolutionSpecialCases(t *testing.T) {
	tests := []struct{ name, input, expected string }{
		{"uow -> ươ", "huows", "hướ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedString(t, Telex, tt.input)
			if got != tt.expected {
				t.Errorf("feed(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPipeline_ForeignWordFallback(t *testing.T) {
	tests := []struct{ name, input, expected string }{
		{"cl onset", "clear", "clear"},
		{"fr onset", "free", "free"},
		{"pr onset with literal r", "pro", "pro"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedString(t, Telex, tt.input)
			if got != tt.expected {
				t.Errorf("feed(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPipeline_TonePlacement(t *testing.T) {
	tests := []struct{ name, input, expected string }{
		{"open pair, no coda targets first vowel", "mias", "mía"},
		{"non-open pair targets second regardless of coda", "hoans", "hoán"},
		{"non-open pair with nang", "hoanj", "hoạn"},
		{"qu exception overrides prefer-first", "quir", "quỉ"},
		{"gi exception overrides open-pair", "gias", "giá"},
		{"three vowels target the second", "khuyas", "khuýa"},
		{"ngh exception permits onset position 3", "nghiax", "nghĩa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedString(t, Telex, tt.input)
			if got != tt.expected {
				t.Errorf("feed(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
