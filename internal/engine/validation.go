package engine

import "math/bits"

// forbiddenOnsets lists two-letter consonant clusters that never start a
// Vietnamese syllable. They show up constantly in English loanwords
// ("clear", "free", "blob") and are the signal phase 4 uses to back off
// and render the raw keystrokes instead of a bogus Vietnamese syllable.
var forbiddenOnsets = map[string]bool{
	"cl": true, "fl": true, "bl": true, "gl": true, "sl": true, "pl": true,
	"br": true, "pr": true, "dr": true, "fr": true, "gr": true, "kr": true,
	"st": true, "sp": true, "sk": true,
	"pt": true, "pc": true, "pg": true, "pq": true, "ps": true, "pk": true, "pd": true, "pf": true, "pb": true,
}

// isInvalidRendering implements the validation phase: it decides whether
// a rendered syllable looks like real Vietnamese or should be discarded
// in favor of the raw keystrokes (the foreign-word fallback).
func isInvalidRendering(chars []rune, vowelMask uint16) bool {
	if vowelMask == 0 {
		return len(chars) > 1
	}

	for i := 0; i+1 < len(chars); i++ {
		if chars[i] == 'o' && chars[i+1] == 'u' {
			return true
		}
	}

	firstVowelPos := bits.TrailingZeros16(vowelMask)

	if firstVowelPos >= 3 {
		if firstVowelPos == 3 && len(chars) >= 3 && chars[0] == 'n' && chars[1] == 'g' && chars[2] == 'h' {
			return false
		}
		return true
	}

	if firstVowelPos == 2 && len(chars) >= 2 {
		if forbiddenOnsets[string(chars[0])+string(chars[1])] {
			return true
		}
	}

	return false
}
