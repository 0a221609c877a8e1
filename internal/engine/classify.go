package engine

// Per-byte attribute bits produced by a mode's classification table.
// Only isToneKey is read by the render pipeline today; isVowel and
// isModifier are carried for completeness of the classification table
// component and for callers that want to introspect a mode's alphabet.
const (
	isVowel uint8 = 1 << iota
	isModifier
	isToneKey
)
