package engine

var vniClassify [256]uint8
var vniTone [256]uint8
var vniWTarget [256]bool

func init() {
	for _, b := range []byte("aeiouyd") {
		vniClassify[b] |= isVowel
	}
	// VNI modifiers and tones are both digits; none of them double as
	// vowels so there is nothing to bubble and no free-style splicing.
	for _, b := range []byte("6789") {
		vniClassify[b] |= isModifier
	}
	vniTone['1'] = toneSac
	vniTone['2'] = toneHuyen
	vniTone['3'] = toneHoi
	vniTone['4'] = toneNga
	vniTone['5'] = toneNang
	vniTone['0'] = toneNone
	for _, b := range []byte("012345") {
		vniClassify[b] |= isToneKey
	}

	// vniMode was initialized with copies of these tables before this
	// init ran, so hand it the filled-in versions.
	vniMode.Classify = vniClassify
	vniMode.Tone = vniTone
	vniMode.WTarget = vniWTarget
}

var vniMode = Mode{
	Name:                   "VNI",
	Classify:               vniClassify,
	Tone:                   vniTone,
	WTarget:                vniWTarget,
	Resolver:               resolveVNI,
	EnableModifierBubbling: false,
}

// resolveVNI turns a vowel followed by its digit modifier into the
// modified vowel. VNI has no bare-letter shortcut analogous to Telex's w.
func resolveVNI(curr, next byte, hasNext bool) (rune, bool) {
	if hasNext {
		switch {
		case curr == 'a' && next == '6':
			return 'â', true
		case curr == 'a' && next == '8':
			return 'ă', true
		case curr == 'e' && next == '6':
			return 'ê', true
		case curr == 'o' && next == '6':
			return 'ô', true
		case curr == 'o' && next == '7':
			return 'ơ', true
		case curr == 'u' && next == '7':
			return 'ư', true
		case curr == 'd' && next == '9':
			return 'đ', true
		}
	}
	return rune(curr), false
}
