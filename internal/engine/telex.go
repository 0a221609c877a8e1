package engine

// Telex tone keys: s (sắc), f (huyền), r (hỏi), x (ngã), j (nặng), z (remove).
const (
	toneNone uint8 = iota
	toneSac
	toneHuyen
	toneHoi
	toneNga
	toneNang
)

var telexClassify [256]uint8
var telexTone [256]uint8
var telexWTarget [256]bool

func init() {
	for _, b := range []byte("aeiouyd") {
		telexClassify[b] |= isVowel
	}
	for _, b := range []byte("aeodw") {
		telexClassify[b] |= isModifier
	}
	telexTone['s'] = toneSac
	telexTone['f'] = toneHuyen
	telexTone['r'] = toneHoi
	telexTone['x'] = toneNga
	telexTone['j'] = toneNang
	telexTone['z'] = toneNone
	for _, b := range []byte("sfrxjz") {
		telexClassify[b] |= isToneKey
	}

	// w bubbles toward the nearest preceding a/o/u/d: in "hoanw" the w
	// lands right after the a (rendering "hoăn"), not at the end.
	for _, b := range []byte("aoud") {
		telexWTarget[b] = true
	}

	// telexMode was initialized with copies of these tables before this
	// init ran, so hand it the filled-in versions.
	telexMode.Classify = telexClassify
	telexMode.Tone = telexTone
	telexMode.WTarget = telexWTarget
}

var telexMode = Mode{
	Name:                   "Telex",
	Classify:               telexClassify,
	Tone:                   telexTone,
	WTarget:                telexWTarget,
	Resolver:               resolveTelex,
	EnableModifierBubbling: true,
}

// resolveTelex turns a doubled letter or a trailing w into its modified
// vowel. A bare w with no digraph match still resolves to ư.
func resolveTelex(curr, next byte, hasNext bool) (rune, bool) {
	if hasNext {
		switch {
		case curr == 'a' && next == 'a':
			return 'â', true
		case curr == 'a' && next == 'w':
			return 'ă', true
		case curr == 'e' && next == 'e':
			return 'ê', true
		case curr == 'o' && next == 'o':
			return 'ô', true
		case curr == 'o' && next == 'w':
			return 'ơ', true
		case curr == 'u' && next == 'w':
			return 'ư', true
		case curr == 'd' && next == 'd':
			return 'đ', true
		}
	}
	if curr == 'w' {
		return 'ư', false
	}
	return rune(curr), false
}
