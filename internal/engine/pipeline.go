package engine

import "math/bits"

// sentinelLiteralW stands in for a "w" that double-w cancellation
// neutralized back to a literal w. It can never collide with a real
// input byte, so phase 3's resolver never matches it as part of a
// digraph — it always renders as a plain "w".
const sentinelLiteralW byte = 0

// Render runs the five-phase pipeline over the raw keystroke buffer
// and returns the rendered rune sequence for the current syllable.
// It is a pure function of mode and raw: the engine dispatcher owns
// all the buffering, Render only transforms bytes into runes.
func Render(mode *Mode, raw []byte) []rune {
	if len(raw) == 0 {
		return nil
	}

	processed, pLen, lastTone := phase1ExtractTone(mode, raw)
	work, wLen := collapseTriples(processed[:pLen])
	buf, bLen := work[:wLen], wLen

	if mode.EnableModifierBubbling {
		bubbledA, aLen := phase2FreeStyleBubble(buf[:bLen])
		bubbledB, bLen2 := phase2WBubble(mode, bubbledA[:aLen])
		buf, bLen = bubbledB[:bLen2], bLen2
	}

	chars, cLen, vowelMask := phase3Resolve(mode, buf[:bLen])

	if isInvalidRendering(chars[:cLen], vowelMask) {
		out := make([]rune, len(raw))
		for i, b := range raw {
			out[i] = rune(b)
		}
		return out
	}

	if lastTone != 0 {
		toneID := mode.Tone[lastTone]
		applyTonePlacement(chars[:cLen], vowelMask, toneID)
	}

	return append([]rune(nil), chars[:cLen]...)
}

// phase1ExtractTone walks the raw bytes once, pulling tone keys out of
// the stream and remembering only the last one (greedy-tone-last-wins);
// a tone key typed twice in a row cancels back to no tone at all.
func phase1ExtractTone(mode *Mode, raw []byte) ([32]byte, int, byte) {
	var processed [32]byte
	pLen := 0
	var lastToneKey byte
	toneCancelled := false

	for i, b := range raw {
		if mode.Classify[b]&isToneKey == 0 {
			processed[pLen] = b
			pLen++
			continue
		}

		if i == 0 {
			// First character is always content, never a tone key.
			processed[pLen] = b
			pLen++
			continue
		}
		if b == 'r' {
			switch raw[i-1] {
			case 't', 'p', 'f', 'c', 'b', 'd', 'g', 'k':
				// "pr", "tr", "fr"... here r is a literal
				// consonant-cluster letter, not the hỏi key.
				processed[pLen] = b
				pLen++
				continue
			}
		}
		if lastToneKey != 0 && b == lastToneKey {
			lastToneKey = 0
			toneCancelled = true
			processed[pLen] = b
			pLen++
			continue
		}
		if toneCancelled {
			processed[pLen] = b
			pLen++
			continue
		}
		lastToneKey = b
	}
	return processed, pLen, lastToneKey
}

// collapseTriples folds a third consecutive a/e/o/d back down to a
// single occurrence, so typing past a doubled modifier (e.g. "aaa")
// reverts it rather than producing a nonsense triple.
func collapseTriples(processed []byte) ([32]byte, int) {
	var toggled [32]byte
	tLen := 0
	n := len(processed)

	for i := 0; i < n; {
		c := processed[i]
		if i+2 < n && processed[i+1] == c && processed[i+2] == c {
			switch c {
			case 'a', 'e', 'o', 'd':
				toggled[tLen] = c
				tLen++
				i += 3
				continue
			}
		}
		toggled[tLen] = c
		tLen++
		i++
	}
	return toggled, tLen
}

// freeStyleSymbolIndex maps a/e/o/d to a small dense index for the
// bubbling pass's position tracker; any other byte returns -1.
func freeStyleSymbolIndex(b byte) int {
	switch b {
	case 'a':
		return 0
	case 'e':
		return 1
	case 'o':
		return 2
	case 'd':
		return 3
	}
	return -1
}

// phase2FreeStyleBubble lets a/e/o/d combine even when typed out of
// order: "h a n a" becomes "h a a n a" (which phase 3 then folds
// into "hâna"), while an ordinary adjacent double like "ee" is left
// alone since it's already a digraph phase 3 will resolve on its own.
func phase2FreeStyleBubble(buf []byte) ([32]byte, int) {
	var out [32]byte
	n := 0
	var trackedPos [4]int
	for i := range trackedPos {
		trackedPos[i] = -1
	}

	for _, b := range buf {
		if n >= len(out) {
			break
		}
		out[n] = b
		n++
		si := freeStyleSymbolIndex(b)
		if si < 0 {
			continue
		}
		if trackedPos[si] == -1 {
			trackedPos[si] = n - 1
			continue
		}

		gap := (n - 1) - trackedPos[si] - 1
		if gap == 0 {
			// Adjacent repeat: this is a plain digraph, not a
			// bubble-worthy out-of-order pair.
			trackedPos[si] = -1
			continue
		}

		if n >= len(out) {
			trackedPos[si] = -1
			continue
		}
		splicePos := trackedPos[si] + 1
		for j := n; j > splicePos; j-- {
			out[j] = out[j-1]
		}
		out[splicePos] = b
		n++

		trackedPos[si] = -1
		for k := range trackedPos {
			if k != si && trackedPos[k] >= splicePos {
				trackedPos[k]++
			}
		}
	}
	return out, n
}

// phase2WBubble handles Telex's other "w" behaviors: "ww" cancels back
// to a literal w (recorded with a sentinel so phase 3 won't treat it
// as part of a digraph), and a lone "w" bubbles left to sit right
// after the most recent eligible a/o/u/d.
func phase2WBubble(mode *Mode, buf []byte) ([32]byte, int) {
	var out [32]byte
	m := 0
	lastTarget := -1
	n := len(buf)

	for i := 0; i < n; i++ {
		b := buf[i]
		if b == 'w' {
			if i+1 < n && buf[i+1] == 'w' {
				out[m] = sentinelLiteralW
				m++
				i++
				continue
			}
			if lastTarget >= 0 {
				for j := m; j > lastTarget+1; j-- {
					out[j] = out[j-1]
				}
				out[lastTarget+1] = 'w'
			} else {
				out[m] = 'w'
			}
			m++
			continue
		}
		out[m] = b
		if mode.WTarget[b] {
			lastTarget = m
		}
		m++
	}
	return out, m
}

// phase3Resolve turns the post-bubbling byte stream into runes,
// merging digraphs via the mode's resolver and handling the uow → ươ
// special case (guarded against the qu glide, where the u is part of
// the q-u onset rather than a vowel pairing with o).
func phase3Resolve(mode *Mode, buf []byte) ([32]rune, int, uint16) {
	var chars [32]rune
	cLen := 0
	var vowelMask uint16
	n := len(buf)

	for i := 0; i < n; {
		curr := buf[i]
		if curr == sentinelLiteralW {
			chars[cLen] = 'w'
			cLen++
			i++
			continue
		}

		var next byte
		hasNext := i+1 < n
		if hasNext {
			next = buf[i+1]
		}
		c, consumed := mode.Resolver(curr, next, hasNext)

		if curr == 'u' && !consumed && hasNext && next == 'o' && i+2 < n && buf[i+2] == 'w' {
			isQuGlide := i > 0 && buf[i-1] == 'q'
			if !isQuGlide {
				c = 'ư'
			}
		}

		if isVowelRune(c) && cLen < 16 {
			vowelMask |= 1 << uint(cLen)
		}
		chars[cLen] = c
		cLen++

		if consumed {
			i += 2
		} else {
			i++
		}
	}
	return chars, cLen, vowelMask
}

// openPairs lists vowel-cluster starts where, absent a coda, the tone
// lands on the first vowel rather than the second.
var openPairs = map[[2]rune]bool{
	{'i', 'a'}: true, {'i', 'u'}: true,
	{'u', 'a'}: true, {'u', 'e'}: true,
	{'ư', 'a'}: true, {'ư', 'u'}: true,
	{'a', 'o'}: true, {'a', 'e'}: true, {'a', 'i'}: true, {'a', 'u'}: true, {'a', 'y'}: true,
	{'e', 'o'}: true, {'e', 'u'}: true,
	{'o', 'i'}: true,
	{'â', 'y'}: true, {'â', 'u'}: true,
}

// applyTonePlacement decides which rendered vowel carries the tone and
// rewrites it in place.
func applyTonePlacement(chars []rune, vowelMask uint16, toneID uint8) {
	n := bits.OnesCount16(vowelMask)
	if n == 0 {
		return
	}

	first := bits.TrailingZeros16(vowelMask)
	var target int

	switch {
	case n == 1:
		target = first
	case n >= 3:
		rest := vowelMask &^ (1 << uint(first))
		target = bits.TrailingZeros16(rest)
	default: // n == 2
		rest := vowelMask &^ (1 << uint(first))
		second := bits.TrailingZeros16(rest)
		f, sc := charAt(chars, first), charAt(chars, second)

		preferFirst := (isUOrUHorn(f) && sc == 'i') || (isModifiedVowel(f) && isPlainVowel(sc))
		isOpenPair := openPairs[[2]rune{f, sc}]

		if first == 1 && len(chars) >= 2 {
			if (chars[0] == 'q' && chars[1] == 'u') || (chars[0] == 'g' && chars[1] == 'i') {
				preferFirst = false
				isOpenPair = false
			}
		}

		switch {
		case preferFirst:
			target = first
		case isOpenPair:
			if second+1 < len(chars) {
				target = second
			} else {
				target = first
			}
		default:
			target = second
		}
	}

	chars[target] = applyToneToVowel(chars[target], toneID)
}

func charAt(chars []rune, idx int) rune {
	if idx < 0 || idx >= len(chars) {
		return 0
	}
	return chars[idx]
}

func isUOrUHorn(r rune) bool {
	return r == 'u' || r == 'ư'
}
