package engine

// vowelTones maps each bare lowercase vowel to its six tone forms,
// indexed by toneNone..toneNang. Only lowercase forms are needed: the
// pipeline works in lowercase bytes/runes throughout and case is the
// caller's concern, same as the teacher's own single-case rendering.
var vowelTones = map[rune][6]rune{
	'a': {'a', 'á', 'à', 'ả', 'ã', 'ạ'},
	'ă': {'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	'â': {'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	'e': {'e', 'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	'ê': {'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ'},
	'i': {'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	'o': {'o', 'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	'ô': {'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	'ơ': {'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	'u': {'u', 'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	'ư': {'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	'y': {'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
}

// applyToneToVowel returns r re-rendered with the given tone, or r
// unchanged if it isn't a vowel the table covers (consonants, digits,
// and đ all pass through untouched).
func applyToneToVowel(r rune, tone uint8) rune {
	forms, ok := vowelTones[r]
	if !ok || int(tone) >= len(forms) {
		return r
	}
	return forms[tone]
}

// isVowelRune reports whether r is one of the twelve rendered vowel
// letters, bare or already carrying a modifier.
func isVowelRune(r rune) bool {
	switch r {
	case 'a', 'ă', 'â', 'e', 'ê', 'i', 'o', 'ô', 'ơ', 'u', 'ư', 'y':
		return true
	}
	return false
}

func isModifiedVowel(r rune) bool {
	switch r {
	case 'ơ', 'ô', 'ê', 'â', 'ă':
		return true
	}
	return false
}

func isPlainVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
