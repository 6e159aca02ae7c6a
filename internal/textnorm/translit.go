package textnorm

import (
	"strings"
	"unicode/utf8"
)

// translitMap converts the learner transliteration alphabet to Thai script.
var translitMap = map[rune]string{
	// vowels
	'a': "า", 'i': "ิ", 'I': "ี", 'u': "ุ", 'U': "ู",
	'e': "เ", 'E': "แ", 'o': "โ", 'O': "อ",

	// consonants
	'k': "ก", 'c': "จ", 't': "ต", 'T': "ท", 'p': "ป", 'P': "พ",
	'b': "บ", 'm': "ม", 'n': "น", 'N': "ณ", 'j': "จ", 'y': "ย",
	'r': "ร", 'l': "ล", 'w': "ว", 's': "ส", 'h': "ห",

	// tone marks
	'&': "่", '*': "้", '^': "๊", '~': "๋",

	'#': "ฃ",
	'+': "ฌ",
}

// TransliterationToThai renders a transliterated headword in Thai script.
// Text already containing target-script characters is returned unchanged.
// A "<...>" sequence is copied through without its brackets.
func TransliterationToThai(text string) string {
	if text == "" || IsTargetScript(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) * 3)
	for i := 0; i < len(text); {
		if text[i] == '<' {
			if end := strings.IndexByte(text[i+1:], '>'); end >= 0 {
				b.WriteString(text[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		if th, ok := translitMap[r]; ok {
			b.WriteString(th)
		} else {
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	return b.String()
}

// Display holds the rendering of a headword for clients.
type Display struct {
	Word             string
	IsTransliterated bool
}

// DisplayWord converts a transliterated headword for display and reports whether it did.
func DisplayWord(word string) Display {
	if word == "" || IsTargetScript(word) {
		return Display{Word: word}
	}
	return Display{Word: TransliterationToThai(word), IsTransliterated: true}
}
