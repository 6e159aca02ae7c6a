package cellparser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dkozTA/thai-dict-web/internal/textnorm"
)

// rule inspects the remaining cell text. It reports whether it matched, the
// remainder for the next rule and the result with its fields filled in.
type rule struct {
	name  string
	apply func(rest string, acc Result) (bool, string, Result)
}

var fieldRules = []rule{
	{name: "phonetic", apply: extractPhonetic},
	{name: "grammar_note", apply: extractGrammarNote},
	{name: "examples", apply: extractExamples},
}

var glossRules = []rule{
	{name: "enumerated_senses", apply: enumeratedSenses},
	{name: "gloss_after_examples", apply: glossAfterExamples},
	{name: "residual_gloss", apply: residualGloss},
}

// upperViet is the uppercase Vietnamese alphabet used by the phonetic transcriptions.
const upperViet = "A-ZĐÁÀẢÃẠÂẦẤẨẪẬĂẮẰẲẴẶÉÈẺẼẸÊỀẾỂỄỆÍÌỈĨỊÓÒỎÕỌÔỒỐỔỖỘƠỜỚỞỠỢÚÙỦŨỤƯỪỨỬỮỰÝỲỶỸỴ"

var (
	phoneticRe    = regexp.MustCompile(`^[` + upperViet + `][` + upperViet + `\s]*`)
	grammarRe     = regexp.MustCompile(`^\(([^)]+)\)\s*`)
	exampleRe     = regexp.MustCompile(`([^:.]+?):\s*([^.:]+(?:\.[^0-9]|$|))`)
	enumeratedRe  = regexp.MustCompile(`^\d+\.`)
	senseMarkerRe = regexp.MustCompile(`\d+\.`)
	trailingPunct = regexp.MustCompile(`[.;]+$`)
	trailingGloss = regexp.MustCompile(`[.;\s]+$`)
	trailingWord  = regexp.MustCompile(`[.,;]+$`)
)

// extractPhonetic takes whole leading uppercase tokens. A run that stops
// inside a capitalized word ("Nước") is cut back to the previous space.
func extractPhonetic(rest string, acc Result) (bool, string, Result) {
	m := phoneticRe.FindString(rest)
	if m != "" && len(m) < len(rest) && !strings.HasSuffix(m, " ") {
		next, _ := utf8.DecodeRuneInString(rest[len(m):])
		if unicode.IsLetter(next) {
			m = m[:strings.LastIndexByte(m, ' ')+1]
		}
	}
	if strings.TrimSpace(m) == "" {
		return false, rest, acc
	}
	acc.Phonetic = textnorm.CollapseSpaces(m)
	return true, strings.TrimSpace(rest[len(m):]), acc
}

// extractGrammarNote captures a leading "(...)". An unterminated "(" does not match.
func extractGrammarNote(rest string, acc Result) (bool, string, Result) {
	m := grammarRe.FindStringSubmatch(rest)
	if m == nil {
		return false, rest, acc
	}
	acc.GrammarNote = strings.TrimSpace(m[1])
	return true, strings.TrimSpace(rest[len(m[0]):]), acc
}

// extractExamples collects "phrase: meaning" pairs and removes their spans
// from the remainder. Pairs whose meaning is a single character are ignored
// and their text stays in the remainder.
func extractExamples(rest string, acc Result) (bool, string, Result) {
	type span struct{ start, end int }

	var (
		examples []Example
		spans    []span
	)
	for _, loc := range exampleRe.FindAllStringSubmatchIndex(rest, -1) {
		phrase := strings.TrimSpace(rest[loc[2]:loc[3]])
		meaning := trailingPunct.ReplaceAllString(strings.TrimSpace(rest[loc[4]:loc[5]]), "")
		if phrase == "" || len([]rune(meaning)) <= 1 {
			continue
		}
		examples = append(examples, Example{Phrase: phrase, Meaning: meaning})
		spans = append(spans, span{start: loc[0], end: loc[1]})
	}
	if len(examples) == 0 {
		return false, rest, acc
	}

	// Cut from the last span to the first so earlier offsets stay valid.
	work := rest
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		work = strings.TrimSpace(work[:s.start]) + " " + strings.TrimSpace(work[s.end:])
	}

	acc.Examples = append(acc.Examples, examples...)
	return true, textnorm.CollapseSpaces(work), acc
}

// enumeratedSenses handles remainders like "1. ăn 2. nuốt". The senses are
// joined into one main meaning rather than stored separately.
func enumeratedSenses(rest string, acc Result) (bool, string, Result) {
	if !enumeratedRe.MatchString(rest) {
		return false, rest, acc
	}

	marks := senseMarkerRe.FindAllStringIndex(rest, -1)
	senses := make([]string, 0, len(marks))
	for i, m := range marks {
		end := len(rest)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		if s := strings.TrimSpace(rest[m[0]:end]); s != "" {
			senses = append(senses, s)
		}
	}

	acc.MainMeaning = strings.Join(senses, " ")
	return true, "", acc
}

// glossAfterExamples takes the first token of a remainder left behind by
// stripped examples; that token is usually a direct gloss.
func glossAfterExamples(rest string, acc Result) (bool, string, Result) {
	if len(acc.Examples) == 0 || rest == "" {
		return false, rest, acc
	}
	first := strings.Fields(rest)[0]
	acc.MainMeaning = trailingWord.ReplaceAllString(first, "")
	return true, "", acc
}

func residualGloss(rest string, acc Result) (bool, string, Result) {
	acc.MainMeaning = trailingGloss.ReplaceAllString(rest, "")
	return true, "", acc
}
