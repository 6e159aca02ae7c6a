package rowparser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dkozTA/thai-dict-web/internal/textnorm"
)

// splitStrategy splits a row into columns, returning nil when it does not apply.
type splitStrategy struct {
	name  string
	split func(line string) []string
}

// strategies run in order; the first yielding two or more non-empty parts wins.
var strategies = []splitStrategy{
	{name: "multi_space", split: splitMultiSpace},
	{name: "tabs", split: splitTabs},
	{name: "script_boundary", split: splitScriptBoundary},
	{name: "vocabulary_probe", split: splitVocabularyProbe},
	{name: "first_token", split: splitFirstToken},
}

var (
	multiSpaceRe     = regexp.MustCompile(`\s{2,}`)
	tabsRe           = regexp.MustCompile(`\t+`)
	scriptBoundaryRe = regexp.MustCompile(`^(\S+)\s+([a-zA-Zɯəɔɪʊɛɒɑʌʤʧʃʒθðŋ\s]+?)\s+(.+)$`)
)

func splitColumns(line string) ([]string, string) {
	for _, s := range strategies {
		if parts := nonEmpty(s.split(line)); len(parts) >= 2 {
			return parts, s.name
		}
	}
	return nil, ""
}

func splitMultiSpace(line string) []string {
	return multiSpaceRe.Split(line, -1)
}

func splitTabs(line string) []string {
	return tabsRe.Split(line, -1)
}

// splitScriptBoundary matches a target-script word, a run of Latin or IPA
// letters, then the rest of the line.
func splitScriptBoundary(line string) []string {
	m := scriptBoundaryRe.FindStringSubmatch(line)
	if m == nil || !textnorm.IsTargetScript(m[1]) {
		return nil
	}
	return m[1:]
}

// splitVocabularyProbe slides the phonetic/meaning boundary to the right
// until the tail contains a common Vietnamese word.
func splitVocabularyProbe(line string) []string {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return nil
	}
	for i := 1; i < len(parts)-1; i++ {
		tail := parts[i+1:]
		if containsVietnameseWord(tail) {
			return []string{
				parts[0],
				strings.Join(parts[1:i+1], " "),
				strings.Join(tail, " "),
			}
		}
	}
	return nil
}

func splitFirstToken(line string) []string {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return nil
	}
	return []string{parts[0], strings.Join(parts[1:], " ")}
}

// seedVocabulary holds frequent Vietnamese function and colour/plant words
// that rarely occur in transliterations.
var seedVocabulary = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`người con cái của và có là được đã sẽ
		trong trên dưới với để cho về từ theo như nếu khi mà hay hoặc nhưng vì nên
		màu trắng đen đỏ xanh vàng tím hồng cây hoa lá quả rau củ`) {
		seedVocabulary[w] = struct{}{}
	}
}

// containsVietnameseWord matches whole tokens, so a transliteration like
// "cong" does not count as containing "con".
func containsVietnameseWord(tokens []string) bool {
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r)
		}))
		if _, ok := seedVocabulary[textnorm.Normalize(tok)]; ok {
			return true
		}
	}
	return false
}

func nonEmpty(parts []string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
