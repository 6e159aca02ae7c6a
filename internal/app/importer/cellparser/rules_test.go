package cellparser

import "testing"

func TestExtractPhonetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		matched  bool
		phonetic string
		rest     string
	}{
		{"NAM (dt) nước", true, "NAM", "(dt) nước"},
		{"KIN KHAO ăn cơm", true, "KIN KHAO", "ăn cơm"},
		{"ĐƯỜNG", true, "ĐƯỜNG", ""},
		{"ăn", false, "", "ăn"},
		{"Nước", false, "", "Nước"},
		{"NAM Nước", true, "NAM", "Nước"},
	}
	for _, tt := range tests {
		matched, rest, got := extractPhonetic(tt.in, Result{})
		if matched != tt.matched || got.Phonetic != tt.phonetic || rest != tt.rest {
			t.Errorf("extractPhonetic(%q) = (%v, %q, %q), want (%v, %q, %q)",
				tt.in, matched, rest, got.Phonetic, tt.matched, tt.rest, tt.phonetic)
		}
	}
}

func TestExtractGrammarNote(t *testing.T) {
	t.Parallel()

	matched, rest, got := extractGrammarNote("( dt ) nước", Result{})
	if !matched || got.GrammarNote != "dt" || rest != "nước" {
		t.Errorf("extractGrammarNote = (%v, %q, %q)", matched, rest, got.GrammarNote)
	}

	matched, rest, _ = extractGrammarNote("(dt nước", Result{})
	if matched || rest != "(dt nước" {
		t.Errorf("unterminated parenthesis should not match, got (%v, %q)", matched, rest)
	}

	matched, _, _ = extractGrammarNote("nước (dt)", Result{})
	if matched {
		t.Error("grammar note must be leading")
	}
}

func TestExtractExamples_RemovesSpans(t *testing.T) {
	t.Parallel()

	matched, rest, got := extractExamples("chồng. pau mia: vợ chồng", Result{})
	if !matched {
		t.Fatal("expected a match")
	}
	if rest != "chồng." {
		t.Errorf("rest = %q, want %q", rest, "chồng.")
	}
	if len(got.Examples) != 1 || got.Examples[0].Phrase != "pau mia" || got.Examples[0].Meaning != "vợ chồng" {
		t.Errorf("examples = %+v", got.Examples)
	}
}

func TestGlossRules(t *testing.T) {
	t.Parallel()

	if matched, _, _ := enumeratedSenses("ăn 1. x", Result{}); matched {
		t.Error("enumeratedSenses must require a leading marker")
	}
	if _, _, got := enumeratedSenses("1. ăn 12. uống", Result{}); got.MainMeaning != "1. ăn 12. uống" {
		t.Errorf("enumeratedSenses = %q", got.MainMeaning)
	}
	if matched, _, _ := glossAfterExamples("ăn", Result{}); matched {
		t.Error("glossAfterExamples needs examples")
	}
	acc := Result{Examples: []Example{{Phrase: "a", Meaning: "bc"}}}
	if _, _, got := glossAfterExamples("ăn, uống thêm", acc); got.MainMeaning != "ăn" {
		t.Errorf("glossAfterExamples = %q", got.MainMeaning)
	}
	if _, _, got := residualGloss("ăn cơm ;. ", Result{}); got.MainMeaning != "ăn cơm" {
		t.Errorf("residualGloss = %q", got.MainMeaning)
	}
}
