package textnorm

import (
	"testing"

	"github.com/dkozTA/thai-dict-web/internal/domain"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"named entities", "a &amp; b &lt;c&gt; &quot;d&quot; &apos;e&apos;", `a & b <c> "d" 'e'`},
		{"decimal entity", "&#3585;&#3636;&#3609;", "กิน"},
		{"hex entity", "&#x0E01;&#X0E34;&#x0e19;", "กิน"},
		{"unknown named entity kept", "&nbsp;x &copy;", "&nbsp;x &copy;"},
		{"uppercase named entity kept", "&AMP;", "&AMP;"},
		{"invalid code point kept", "&#xD800; &#0;", "&#xD800; &#0;"},
		{"double escaped", "&amp;lt;", "<"},
		{"deeply nested escapes", "&amp;amp;amp;amp;amp;amp;lt;", "<"},
		{"zero width removed", "ก\u200bิ\u200cน\ufeff", "กิน"},
		{"nfc composition", "a\u0306n", "ăn"},
		{"whitespace collapse", "  NAM \t (dt)\n\nnước  ", "NAM (dt) nước"},
		{"nbsp collapses", "an\u00a0 uống", "an uống"},
		{"entity to space collapses", "a&#32;&#32;b", "a b"},
		{"transliteration tone marks untouched", "kin& ma*", "kin& ma*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"&amp;amp;lt;",
		"&am\u200bp;",
		"NAM (dt) nước: uống nước.",
		"  1.  กิน    KIN    ăn, nuốt ",
		"ẹ́ &#x301;",
		"\ufeff\u200d",
		"&#38;#65;",
		"&amp;amp;amp;amp;amp;amp;lt;",
		"&amp;amp;amp;amp;amp;amp;amp;amp;amp;#x41;",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	t.Parallel()

	if got := CollapseSpaces("  a \t b\n"); got != "a b" {
		t.Errorf("CollapseSpaces = %q", got)
	}
}

func TestIsTargetScript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"กิน", true},
		{"kin กิน", true},
		{"\uaa80", true}, // Tai Viet
		{"KIN", false},
		{"ăn", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsTargetScript(tt.in); got != tt.want {
			t.Errorf("IsTargetScript(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInferMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want domain.SearchMode
	}{
		{"กิน", domain.SearchModeWord},
		{"kin", domain.SearchModePhonetic},
		{"KIN-JAI (2)", domain.SearchModePhonetic},
		{"ăn", domain.SearchModeMeaning},
		{"to eat!", domain.SearchModeMeaning},
		{"--", domain.SearchModeMeaning},
	}
	for _, tt := range tests {
		if got := InferMode(tt.in); got != tt.want {
			t.Errorf("InferMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"ăn", "an"},
		{"Đường", "duong"},
		{"TO EAT; Ăn", "to eat; an"},
		{"nước", "nuoc"},
		{"กิน", "กิน"},
		{"น้ำ", "น้ำ"},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
