package rowparser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dkozTA/thai-dict-web/internal/domain"
	"github.com/dkozTA/thai-dict-web/internal/textnorm"
)

// Phase is the position of the reader relative to vocabulary tables.
type Phase int

const (
	// PhaseOutside: no vocabulary section seen yet; lines are skipped.
	PhaseOutside Phase = iota
	// PhaseBeforeHeader: inside a section, waiting for its table header.
	PhaseBeforeHeader
	// PhaseInTable: rows are parsed.
	PhaseInTable
)

func (p Phase) String() string {
	switch p {
	case PhaseBeforeHeader:
		return "before_header"
	case PhaseInTable:
		return "in_table"
	default:
		return "outside"
	}
}

// LineKind classifies a line observed by a Tracker.
type LineKind int

const (
	KindSkip LineKind = iota
	KindSection
	KindTableHeader
	KindRow
)

// State is the section context attached to parsed rows.
type State struct {
	Section  string
	Category domain.Category
}

var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(I|II|III|IV|V|VI)\.\s*Bảng từ ngữ`),
	regexp.MustCompile(`(?i)^I+\.\s*[^0-9]`),
	regexp.MustCompile(`(?i)^\d+\.\s*Từ vựng`),
}

var tableHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Từ vựng Thái.*Việt`),
	regexp.MustCompile(`(?i)Tiếng Thái.*Tiếng Việt`),
	regexp.MustCompile(`(?i)Chữ Thái.*Phiên âm.*Tiếng Việt`),
	regexp.MustCompile(`(?i)TT.*Chữ Thái.*Phiên âm`),
}

var separatorRe = regexp.MustCompile(`^(-+|=+|\|+|\d+\s*)$`)

// Tracker is the section state machine for one document. It is not safe for
// concurrent use; a document is read sequentially.
type Tracker struct {
	phase    Phase
	state    State
	skipNext bool
}

// NewTracker returns a Tracker outside any section.
func NewTracker() *Tracker {
	return &Tracker{state: State{Category: domain.CategoryGeneral}}
}

// Phase returns the current phase.
func (t *Tracker) Phase() Phase { return t.phase }

// State returns the section context for rows parsed now.
func (t *Tracker) State() State { return t.state }

// EnterSection starts a new vocabulary section named by heading and waits
// for its table header.
func (t *Tracker) EnterSection(heading string) {
	t.phase = PhaseBeforeHeader
	t.state.Section = heading
	t.SetCategory(CategoryFor(heading))
}

// SetCategory overrides the category of the current section.
func (t *Tracker) SetCategory(c domain.Category) {
	if c == "" {
		c = domain.CategoryGeneral
	}
	t.state.Category = c
}

// Observe classifies line and advances the state. next is the following
// line, or "" at the end of the document; a table header followed by a
// "TT" column line consumes that line too.
func (t *Tracker) Observe(line, next string) LineKind {
	if t.skipNext {
		t.skipNext = false
		return KindSkip
	}

	if IsSectionHeader(line) {
		t.EnterSection(line)
		return KindSection
	}
	if t.phase == PhaseOutside {
		return KindSkip
	}

	if IsTableHeader(line, next) {
		t.phase = PhaseInTable
		t.skipNext = containsToken(next, "TT")
		return KindTableHeader
	}
	if t.phase != PhaseInTable {
		return KindSkip
	}
	return KindRow
}

// IsSectionHeader reports whether line opens a vocabulary section.
func IsSectionHeader(line string) bool {
	for _, re := range sectionPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// IsTableHeader reports whether line is a table header, either by its own
// column titles or because the next line carries the "TT" index column.
func IsTableHeader(line, next string) bool {
	for _, re := range tableHeaderPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return containsToken(next, "TT")
}

// IsHeaderOrSeparator reports column-title rows and rule lines inside a table.
func IsHeaderOrSeparator(line string) bool {
	switch {
	case containsToken(line, "TT") && strings.Contains(line, "Chữ Thái"),
		strings.Contains(line, "Tiếng Thái") && strings.Contains(line, "Tiếng Việt"),
		strings.Contains(line, "Phiên âm"),
		strings.Contains(line, "Chú thích"),
		utf8.RuneCountInString(line) < 3,
		separatorRe.MatchString(line):
		return true
	}
	return false
}

// containsToken reports whether tok occurs in s not adjacent to another letter.
func containsToken(s, tok string) bool {
	for i := 0; ; {
		j := strings.Index(s[i:], tok)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(tok)
		before, _ := utf8.DecodeLastRuneInString(s[:start])
		after, _ := utf8.DecodeRuneInString(s[end:])
		if (start == 0 || !unicode.IsLetter(before)) && (end == len(s) || !unicode.IsLetter(after)) {
			return true
		}
		i = start + 1
	}
}

// categoryKeywords is searched in order and the first contained keyword wins.
// Longer phrases precede the shorter keywords they contain.
var categoryKeywords = []struct {
	keyword  string
	category domain.Category
}{
	{"sự vật hiện tượng", domain.CategoryObjectsPhenomena},
	{"vật hiện tượng", domain.CategoryObjectsPhenomena},
	{"bộ phận cơ thể", domain.CategoryBodyParts},
	{"cơ thể", domain.CategoryBodyParts},
	{"con người", domain.CategoryPeople},
	{"người", domain.CategoryPeople},
	{"gia đình", domain.CategoryFamily},
	{"họ hàng", domain.CategoryFamily},
	{"động vật", domain.CategoryAnimals},
	{"thực vật", domain.CategoryPlants},
	{"cây cối", domain.CategoryPlants},
	{"ẩm thực", domain.CategoryFood},
	{"đồ ăn", domain.CategoryFood},
	{"thức ăn", domain.CategoryFood},
	{"màu sắc", domain.CategoryColors},
	{"thời gian", domain.CategoryTime},
	{"số đếm", domain.CategoryNumbers},
	{"con số", domain.CategoryNumbers},
	{"giao thông", domain.CategoryTransport},
	{"tính từ", domain.CategoryAdjectives},
	{"động từ", domain.CategoryVerbs},
	{"danh từ", domain.CategoryNouns},
}

// CategoryFor maps a section heading to a category, defaulting to general.
func CategoryFor(heading string) domain.Category {
	lower := strings.ToLower(textnorm.Normalize(heading))
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.category
		}
	}
	return domain.CategoryGeneral
}
