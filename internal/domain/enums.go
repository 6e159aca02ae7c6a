package domain

// SearchMode selects which strategy families a search runs.
type SearchMode string

const (
	SearchModeAll      SearchMode = "all"
	SearchModeWord     SearchMode = "word"
	SearchModePhonetic SearchMode = "phonetic"
	SearchModeMeaning  SearchMode = "meaning"
	// SearchModeAuto picks one of the concrete modes from the query text.
	SearchModeAuto SearchMode = "auto"
)

func (m SearchMode) String() string { return string(m) }

func (m SearchMode) IsValid() bool {
	switch m {
	case SearchModeAll, SearchModeWord, SearchModePhonetic, SearchModeMeaning, SearchModeAuto:
		return true
	}
	return false
}

// MatchType records which search stage surfaced a hit.
type MatchType string

const (
	MatchTypeMeaning  MatchType = "meaning"
	MatchTypePhonetic MatchType = "phonetic"
	MatchTypeWord     MatchType = "word"
)

func (t MatchType) String() string { return string(t) }

// Source is the provenance tag of an entry.
type Source string

const (
	SourceSpreadsheet Source = "spreadsheet_import"
	SourceDocument    Source = "document_import"
	SourceManual      Source = "manual"
)

func (s Source) String() string { return string(s) }

func (s Source) IsValid() bool {
	switch s {
	case SourceSpreadsheet, SourceDocument, SourceManual:
		return true
	}
	return false
}

// ImportSources lists the provenance tags written by the import runners.
func ImportSources() []Source {
	return []Source{SourceSpreadsheet, SourceDocument}
}

// Category is a heuristic classification label derived from document headings.
type Category string

const (
	CategoryGeneral          Category = "general"
	CategoryObjectsPhenomena Category = "objects_phenomena"
	CategoryBodyParts        Category = "body_parts"
	CategoryPeople           Category = "people"
	CategoryFamily           Category = "family"
	CategoryAnimals          Category = "animals"
	CategoryPlants           Category = "plants"
	CategoryFood             Category = "food"
	CategoryColors           Category = "colors"
	CategoryTime             Category = "time"
	CategoryNumbers          Category = "numbers"
	CategoryTransport        Category = "transport"
	CategoryAdjectives       Category = "adjectives"
	CategoryVerbs            Category = "verbs"
	CategoryNouns            Category = "nouns"
)

func (c Category) String() string { return string(c) }
