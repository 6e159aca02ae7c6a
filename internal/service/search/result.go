package search

import "github.com/dkozTA/thai-dict-web/internal/domain"

// Hit is one search result annotated with the stage and field that found it.
type Hit struct {
	Entry        domain.LexicalEntry
	MatchType    domain.MatchType
	MatchedField string
}

// Result is the outcome of a search. TotalFound counts the candidates
// collected before truncation to the limit.
type Result struct {
	Items      []Hit
	TotalFound int
	Mode       domain.SearchMode
}
