package advocate

import "github.com/heartmarshall/advocates-backend/internal/domain"

// PageResult is one page of advocates with its pagination envelope.
type PageResult struct {
	Advocates  []domain.Advocate
	Pagination domain.Pagination
}

// SearchResult extends PageResult with the accepted query, nil when the
// search ran unfiltered.
type SearchResult struct {
	PageResult
	Query *string
}
