package advocate

import "github.com/heartmarshall/advocates-backend/internal/domain"

// BuildFilter turns an accepted query into the search predicate.
// A nil or blank query matches every advocate.
func BuildFilter(query *string) domain.SearchFilter {
	if query == nil {
		return domain.SearchFilter{}
	}
	return domain.NewSearchFilter(*query)
}
