package domain

// Pagination is the metadata returned alongside any paged result set.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Offset returns the number of rows to skip for the given page.
// The result is never checked against the total row count: a page past the
// end simply yields an empty slice.
func Offset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}

// TotalPages returns ceil(total/limit); 0 when total is 0.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// NewPagination computes the pagination envelope for page/limit/total.
// List and search share this calculation.
func NewPagination(page, limit, total int) Pagination {
	if total < 0 {
		total = 0
	}
	totalPages := TotalPages(total, limit)
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
