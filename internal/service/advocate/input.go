package advocate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/advocates-backend/internal/domain"
)

// Query and paging limits.
const (
	QueryMaxLength = 100
	QueryMinLength = 1
	MaxSearchTerms = 10

	PageMin = 1
	PageMax = 1000

	LimitMin = 1
	LimitMax = 50

	DefaultPage  = PageMin
	DefaultLimit = 20
)

// Validation codes returned to API clients.
const (
	CodeQueryTooLong      = "QUERY_TOO_LONG"
	CodeQueryTooShort     = "QUERY_TOO_SHORT"
	CodeQueryInvalidChars = "QUERY_INVALID_CHARS"
	CodeTooManyTerms      = "TOO_MANY_TERMS"
	CodePageOutOfRange    = "PAGE_OUT_OF_RANGE"
	CodeLimitOutOfRange   = "LIMIT_OUT_OF_RANGE"
	CodeInvalidNumber     = "INVALID_NUMBER"
)

var (
	msgQueryTooLong      = fmt.Sprintf("Query too long (max %d characters)", QueryMaxLength)
	msgQueryInvalidChars = "Query contains invalid characters or patterns"
	msgTooManyTerms      = fmt.Sprintf("Too many search terms (max %d)", MaxSearchTerms)
	msgPageInvalid       = "Page must be a valid number"
	msgPageRange         = fmt.Sprintf("Page must be between %d and %d", PageMin, PageMax)
	msgLimitInvalid      = "Limit must be a valid number"
	msgLimitRange        = fmt.Sprintf("Limit must be between %d and %d", LimitMin, LimitMax)
)

// blockedPatterns rejects queries that look like injection attempts.
// Brackets and braces are rejected outright even though they are harmless to
// the parameterised SQL.
var blockedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|DROP|CREATE|ALTER|EXEC|UNION)\b`),
	regexp.MustCompile(`(?i)<script[^>]*>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)data:.*base64`),
	regexp.MustCompile(`[<>{}\[\]\\]`),
}

// ValidateQuery checks the raw search query. An absent, empty or
// whitespace-only query is valid and means "no filter".
func ValidateQuery(raw *string) error {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}

	if utf8.RuneCountInString(trimmed) > QueryMaxLength {
		return domain.NewValidationError("q", CodeQueryTooLong, msgQueryTooLong)
	}

	for _, re := range blockedPatterns {
		if re.MatchString(trimmed) {
			return domain.NewValidationError("q", CodeQueryInvalidChars, msgQueryInvalidChars)
		}
	}

	if len(strings.Fields(strings.ToLower(trimmed))) > MaxSearchTerms {
		return domain.NewValidationError("q", CodeTooManyTerms, msgTooManyTerms)
	}

	return nil
}

// ValidatePage parses the page parameter. Absent or empty yields DefaultPage.
func ValidatePage(raw *string) (int, error) {
	return parseBounded(raw, "page", DefaultPage, PageMin, PageMax, msgPageInvalid, CodePageOutOfRange, msgPageRange)
}

// ValidateLimit parses the limit parameter. Absent or empty yields DefaultLimit.
func ValidateLimit(raw *string) (int, error) {
	return parseBounded(raw, "limit", DefaultLimit, LimitMin, LimitMax, msgLimitInvalid, CodeLimitOutOfRange, msgLimitRange)
}

func parseBounded(raw *string, field string, def, lo, hi int, invalidMsg, rangeCode, rangeMsg string) (int, error) {
	if raw == nil || *raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, domain.NewValidationError(field, rangeCode, rangeMsg)
		}
		return 0, domain.NewValidationError(field, CodeInvalidNumber, invalidMsg)
	}
	if n < lo || n > hi {
		return 0, domain.NewValidationError(field, rangeCode, rangeMsg)
	}
	return n, nil
}

// NormalizedQuery is an accepted request. Query is the sanitized search text,
// nil when no filter applies.
type NormalizedQuery struct {
	Query *string
	Page  int
	Limit int
}

// ListInput holds the raw query parameters of the list endpoint.
type ListInput struct {
	Page  *string
	Limit *string
}

// Validate checks page then limit and returns the first failure.
func (i ListInput) Validate() (NormalizedQuery, error) {
	page, err := ValidatePage(i.Page)
	if err != nil {
		return NormalizedQuery{}, err
	}
	limit, err := ValidateLimit(i.Limit)
	if err != nil {
		return NormalizedQuery{}, err
	}
	return NormalizedQuery{Page: page, Limit: limit}, nil
}

// SearchInput holds the raw query parameters of the search endpoint.
type SearchInput struct {
	Query *string
	Page  *string
	Limit *string
}

// Validate checks q, page and limit in that order and returns the first
// failure. On success the query is sanitized.
func (i SearchInput) Validate() (NormalizedQuery, error) {
	if err := ValidateQuery(i.Query); err != nil {
		return NormalizedQuery{}, err
	}
	nq, err := ListInput{Page: i.Page, Limit: i.Limit}.Validate()
	if err != nil {
		return NormalizedQuery{}, err
	}
	if i.Query != nil {
		if s := SanitizeQuery(*i.Query); s != "" {
			nq.Query = &s
		}
	}
	return nq, nil
}
