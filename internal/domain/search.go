package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// SearchFilter is the predicate applied to advocates by the search endpoint.
// A record matches when every term is a case-insensitive substring of at
// least one searchable field. The zero value matches every record.
type SearchFilter struct {
	Terms []string
}

// NewSearchFilter splits a sanitized query into lower-cased terms.
// An empty query yields the match-all filter.
func NewSearchFilter(query string) SearchFilter {
	terms := strings.Fields(NormalizeText(query))
	if len(terms) == 0 {
		return SearchFilter{}
	}
	return SearchFilter{Terms: terms}
}

// IsEmpty reports whether the filter matches every record.
func (f SearchFilter) IsEmpty() bool {
	return len(f.Terms) == 0
}

// Match evaluates the filter against a single advocate.
func (f SearchFilter) Match(a Advocate) bool {
	if f.IsEmpty() {
		return true
	}
	fields := SearchableText(a)
	for _, term := range f.Terms {
		if !matchAny(fields, term) {
			return false
		}
	}
	return true
}

func matchAny(fields []string, term string) bool {
	for _, field := range fields {
		if strings.Contains(field, term) {
			return true
		}
	}
	return false
}

// SearchableText returns the lower-cased textual rendering of every
// searchable field, in the same form the database compares against.
func SearchableText(a Advocate) []string {
	return []string{
		strings.ToLower(a.FirstName),
		strings.ToLower(a.LastName),
		strings.ToLower(a.City),
		strings.ToLower(a.Degree),
		strings.ToLower(SpecialtiesText(a.Specialties)),
		strconv.Itoa(a.YearsOfExperience),
		strconv.FormatInt(a.PhoneNumber, 10),
	}
}

// SpecialtiesText renders the specialties list the way PostgreSQL prints a
// jsonb array: ["a", "b"].
func SpecialtiesText(specialties []string) string {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)

	b.WriteByte('[')
	for i, s := range specialties {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := enc.Encode(s); err != nil {
			b.WriteString(strconv.Quote(s))
			continue
		}
		// Encode terminates every value with a newline.
		b.Truncate(b.Len() - 1)
	}
	b.WriteByte(']')
	return b.String()
}
