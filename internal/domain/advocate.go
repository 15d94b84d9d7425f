package domain

import "time"

// Advocate is a directory record. Rows are owned by the store; the domain
// layer only filters and pages them.
type Advocate struct {
	ID                int64
	FirstName         string
	LastName          string
	City              string
	Degree            string
	Specialties       []string
	YearsOfExperience int
	PhoneNumber       int64
	CreatedAt         time.Time
}

// NormalizeSpecialties returns a non-nil copy of the specialties list.
func (a *Advocate) NormalizeSpecialties() []string {
	if a.Specialties == nil {
		return []string{}
	}
	out := make([]string, len(a.Specialties))
	copy(out, a.Specialties)
	return out
}
