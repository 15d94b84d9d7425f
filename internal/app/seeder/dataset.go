package seeder

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"

	"github.com/heartmarshall/advocates-backend/internal/domain"
)

//go:embed data/advocates.json
var embeddedDataset []byte

// Record is one advocate as it appears in a dataset file.
type Record struct {
	FirstName         string   `json:"firstName"         validate:"required,max=100"`
	LastName          string   `json:"lastName"          validate:"required,max=100"`
	City              string   `json:"city"              validate:"required,max=100"`
	Degree            string   `json:"degree"            validate:"required,max=20"`
	Specialties       []string `json:"specialties"       validate:"omitempty,dive,required,max=200"`
	YearsOfExperience int      `json:"yearsOfExperience" validate:"gte=0,lte=80"`
	PhoneNumber       int64    `json:"phoneNumber"       validate:"required,gt=0"`
}

// RecordError reports why the record at Index was rejected.
type RecordError struct {
	Index int
	Err   error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e RecordError) Unwrap() error { return e.Err }

// LoadDataset reads records from path, or the embedded dataset when path is empty.
func LoadDataset(path string) ([]Record, error) {
	if path == "" {
		return ParseDataset(bytes.NewReader(embeddedDataset))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return ParseDataset(f)
}

// ParseDataset decodes a JSON array of records. Unknown fields are rejected.
func ParseDataset(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return records, nil
}

// Validator checks records before they are written.
type Validator struct {
	validate *validator.Validate
	region   string
}

// NewValidator creates a Validator checking phone numbers against region.
func NewValidator(region string) *Validator {
	if region == "" {
		region = DefaultPhoneRegion
	}
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		region:   strings.ToUpper(region),
	}
}

// ToDomain validates every record and converts the valid ones. All failures
// are returned, one RecordError per rejected record.
func (v *Validator) ToDomain(records []Record) ([]domain.Advocate, []error) {
	out := make([]domain.Advocate, 0, len(records))
	var errs []error

	for i, rec := range records {
		rec = trimRecord(rec)
		if err := v.validate.Struct(rec); err != nil {
			errs = append(errs, RecordError{Index: i, Err: err})
			continue
		}
		if err := v.checkPhone(rec.PhoneNumber); err != nil {
			errs = append(errs, RecordError{Index: i, Err: err})
			continue
		}
		out = append(out, domain.Advocate{
			FirstName:         rec.FirstName,
			LastName:          rec.LastName,
			City:              rec.City,
			Degree:            rec.Degree,
			Specialties:       rec.Specialties,
			YearsOfExperience: rec.YearsOfExperience,
			PhoneNumber:       rec.PhoneNumber,
		})
	}

	return out, errs
}

func (v *Validator) checkPhone(n int64) error {
	raw := strconv.FormatInt(n, 10)
	num, err := phonenumbers.Parse(raw, v.region)
	if err != nil {
		return fmt.Errorf("phone number %s: %w", raw, err)
	}
	if !phonenumbers.IsPossibleNumber(num) {
		return fmt.Errorf("phone number %s: not a possible %s number", raw, v.region)
	}
	return nil
}

func trimRecord(r Record) Record {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.City = strings.TrimSpace(r.City)
	r.Degree = strings.TrimSpace(r.Degree)
	specialties := make([]string, len(r.Specialties))
	for i, s := range r.Specialties {
		specialties[i] = strings.TrimSpace(s)
	}
	r.Specialties = specialties
	return r
}
