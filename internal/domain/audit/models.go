package audit

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Record is one entry in the operation audit trail.
type Record struct {
	ID              string    `validate:"required,uuid"`
	SessionID       string    `validate:"required,uuid"`
	Operation       string    `validate:"required,oneof=generate sign verify import export"`
	DocumentName    string    `validate:"omitempty,max=255"`
	DocumentDigest  string    `validate:"omitempty,len=64,hexadecimal"`
	Algorithm       string    `validate:"required,oneof=RSA"`
	KeySize         int       `validate:"omitempty,oneof=2048 3072 4096"`
	Result          bool      ``
	DateTimeCreated time.Time `validate:"required"`
}

// Validate checks that the record fields are consistent before persisting.
func (r *Record) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// RecordQuery filters and paginates audit trail listings.
type RecordQuery struct {
	Operation       string    `validate:"omitempty,oneof=generate sign verify import export"`
	SessionID       string    `validate:"omitempty,uuid"`
	DateTimeCreated time.Time ``

	SortBy    string `validate:"omitempty,oneof=operation date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
}

// NewRecordQuery creates a RecordQuery with default pagination.
func NewRecordQuery() *RecordQuery {
	return &RecordQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate checks the query parameters.
func (q *RecordQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
