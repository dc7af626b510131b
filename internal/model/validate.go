package model

import "fmt"

// ValidationError reports a malformed record field. It is raised before
// any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks a record's internal consistency.
func (r BookRecord) Validate() error {
	if r.ISBN == "" {
		return &ValidationError{Field: "isbn", Reason: "must not be empty"}
	}
	if r.TotalPages < 0 {
		return &ValidationError{Field: "totalPages", Reason: "must not be negative"}
	}
	if r.CurrentPage < 0 {
		return &ValidationError{Field: "currentPage", Reason: "must not be negative"}
	}
	if r.CurrentPage > r.TotalPages {
		return &ValidationError{
			Field:  "currentPage",
			Reason: fmt.Sprintf("%d exceeds total pages %d", r.CurrentPage, r.TotalPages),
		}
	}
	if r.Rating < 0 || r.Rating > 5 {
		return &ValidationError{Field: "rating", Reason: "must be between 0 and 5"}
	}
	if !r.Status.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", string(r.Status))}
	}
	return nil
}
