package handler

import (
	"encoding/json"
	"strings"

	"coretypes/pkg/domain"
	dErrors "coretypes/pkg/domain-errors"
)

// CheckRequest is the HTTP request body for POST /refinements/{name}/check.
// Value is kept raw so that an explicit null can be told apart from a
// missing field.
type CheckRequest struct {
	Value json.RawMessage `json:"value"`

	// Parsed values (populated by Validate)
	parsedValue any
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Value) == 0 {
		return dErrors.New(dErrors.CodeValidation, "value is required")
	}
	if err := json.Unmarshal(r.Value, &r.parsedValue); err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "invalid json payload")
	}
	return nil
}

// ParsedValue returns the decoded value. JSON numbers decode to float64.
func (r *CheckRequest) ParsedValue() any {
	return r.parsedValue
}

// CheckBatchRequest is the HTTP request body for POST /refinements/{name}/check-batch.
type CheckBatchRequest struct {
	Values []any `json:"values"`
}

func (r *CheckBatchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Values == nil {
		return dErrors.New(dErrors.CodeValidation, "values is required")
	}
	return nil
}

// LocalDateRequest is the HTTP request body for POST /local-dates.
// Fields stay untyped so that the service reports refinement failures
// instead of the decoder reporting type mismatches.
type LocalDateRequest struct {
	Year  any `json:"year"`
	Month any `json:"month"`
	Day   any `json:"day"`
}

func (r *LocalDateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	switch {
	case r.Year == nil:
		return dErrors.New(dErrors.CodeValidation, "year is required")
	case r.Month == nil:
		return dErrors.New(dErrors.CodeValidation, "month is required")
	case r.Day == nil:
		return dErrors.New(dErrors.CodeValidation, "day is required")
	}
	return nil
}

// DurationRequest is the HTTP request body for POST /durations.
type DurationRequest struct {
	Amount any    `json:"amount"`
	Unit   string `json:"unit"`
}

func (r *DurationRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Amount == nil {
		return dErrors.New(dErrors.CodeValidation, "amount is required")
	}

	r.Unit = strings.ToLower(strings.TrimSpace(r.Unit))
	if _, err := domain.ParseTimeUnit(r.Unit); err != nil {
		return err
	}
	return nil
}
