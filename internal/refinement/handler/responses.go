package handler

import (
	"time"

	"coretypes/internal/refinement"
	"coretypes/pkg/domain"
)

// ListResponse is the HTTP response for GET /refinements.
type ListResponse struct {
	Refinements []DescriptorResponse `json:"refinements"`
}

type DescriptorResponse struct {
	Name      string   `json:"name"`
	InputKind string   `json:"input_kind"`
	Implies   []string `json:"implies"`
}

// CheckResponse is the HTTP response for a single refinement check.
type CheckResponse struct {
	Refinement string `json:"refinement"`
	Valid      bool   `json:"valid"`
	Value      any    `json:"value,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// BatchResponse is the HTTP response for POST /refinements/{name}/check-batch.
type BatchResponse struct {
	Refinement string          `json:"refinement"`
	ValidCount int             `json:"valid_count"`
	Results    []CheckResponse `json:"results"`
}

type UUIDResponse struct {
	UUID domain.UUID `json:"uuid"`
}

type NowResponse struct {
	Now time.Time `json:"now"`
}

type LocalDateResponse struct {
	Date    string    `json:"date"`
	Instant time.Time `json:"instant"`
}

type DurationResponse struct {
	Milliseconds int64  `json:"milliseconds"`
	Duration     string `json:"duration"`
}

// FromDescriptors converts catalog descriptors to an HTTP response.
func FromDescriptors(ds []refinement.Descriptor) *ListResponse {
	resp := &ListResponse{Refinements: make([]DescriptorResponse, 0, len(ds))}
	for _, d := range ds {
		implies := d.Implies
		if implies == nil {
			implies = []string{}
		}
		resp.Refinements = append(resp.Refinements, DescriptorResponse{
			Name:      d.Name,
			InputKind: string(d.Kind),
			Implies:   implies,
		})
	}
	return resp
}

// FromResult converts a domain CheckResult to an HTTP response.
func FromResult(r *refinement.CheckResult) *CheckResponse {
	return &CheckResponse{
		Refinement: r.Refinement,
		Valid:      r.Valid,
		Value:      r.Value,
		Reason:     r.Reason,
	}
}

func FromResults(name string, results []refinement.CheckResult) *BatchResponse {
	resp := &BatchResponse{Refinement: name, Results: make([]CheckResponse, 0, len(results))}
	for i := range results {
		if results[i].Valid {
			resp.ValidCount++
		}
		resp.Results = append(resp.Results, *FromResult(&results[i]))
	}
	return resp
}

func FromLocalDate(d domain.LocalDate) *LocalDateResponse {
	return &LocalDateResponse{
		Date:    d.Format(time.DateOnly),
		Instant: d.Time,
	}
}

func FromDuration(d domain.Duration) *DurationResponse {
	return &DurationResponse{
		Milliseconds: d.Milliseconds(),
		Duration:     d.Std().String(),
	}
}
