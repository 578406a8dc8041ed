package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"coretypes/internal/refinement"
	"coretypes/pkg/domain"
	"coretypes/pkg/platform/httputil"
	"coretypes/pkg/requestcontext"
)

// Service defines the interface for refinement operations.
type Service interface {
	Describe() []refinement.Descriptor
	Check(ctx context.Context, name string, value any) (*refinement.CheckResult, error)
	CheckAll(ctx context.Context, name string, values []any) ([]refinement.CheckResult, error)
	NewUUID(ctx context.Context) (domain.UUID, error)
	Now(ctx context.Context) domain.Instant
	NewLocalDate(ctx context.Context, year, month, day any) (domain.LocalDate, error)
	DurationOf(ctx context.Context, amount any, unit string) (domain.Duration, error)
}

// Handler wires refinement endpoints to the refinement service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a refinement handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts refinement endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/refinements", h.HandleList)
	r.Post("/refinements/{name}/check", h.HandleCheck)
	r.Post("/refinements/{name}/check-batch", h.HandleCheckBatch)
	r.Get("/uuids/new", h.HandleNewUUID)
	r.Get("/time/now", h.HandleNow)
	r.Post("/local-dates", h.HandleLocalDate)
	r.Post("/durations", h.HandleDuration)
}

// HandleList handles GET /refinements requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromDescriptors(h.service.Describe()))
}

// HandleCheck handles POST /refinements/{name}/check requests.
// A value that fails the refinement is still a 200 with valid=false.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	name := chi.URLParam(r, "name")

	req, ok := httputil.DecodeAndPrepare[CheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Check(ctx, name, req.ParsedValue())
	if err != nil {
		h.logger.WarnContext(ctx, "refinement check failed",
			"request_id", requestID,
			"refinement", name,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleCheckBatch handles POST /refinements/{name}/check-batch requests.
func (h *Handler) HandleCheckBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	name := chi.URLParam(r, "name")
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CheckBatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	results, err := h.service.CheckAll(ctx, name, req.Values)
	if err != nil {
		h.logger.WarnContext(ctx, "refinement batch check failed",
			"request_id", requestID,
			"refinement", name,
			"count", len(req.Values),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := FromResults(name, results)
	h.logger.InfoContext(ctx, "refinement batch checked",
		"request_id", requestID,
		"refinement", name,
		"count", len(results),
		"valid", resp.ValidCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleNewUUID handles GET /uuids/new requests.
func (h *Handler) HandleNewUUID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := h.service.NewUUID(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &UUIDResponse{UUID: id})
}

// HandleNow handles GET /time/now requests.
func (h *Handler) HandleNow(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, &NowResponse{Now: h.service.Now(r.Context()).Time})
}

// HandleLocalDate handles POST /local-dates requests.
func (h *Handler) HandleLocalDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[LocalDateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	date, err := h.service.NewLocalDate(ctx, req.Year, req.Month, req.Day)
	if err != nil {
		h.logger.WarnContext(ctx, "local date rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, FromLocalDate(date))
}

// HandleDuration handles POST /durations requests.
func (h *Handler) HandleDuration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[DurationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	d, err := h.service.DurationOf(ctx, req.Amount, req.Unit)
	if err != nil {
		h.logger.WarnContext(ctx, "duration rejected",
			"request_id", requestID,
			"unit", req.Unit,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, FromDuration(d))
}
