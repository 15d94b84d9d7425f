package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/advocates-backend/internal/domain"
	"github.com/heartmarshall/advocates-backend/internal/service/advocate"
	"github.com/heartmarshall/advocates-backend/pkg/ctxutil"
)

// advocateService defines the minimal interface needed by AdvocateHandler.
type advocateService interface {
	List(ctx context.Context, input advocate.ListInput) (*advocate.PageResult, error)
	Search(ctx context.Context, input advocate.SearchInput) (*advocate.SearchResult, error)
}

// AdvocateHandler serves the advocate directory endpoints.
type AdvocateHandler struct {
	svc advocateService
	log *slog.Logger
	now func() time.Time
}

// NewAdvocateHandler creates an AdvocateHandler.
func NewAdvocateHandler(svc advocateService, logger *slog.Logger) *AdvocateHandler {
	return &AdvocateHandler{svc: svc, log: logger.With("handler", "advocates"), now: time.Now}
}

type advocateResponse struct {
	ID                int64    `json:"id"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	City              string   `json:"city"`
	Degree            string   `json:"degree"`
	Specialties       []string `json:"specialties"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	PhoneNumber       int64    `json:"phoneNumber"`
	CreatedAt         string   `json:"createdAt"`
}

type paginationResponse struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type listResponse struct {
	Data       []advocateResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type searchResponse struct {
	Data       []advocateResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
	Query      *string            `json:"query"`
}

// List handles GET /advocates.
func (h *AdvocateHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	input := advocate.ListInput{
		Page:  queryParam(params, "page"),
		Limit: queryParam(params, "limit"),
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err, "Failed to fetch advocates")
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Data:       toAdvocateResponses(result.Advocates),
		Pagination: toPaginationResponse(result.Pagination),
	})
}

// Search handles GET /advocates/search.
func (h *AdvocateHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	input := advocate.SearchInput{
		Query: queryParam(params, "q"),
		Page:  queryParam(params, "page"),
		Limit: queryParam(params, "limit"),
	}

	result, err := h.svc.Search(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err, "Failed to search advocates")
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Data:       toAdvocateResponses(result.Advocates),
		Pagination: toPaginationResponse(result.Pagination),
		Query:      result.Query,
	})
}

func (h *AdvocateHandler) handleError(w http.ResponseWriter, r *http.Request, err error, failMessage string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		fe := verr.First()
		writeClientError(w, http.StatusBadRequest, fe.Message, fe.Code)
	case errors.Is(err, domain.ErrValidation):
		writeClientError(w, http.StatusBadRequest, "Invalid request", "VALIDATION_ERROR")
	default:
		now := h.now()
		level := slog.LevelError
		if errors.Is(err, context.Canceled) {
			level = slog.LevelWarn
		}
		h.log.Log(r.Context(), level, "internal error",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.Time("timestamp", now),
		)
		writeServerError(w, failMessage, now)
	}
}

// queryParam returns nil when the parameter is absent so validation can tell
// "missing" from "empty".
func queryParam(params url.Values, key string) *string {
	if !params.Has(key) {
		return nil
	}
	v := params.Get(key)
	return &v
}

func toAdvocateResponses(list []domain.Advocate) []advocateResponse {
	out := make([]advocateResponse, 0, len(list))
	for i := range list {
		a := &list[i]
		out = append(out, advocateResponse{
			ID:                a.ID,
			FirstName:         a.FirstName,
			LastName:          a.LastName,
			City:              a.City,
			Degree:            a.Degree,
			Specialties:       a.NormalizeSpecialties(),
			YearsOfExperience: a.YearsOfExperience,
			PhoneNumber:       a.PhoneNumber,
			CreatedAt:         a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

func toPaginationResponse(p domain.Pagination) paginationResponse {
	return paginationResponse{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		HasNext:    p.HasNext,
		HasPrev:    p.HasPrev,
	}
}
