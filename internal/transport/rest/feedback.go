package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
)

// feedbackService defines the minimal interface needed by FeedbackHandler.
type feedbackService interface {
	Generate(ctx context.Context, logID uuid.UUID) (*domain.Feedback, error)
	GetByLog(ctx context.Context, logID uuid.UUID) (*domain.Feedback, error)
	List(ctx context.Context) ([]domain.FeedbackWithDate, error)
}

// FeedbackHandler serves mentor feedback endpoints.
type FeedbackHandler struct {
	svc feedbackService
	log *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: logger.With("handler", "feedback")}
}

type feedbackResponse struct {
	ID             string    `json:"id"`
	DailyLogID     string    `json:"daily_log_id"`
	LogDate        string    `json:"log_date,omitempty"`
	FeedbackText   string    `json:"feedback_text"`
	ComplianceRate float64   `json:"compliance_rate"`
	TopPerformer   *string   `json:"top_performer"`
	BiggestMiss    *string   `json:"biggest_miss"`
	Suggestions    []string  `json:"suggestions"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// List handles GET /api/feedback.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]feedbackResponse, len(items))
	for i, f := range items {
		resp := toFeedbackResponse(&f.Feedback)
		resp.LogDate = f.LogDate.Format("2006-01-02")
		out[i] = resp
	}
	writeJSON(w, http.StatusOK, map[string][]feedbackResponse{"feedback": out})
}

// GetByLog handles GET /api/feedback/daily/{logID}. Reading feedback marks
// it read.
func (h *FeedbackHandler) GetByLog(w http.ResponseWriter, r *http.Request) {
	logID, err := pathUUID(r, "logID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid log id")
		return
	}

	f, err := h.svc.GetByLog(r.Context(), logID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFeedbackResponse(f))
}

// Generate handles POST /api/feedback/generate/{logID}. Repeated calls for
// the same log return the existing record.
func (h *FeedbackHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logID, err := pathUUID(r, "logID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid log id")
		return
	}

	f, err := h.svc.Generate(r.Context(), logID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFeedbackResponse(f))
}

func toFeedbackResponse(f *domain.Feedback) feedbackResponse {
	var suggestions []string
	if f.Suggestions != "" {
		suggestions = strings.Split(f.Suggestions, "\n")
	}
	return feedbackResponse{
		ID:             f.ID.String(),
		DailyLogID:     f.DailyLogID.String(),
		FeedbackText:   f.FeedbackText,
		ComplianceRate: f.ComplianceRate,
		TopPerformer:   f.TopPerformer,
		BiggestMiss:    f.BiggestMiss,
		Suggestions:    suggestions,
		IsRead:         f.IsRead,
		CreatedAt:      f.CreatedAt,
	}
}
