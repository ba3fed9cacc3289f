package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
	"github.com/daymentor/mentor-backend/internal/service/dailylog"
)

// dailyLogService defines the minimal interface needed by DailyLogHandler.
type dailyLogService interface {
	CreateLog(ctx context.Context, input dailylog.CreateLogInput) (*domain.DailyLog, error)
	ListLogs(ctx context.Context) ([]domain.DailyLogWithCount, error)
	GetByDate(ctx context.Context, date string) (*dailylog.LogDetail, error)
	UpdateLog(ctx context.Context, id uuid.UUID, input dailylog.UpdateLogInput) (*domain.DailyLog, error)
	AddEntry(ctx context.Context, logID uuid.UUID, input dailylog.CreateEntryInput) (*domain.RoutineEntry, error)
	UpdateEntry(ctx context.Context, id uuid.UUID, input dailylog.UpdateEntryInput) (*domain.RoutineEntry, error)
}

// DailyLogHandler serves daily log and routine entry endpoints.
type DailyLogHandler struct {
	svc dailyLogService
	log *slog.Logger
}

// NewDailyLogHandler creates a DailyLogHandler.
func NewDailyLogHandler(svc dailyLogService, logger *slog.Logger) *DailyLogHandler {
	return &DailyLogHandler{svc: svc, log: logger.With("handler", "dailylog")}
}

type createLogRequest struct {
	LogDate     string `json:"log_date"`
	Mood        *int   `json:"mood"`
	EnergyLevel *int   `json:"energy_level"`
	StressLevel *int   `json:"stress_level"`
	Notes       string `json:"notes"`
	Highlights  string `json:"highlights"`
	Challenges  string `json:"challenges"`
}

type updateLogRequest struct {
	Mood        *int    `json:"mood"`
	EnergyLevel *int    `json:"energy_level"`
	StressLevel *int    `json:"stress_level"`
	Notes       *string `json:"notes"`
	Highlights  *string `json:"highlights"`
	Challenges  *string `json:"challenges"`
}

type createEntryRequest struct {
	RoutineID            string `json:"routine_id"`
	Status               string `json:"status"`
	CompletionPercentage *int   `json:"completion_percentage"`
	ActualDuration       *int   `json:"actual_duration"`
	DifficultyFelt       *int   `json:"difficulty_felt"`
	Notes                string `json:"notes"`
}

type updateEntryRequest struct {
	Status               *string `json:"status"`
	CompletionPercentage *int    `json:"completion_percentage"`
	ActualDuration       *int    `json:"actual_duration"`
	DifficultyFelt       *int    `json:"difficulty_felt"`
	Notes                *string `json:"notes"`
}

type logResponse struct {
	ID          string    `json:"id"`
	LogDate     string    `json:"log_date"`
	Mood        *int      `json:"mood"`
	EnergyLevel *int      `json:"energy_level"`
	StressLevel *int      `json:"stress_level"`
	Notes       string    `json:"notes"`
	Highlights  string    `json:"highlights"`
	Challenges  string    `json:"challenges"`
	CreatedAt   time.Time `json:"created_at"`
}

type logListItem struct {
	logResponse
	EntryCount int `json:"routine_entries_count"`
}

type logDetailResponse struct {
	logResponse
	Entries []entryResponse `json:"routine_entries"`
}

type entryResponse struct {
	ID                   string `json:"id"`
	RoutineID            string `json:"routine_id"`
	RoutineName          string `json:"routine_name,omitempty"`
	Status               string `json:"status"`
	CompletionPercentage int    `json:"completion_percentage"`
	ActualDuration       *int   `json:"actual_duration"`
	DifficultyFelt       *int   `json:"difficulty_felt"`
	Notes                string `json:"notes"`
}

// List handles GET /api/daily-logs.
func (h *DailyLogHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.ListLogs(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]logListItem, len(logs))
	for i, l := range logs {
		items[i] = logListItem{
			logResponse: toLogResponse(&l.DailyLog),
			EntryCount:  l.EntryCount,
		}
	}
	writeJSON(w, http.StatusOK, map[string][]logListItem{"logs": items})
}

// Create handles POST /api/daily-logs.
func (h *DailyLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := h.svc.CreateLog(r.Context(), dailylog.CreateLogInput{
		LogDate:     req.LogDate,
		Mood:        req.Mood,
		EnergyLevel: req.EnergyLevel,
		StressLevel: req.StressLevel,
		Notes:       req.Notes,
		Highlights:  req.Highlights,
		Challenges:  req.Challenges,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLogResponse(l))
}

// GetByDate handles GET /api/daily-logs/date/{date}.
func (h *DailyLogHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.GetByDate(r.Context(), r.PathValue("date"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries := make([]entryResponse, len(detail.Entries))
	for i, e := range detail.Entries {
		entries[i] = toEntryResponse(&e.Entry, e.Routine.Name)
	}

	writeJSON(w, http.StatusOK, map[string]logDetailResponse{
		"log": {
			logResponse: toLogResponse(&detail.Log),
			Entries:     entries,
		},
	})
}

// Update handles PUT /api/daily-logs/{id}.
func (h *DailyLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid log id")
		return
	}

	var req updateLogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := h.svc.UpdateLog(r.Context(), id, dailylog.UpdateLogInput{
		Mood:        req.Mood,
		EnergyLevel: req.EnergyLevel,
		StressLevel: req.StressLevel,
		Notes:       req.Notes,
		Highlights:  req.Highlights,
		Challenges:  req.Challenges,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponse(l))
}

// AddEntry handles POST /api/daily-logs/{id}/routine-entry.
func (h *DailyLogHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	logID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid log id")
		return
	}

	var req createEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	routineID, err := uuid.Parse(req.RoutineID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid routine_id")
		return
	}

	e, err := h.svc.AddEntry(r.Context(), logID, dailylog.CreateEntryInput{
		RoutineID:            routineID,
		Status:               req.Status,
		CompletionPercentage: req.CompletionPercentage,
		ActualDuration:       req.ActualDuration,
		DifficultyFelt:       req.DifficultyFelt,
		Notes:                req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(e, ""))
}

// UpdateEntry handles PUT /api/daily-logs/routine-entry/{id}.
func (h *DailyLogHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	var req updateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.svc.UpdateEntry(r.Context(), id, dailylog.UpdateEntryInput{
		Status:               req.Status,
		CompletionPercentage: req.CompletionPercentage,
		ActualDuration:       req.ActualDuration,
		DifficultyFelt:       req.DifficultyFelt,
		Notes:                req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(e, ""))
}

func toLogResponse(l *domain.DailyLog) logResponse {
	return logResponse{
		ID:          l.ID.String(),
		LogDate:     l.LogDate.Format("2006-01-02"),
		Mood:        l.Mood,
		EnergyLevel: l.EnergyLevel,
		StressLevel: l.StressLevel,
		Notes:       l.Notes,
		Highlights:  l.Highlights,
		Challenges:  l.Challenges,
		CreatedAt:   l.CreatedAt,
	}
}

func toEntryResponse(e *domain.RoutineEntry, routineName string) entryResponse {
	return entryResponse{
		ID:                   e.ID.String(),
		RoutineID:            e.RoutineID.String(),
		RoutineName:          routineName,
		Status:               e.Status.String(),
		CompletionPercentage: e.CompletionPercentage,
		ActualDuration:       e.ActualDuration,
		DifficultyFelt:       e.DifficultyFelt,
		Notes:                e.Notes,
	}
}
