package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
	"github.com/daymentor/mentor-backend/internal/service/routine"
)

// routineService defines the minimal interface needed by RoutineHandler.
type routineService interface {
	Create(ctx context.Context, input routine.CreateInput) (*domain.Routine, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Routine, error)
	List(ctx context.Context) ([]domain.Routine, error)
	Update(ctx context.Context, id uuid.UUID, input routine.UpdateInput) (*domain.Routine, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GenerateFromGoals(ctx context.Context, input routine.GenerateInput) (*routine.GenerateResult, error)
}

// RoutineHandler serves routine CRUD and generation endpoints.
type RoutineHandler struct {
	svc routineService
	log *slog.Logger
}

// NewRoutineHandler creates a RoutineHandler.
func NewRoutineHandler(svc routineService, logger *slog.Logger) *RoutineHandler {
	return &RoutineHandler{svc: svc, log: logger.With("handler", "routine")}
}

type createRoutineRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Frequency      string  `json:"frequency"`
	TargetDuration *int    `json:"target_duration"`
	ScheduledTime  *string `json:"scheduled_time"`
	Priority       *int    `json:"priority"`
	Difficulty     *int    `json:"difficulty"`
}

type updateRoutineRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Category       *string `json:"category"`
	Frequency      *string `json:"frequency"`
	TargetDuration *int    `json:"target_duration"`
	ScheduledTime  *string `json:"scheduled_time"`
	Priority       *int    `json:"priority"`
	Difficulty     *int    `json:"difficulty"`
	IsActive       *bool   `json:"is_active"`
}

type generateRoutinesRequest struct {
	Goals            string `json:"goals"`
	Challenges       string `json:"challenges"`
	UnavailableTimes string `json:"unavailable_times"`
	DesiredRoutines  string `json:"desired_routines"`
}

type routineResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Frequency      string    `json:"frequency"`
	TargetDuration int       `json:"target_duration"`
	ScheduledTime  *string   `json:"scheduled_time,omitempty"`
	Priority       int       `json:"priority"`
	Difficulty     int       `json:"difficulty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type generateRoutinesResponse struct {
	Routines []routineResponse `json:"routines"`
	Summary  string            `json:"summary,omitempty"`
	Source   string            `json:"source"`
}

// List handles GET /api/routines.
func (h *RoutineHandler) List(w http.ResponseWriter, r *http.Request) {
	routines, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]routineResponse{
		"routines": toRoutineResponses(routines),
	})
}

// Create handles POST /api/routines.
func (h *RoutineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRoutineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rt, err := h.svc.Create(r.Context(), routine.CreateInput{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Frequency:      req.Frequency,
		TargetDuration: req.TargetDuration,
		ScheduledTime:  req.ScheduledTime,
		Priority:       req.Priority,
		Difficulty:     req.Difficulty,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRoutineResponse(rt))
}

// Get handles GET /api/routines/{id}.
func (h *RoutineHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid routine id")
		return
	}

	rt, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRoutineResponse(rt))
}

// Update handles PUT /api/routines/{id}.
func (h *RoutineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid routine id")
		return
	}

	var req updateRoutineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rt, err := h.svc.Update(r.Context(), id, routine.UpdateInput{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Frequency:      req.Frequency,
		TargetDuration: req.TargetDuration,
		ScheduledTime:  req.ScheduledTime,
		Priority:       req.Priority,
		Difficulty:     req.Difficulty,
		IsActive:       req.IsActive,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRoutineResponse(rt))
}

// Delete handles DELETE /api/routines/{id}. Routines are deactivated, not
// removed, so logged history stays intact.
func (h *RoutineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid routine id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// Generate handles POST /api/routines/generate.
func (h *RoutineHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRoutinesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.GenerateFromGoals(r.Context(), routine.GenerateInput{
		Goals:            req.Goals,
		Challenges:       req.Challenges,
		UnavailableTimes: req.UnavailableTimes,
		DesiredRoutines:  req.DesiredRoutines,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, generateRoutinesResponse{
		Routines: toRoutineResponses(result.Routines),
		Summary:  result.Summary,
		Source:   result.Source,
	})
}

func toRoutineResponse(rt *domain.Routine) routineResponse {
	return routineResponse{
		ID:             rt.ID.String(),
		Name:           rt.Name,
		Description:    rt.Description,
		Category:       rt.Category,
		Frequency:      rt.Frequency,
		TargetDuration: rt.TargetDuration,
		ScheduledTime:  rt.ScheduledTime,
		Priority:       rt.Priority,
		Difficulty:     rt.Difficulty,
		IsActive:       rt.IsActive,
		CreatedAt:      rt.CreatedAt,
	}
}

func toRoutineResponses(routines []domain.Routine) []routineResponse {
	out := make([]routineResponse, len(routines))
	for i := range routines {
		out[i] = toRoutineResponse(&routines[i])
	}
	return out
}
