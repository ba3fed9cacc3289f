package rest

import (
	"net/http"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Routine  *RoutineHandler
	DailyLog *DailyLogHandler
	Feedback *FeedbackHandler
	Health   *HealthHandler
}

// NewRouter builds the API route table. Authentication is applied by
// middleware around the returned handler; individual services reject
// anonymous requests where an identity is required.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)
	mux.HandleFunc("PUT /api/auth/me", h.Auth.UpdateMe)

	mux.HandleFunc("GET /api/routines", h.Routine.List)
	mux.HandleFunc("POST /api/routines", h.Routine.Create)
	mux.HandleFunc("POST /api/routines/generate", h.Routine.Generate)
	mux.HandleFunc("GET /api/routines/{id}", h.Routine.Get)
	mux.HandleFunc("PUT /api/routines/{id}", h.Routine.Update)
	mux.HandleFunc("DELETE /api/routines/{id}", h.Routine.Delete)

	mux.HandleFunc("GET /api/daily-logs", h.DailyLog.List)
	mux.HandleFunc("POST /api/daily-logs", h.DailyLog.Create)
	mux.HandleFunc("GET /api/daily-logs/date/{date}", h.DailyLog.GetByDate)
	mux.HandleFunc("PUT /api/daily-logs/{id}", h.DailyLog.Update)
	mux.HandleFunc("POST /api/daily-logs/{id}/routine-entry", h.DailyLog.AddEntry)
	mux.HandleFunc("PUT /api/daily-logs/routine-entry/{id}", h.DailyLog.UpdateEntry)

	mux.HandleFunc("GET /api/feedback", h.Feedback.List)
	mux.HandleFunc("GET /api/feedback/daily/{logID}", h.Feedback.GetByLog)
	mux.HandleFunc("POST /api/feedback/generate/{logID}", h.Feedback.Generate)

	return mux
}
