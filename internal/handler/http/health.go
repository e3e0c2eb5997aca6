package http

import (
	"log/slog"
	"net/http"

	"github.com/hrms-app/hrms-backend-go/internal/handler/http/response"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/database"
)

type HealthHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

type HealthHandlerImpl struct {
	db *database.DB
}

func NewHealthHandler(db *database.DB) HealthHandler {
	return &HealthHandlerImpl{db: db}
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Check implements HealthHandler. A failed store ping reports degraded state
// with a 503 instead of failing hard.
func (h *HealthHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		slog.Error("Health check failed", "error", err)
		response.ServiceUnavailable(w, healthStatus{
			Status:   "unhealthy",
			Database: "disconnected",
		})
		return
	}

	response.Success(w, healthStatus{
		Status:   "healthy",
		Database: "connected",
	})
}
