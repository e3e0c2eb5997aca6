package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrms-app/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-app/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrms-app/hrms-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	CreateProfile(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// CreateProfile implements EmployeeHandler.
func (h *EmployeeHandlerImpl) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.CreateProfile(r.Context(), userID, createReq)
	if err != nil {
		slog.Error("CreateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee profile created", "employee_id", created.ID, "user_id", userID)
	response.Created(w, "Employee profile created successfully", created)
}

// Me implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.employeeService.MyProfile(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}
