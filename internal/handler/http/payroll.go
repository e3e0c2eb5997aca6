package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-app/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-app/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrms-app/hrms-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var generateReq payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&generateReq); err != nil {
		slog.Error("Payroll generate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.payrollService.Generate(r.Context(), generateReq)
	if err != nil {
		slog.Error("Payroll generate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll record created", created)
}

// Me implements PayrollHandler.
func (h *PayrollHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.payrollService.MyPayrolls(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// MarkPaid implements PayrollHandler.
func (h *PayrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	payrollID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid payroll id", nil)
		return
	}

	updated, err := h.payrollService.MarkPaid(r.Context(), payrollID)
	if err != nil {
		slog.Error("Payroll mark paid service error", "error", err, "payroll_id", payrollID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll marked as paid", updated)
}
