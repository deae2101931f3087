package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/officeflow/officeflow-backend-go/internal/handler/http/response"
	payrollService "github.com/officeflow/officeflow-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService *payrollService.Service
}

func NewPayrollHandler(svc *payrollService.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: svc}
}

// Summary implements PayrollHandler. Admin only; the service enforces
// it.
func (h *PayrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	summary, err := h.payrollService.Summary(sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Payslip implements PayrollHandler. The month query parameter defaults
// to the current month when absent.
func (h *PayrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	payslip, err := h.payrollService.PayslipFor(sess, employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslip)
}
