package http

import (
	"net/http"

	"github.com/shiftwise/timecard-backend-go/internal/domain/employee"
	"github.com/shiftwise/timecard-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeHandler(employeeRepo employee.Repository) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeRepo: employeeRepo}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]employee.Response, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewResponse(e))
	}

	response.Success(w, responses)
}
