package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftwise/timecard-backend-go/internal/domain/timecard"
	"github.com/shiftwise/timecard-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/timecard-backend-go/internal/handler/http/response"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/validator"
)

type TimecardHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetMyEntries(w http.ResponseWriter, r *http.Request)
	GetEntry(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListEmployeeEntries(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type TimecardHandlerImpl struct {
	timecardService timecard.Service
}

func NewTimecardHandler(timecardService timecard.Service) TimecardHandler {
	return &TimecardHandlerImpl{timecardService: timecardService}
}

// Submit implements TimecardHandler.
func (h *TimecardHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)
	if employeeID == "" {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var req timecard.SubmitEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.timecardService.Submit(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time card entry submitted", timecard.NewEntryResponse(entry))
}

// GetMyEntries implements TimecardHandler.
func (h *TimecardHandlerImpl) GetMyEntries(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)
	if employeeID == "" {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	start, ok := validator.IsValidDate(r.URL.Query().Get("start_date"))
	if !ok {
		response.BadRequest(w, "start_date must be a date in YYYY-MM-DD format", nil)
		return
	}
	end, ok := validator.IsValidDate(r.URL.Query().Get("end_date"))
	if !ok {
		response.BadRequest(w, "end_date must be a date in YYYY-MM-DD format", nil)
		return
	}

	entries, err := h.timecardService.ListByEmployeeAndPeriod(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timecard.NewEntryResponses(entries))
}

// GetEntry implements TimecardHandler.
func (h *TimecardHandlerImpl) GetEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	entry, err := h.timecardService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Non-admins only see their own entries; respond as if the entry
	// does not exist so ids cannot be probed.
	if entry.EmployeeID != middleware.EmployeeID(r) && !middleware.IsAdmin(r) {
		response.NotFound(w, "Time card entry not found")
		return
	}

	response.Success(w, timecard.NewEntryResponse(entry))
}

// ListPending implements TimecardHandler.
func (h *TimecardHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	entries, err := h.timecardService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timecard.NewEntryResponses(entries))
}

// ListEmployeeEntries implements TimecardHandler. Admin view of one
// employee's entries over a period, optionally filtered by status.
func (h *TimecardHandlerImpl) ListEmployeeEntries(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	start, ok := validator.IsValidDate(r.URL.Query().Get("start_date"))
	if !ok {
		response.BadRequest(w, "start_date must be a date in YYYY-MM-DD format", nil)
		return
	}
	end, ok := validator.IsValidDate(r.URL.Query().Get("end_date"))
	if !ok {
		response.BadRequest(w, "end_date must be a date in YYYY-MM-DD format", nil)
		return
	}

	status := timecard.EntryStatus(r.URL.Query().Get("status"))
	switch status {
	case "", timecard.StatusPending, timecard.StatusApproved, timecard.StatusRejected:
	default:
		response.BadRequest(w, "status must be pending, approved or rejected", nil)
		return
	}

	entries, err := h.timecardService.ListByEmployeeAndPeriod(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if status != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if e.Status == status {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	response.Success(w, timecard.NewEntryResponses(entries))
}

// Approve implements TimecardHandler.
func (h *TimecardHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	entry, err := h.timecardService.Approve(r.Context(), id, middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time card entry approved", timecard.NewEntryResponse(entry))
}

// Reject implements TimecardHandler.
func (h *TimecardHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	var req timecard.RejectEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.timecardService.Reject(r.Context(), id, middleware.EmployeeID(r), req.Comment)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time card entry rejected", timecard.NewEntryResponse(entry))
}
