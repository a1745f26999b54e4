package http

import (
	"net/http"

	"github.com/shiftwise/timecard-backend-go/internal/domain/notification"
	"github.com/shiftwise/timecard-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/timecard-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	GetMyNotifications(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(svc notification.Service) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: svc}
}

// GetMyNotifications implements NotificationHandler.
func (h *NotificationHandlerImpl) GetMyNotifications(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)
	if employeeID == "" {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	notifications, err := h.notificationService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]notification.Response, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, notification.NewResponse(n))
	}

	response.Success(w, responses)
}
