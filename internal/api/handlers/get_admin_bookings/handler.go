package get_admin_bookings

import (
	"errors"
	"net/http"

	"github.com/herlindaapr/beautybook-service/internal/api/handlers"
	"github.com/herlindaapr/beautybook-service/internal/service/bookings"
)

const (
	msgInvalidParams = "invalid query parameters"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: status, date, startDate, endDate, includeInactive (опционально)
// Роль admin проверяется в middleware
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(
		query.Get("status"),
		query.Get("date"),
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("includeInactive"),
	)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetAllBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to get bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
