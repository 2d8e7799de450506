package get_admin_stats

import (
	"net/http"

	"github.com/herlindaapr/beautybook-service/internal/api/handlers"
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

// Handle GET /api/v1/admin/stats
// Роль admin проверяется в middleware
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetStats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to get stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/stats - Stats retrieved successfully: total=%d", result.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
