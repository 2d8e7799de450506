package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/herlindaapr/beautybook-service/internal/api/handlers"
	"github.com/herlindaapr/beautybook-service/internal/service/catalog"
)

const (
	msgInvalidServiceID = "invalid service ID"
	msgNotFound         = "service not found"
	msgServiceInUse     = "service has existing bookings and cannot be deleted"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/services/{serviceId}
// Роль admin проверяется в middleware
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceIDStr := vars["serviceId"]

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.Delete(r.Context(), serviceID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /admin/services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrServiceInUse):
			h.logger.Warn("DELETE /admin/services/{id} - Service in use: service_id=%d", serviceID)
			handlers.RespondConflict(w, msgServiceInUse)

		default:
			h.logger.Error("DELETE /admin/services/{id} - Failed to delete service: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/services/{id} - Service deleted successfully: service_id=%d", serviceID)
	handlers.RespondNoContent(w)
}
