package get_service

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

// Handle GET /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceIDStr := vars["serviceId"]

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.GetByID(r.Context(), serviceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			h.logger.Warn("GET /services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /services/{id} - Failed to get service: service_id=%d, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services/{id} - Service retrieved successfully: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
