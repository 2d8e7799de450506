package update_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/herlindaapr/beautybook-service/internal/api/handlers"
	"github.com/herlindaapr/beautybook-service/internal/service/catalog"
	"github.com/herlindaapr/beautybook-service/internal/service/catalog/models"
)

const (
	msgInvalidServiceID   = "invalid service ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "service not found"
	msgDuplicateName      = "service with this name already exists"
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

// Handle PATCH /api/v1/admin/services/{serviceId}
// Роль admin проверяется в middleware
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceIDStr := vars["serviceId"]

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), serviceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PATCH /admin/services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrDuplicateName):
			h.logger.Warn("PATCH /admin/services/{id} - Duplicate name: %q", req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/services/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /admin/services/{id} - Failed to update service: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/services/{id} - Service updated successfully: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
