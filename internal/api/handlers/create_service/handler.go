package create_service

import (
	"errors"
	"net/http"

	"github.com/herlindaapr/beautybook-service/internal/api/handlers"
	"github.com/herlindaapr/beautybook-service/internal/service/catalog"
	"github.com/herlindaapr/beautybook-service/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle POST /api/v1/admin/services
// Роль admin проверяется в middleware
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDuplicateName):
			h.logger.Warn("POST /admin/services - Duplicate name: %q", req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/services - Failed to create service: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/services - Service created successfully: service_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
