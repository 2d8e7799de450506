package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/herlindaapr/beautybook-service/internal/api/handlers"
	getAvailableSlots "github.com/herlindaapr/beautybook-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidQuery    = "invalid query parameters, expected date=YYYY-MM-DD and services=id[:qty],..."
	msgEmptySelection  = "select at least one service"
	msgServiceNotFound = "service not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=2025-10-15&services=1,2:2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req, err := toUseCaseRequest(query.Get("date"), query.Get("services"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrEmptySelection):
			h.logger.Warn("GET /availability - Empty service selection")
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found")
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput), errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /availability - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d slots available on %s", len(result.Slots), query.Get("date"))
	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(result))
}
