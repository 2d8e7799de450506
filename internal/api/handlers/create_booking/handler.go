package create_booking

import (
	"errors"
	"net/http"

	"github.com/herlindaapr/beautybook-service/internal/api/handlers"
	"github.com/herlindaapr/beautybook-service/internal/api/middleware"
	createBooking "github.com/herlindaapr/beautybook-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateOrTime    = "invalid booking date or start time, expected YYYY-MM-DD and HH:MM"
	msgMissingUserID        = "missing user ID"
	msgEmptySelection       = "select at least one service"
	msgServiceNotFound      = "service not found"
	msgCustomerNotFound     = "customer profile not found"
	msgInvalidBookingDate   = "booking date cannot be in the past"
	msgOutsideBusinessHours = "requested time is outside business hours"
	msgSlotConflict         = "requested time slot is already taken"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user_id=%d", userID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /bookings - Outside business hours: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrEmptySelection):
			h.logger.Warn("POST /bookings - Empty service selection: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
