package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/herlindaapr/beautybook-service/internal/api/handlers"
	"github.com/herlindaapr/beautybook-service/internal/api/middleware"
	rescheduleBooking "github.com/herlindaapr/beautybook-service/internal/usecase/reschedule_booking"
)

const (
	msgInvalidBookingID     = "invalid booking ID"
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateOrTime    = "invalid booking date or start time, expected YYYY-MM-DD and HH:MM"
	msgMissingUserID        = "missing user ID"
	msgNotFound             = "booking not found"
	msgForbidden            = "access denied"
	msgFinalized            = "completed or cancelled bookings cannot be rescheduled"
	msgServicesLocked       = "services cannot be changed after confirmation, only the appointment time"
	msgServiceNotFound      = "service not found"
	msgInvalidBookingDate   = "booking date cannot be in the past"
	msgOutsideBusinessHours = "requested time is outside business hours"
	msgSlotConflict         = "requested time slot is already taken"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleBooking.ErrBookingFinalized):
			h.logger.Warn("PATCH /bookings/{id} - Booking finalized: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgFinalized)

		case errors.Is(err, rescheduleBooking.ErrServicesLocked):
			h.logger.Warn("PATCH /bookings/{id} - Services locked: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgServicesLocked)

		case errors.Is(err, rescheduleBooking.ErrServiceNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Service not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, rescheduleBooking.ErrSlotConflict):
			h.logger.Warn("PATCH /bookings/{id} - Slot conflict: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, rescheduleBooking.ErrOutsideBusinessHours):
			h.logger.Warn("PATCH /bookings/{id} - Outside business hours: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, rescheduleBooking.ErrInvalidDate):
			h.logger.Warn("PATCH /bookings/{id} - Invalid booking date: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to reschedule booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking rescheduled successfully: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
