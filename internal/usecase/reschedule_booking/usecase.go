package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	bookingRepo "github.com/herlindaapr/beautybook-service/internal/infra/storage/booking"
	"github.com/herlindaapr/beautybook-service/pkg/types"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	hours        domain.BusinessHours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingRepository,
	services ServiceRepository,
	txManager TransactionManager,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookings,
		serviceRepo:  services,
		txManager:    txManager,
		hours:        hours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переносит бронирование на новые дату и время
// До подтверждения клиент может заодно поменять состав услуг,
// после подтверждения переносится только время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, user=%d, date=%s, time=%s",
		req.BookingID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Новая дата не должна быть в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("RescheduleBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем бронирование и проверяем владельца
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		uc.logger.Warn("RescheduleBooking: user=%d has no access to booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 4. Завершённые и отменённые бронирования не переносятся
	if !booking.CanBeRescheduled() {
		uc.logger.Warn("RescheduleBooking: booking id=%d is finalized, status=%s", req.BookingID, booking.Status)
		return nil, ErrBookingFinalized
	}

	// 5. Замена услуг доступна только до подтверждения
	var replaceItems []domain.BookingLineItem
	if len(req.Selections) > 0 {
		if !booking.CanEditServices() {
			uc.logger.Warn("RescheduleBooking: booking id=%d services are locked, status=%s",
				req.BookingID, booking.Status)
			return nil, ErrServicesLocked
		}

		ids := make([]int64, len(req.Selections))
		for i, sel := range req.Selections {
			ids[i] = sel.ServiceID
		}

		services, err := uc.serviceRepo.GetByIDs(ctx, ids)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get services: %v", err)
			return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}

		replaceItems, err = buildLineItems(req.Selections, services)
		if err != nil {
			uc.logger.Warn("RescheduleBooking: %v", err)
			return nil, err
		}
	}

	// 6. Вычисляем новый слот и проверяем рабочие часы
	items := booking.LineItems
	if replaceItems != nil {
		items = replaceItems
	}

	slot := domain.NewTimeSlot(slotStart(req.Date, req.StartTime), items)
	if err := uc.hours.ValidateSlot(slot); err != nil {
		uc.logger.Warn("RescheduleBooking: business hours check failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrOutsideBusinessHours, err)
	}

	var result *domain.Booking

	// 7. Проверка конфликтов и перенос - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.BookingsFilter{
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetAllWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// Само бронирование исключается из проверки конфликтов
		if hasSlotConflict(slot, bookings, uc.hours.BufferMinutes, booking.ID) {
			uc.logger.Warn("RescheduleBooking: slot conflict for booking id=%d, date=%s time=%s",
				booking.ID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotConflict
		}

		booking.BookingDate = req.Date
		booking.StartTime = req.StartTime

		if err := uc.bookingRepo.Reschedule(txCtx, booking, replaceItems); err != nil {
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}

		// Перечитываем, чтобы вернуть актуальные позиции и updated_at
		updated, err := uc.bookingRepo.GetByID(txCtx, booking.ID)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to reload booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%d to %s %s",
		result.ID, result.BookingDate.Format(domain.DateFormat), result.StartTime)

	return fromDomain(result), nil
}

// slotStart собирает момент начала слота из даты и времени HH:MM
func slotStart(date time.Time, start types.TimeString) time.Time {
	minutes, err := start.Minutes()
	if err != nil {
		minutes = 0
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}
