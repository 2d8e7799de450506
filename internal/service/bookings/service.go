package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	bookingRepo "github.com/herlindaapr/beautybook-service/internal/infra/storage/booking"
	"github.com/herlindaapr/beautybook-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID && !isAdmin {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetAllBookings получает все бронирования с гибкой фильтрацией
// Доступно только администратору
//
// Примеры использования:
// - Все активные бронирования: GetAllBookings(ctx, &GetAllBookingsRequest{})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetAllBookings(ctx context.Context, req *models.GetAllBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "GetAllBookings: fetching bookings"
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAllBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetAllWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование,
// администратор - любое; завершённые и отменённые не отменяются
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID && !req.IsAdmin {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только администратору; переход проверяется по workflow
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by admin=%d",
		bookingID, req.Status, req.AdminID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Проверяем допустимость перехода
	if err := booking.Status.CanTransitionTo(newStatus); err != nil {
		s.logger.Warn("UpdateStatus: transition %s -> %s denied for booking id=%d: %v",
			booking.Status, newStatus, bookingID, err)
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus, req.Notes, &req.AdminID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// GetStats возвращает сводку по бронированиям для панели администратора
func (s *Service) GetStats(ctx context.Context) (*models.StatsResponse, error) {
	s.logger.Info("GetStats: collecting booking stats")

	counts, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("GetStats: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	revenue, err := s.bookingRepo.CompletedRevenue(ctx)
	if err != nil {
		s.logger.Error("GetStats: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	var total int64
	byStatus := make([]models.StatusCountResponse, 0, len(domain.ActiveStatuses)+len(domain.InactiveStatuses))

	// Статусы перечисляются в фиксированном порядке workflow
	for _, status := range []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
	} {
		count := counts[status]
		total += count
		byStatus = append(byStatus, models.StatusCountResponse{
			Status: string(status),
			Count:  count,
		})
	}

	s.logger.Info("GetStats: total=%d, revenue=%d", total, revenue)

	return &models.StatsResponse{
		TotalBookings:    total,
		ByStatus:         byStatus,
		CompletedRevenue: revenue,
	}, nil
}
