package get_available_slots

import (
	"context"
	"fmt"

	"github.com/herlindaapr/beautybook-service/internal/domain"
)

// UseCase use case для получения доступного времени записи
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	hours        domain.BusinessHours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		hours:        hours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает время начала, на которое можно записаться
// в указанную дату с выбранным набором услуг
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, services=%d",
		req.Date.Format(domain.DateFormat), len(req.Selections))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим выбранные услуги - они задают длительность слота
	ids := make([]int64, len(req.Selections))
	for i, sel := range req.Selections {
		ids[i] = sel.ServiceID
	}

	services, err := uc.serviceRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	items, err := buildLineItems(req.Selections, services)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	duration := domain.NewTimeSlot(req.Date, items).DurationMinutes

	// 3. Генерируем сетку кандидатов с учётом рабочих часов и текущего времени
	now := uc.timeProvider.Now()
	candidates, err := generateCandidateStarts(uc.hours, duration, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate candidates: %v", err)
		return nil, fmt.Errorf("%w: failed to generate candidates: %v", ErrInternal, err)
	}

	// 4. Получаем активные записи на эту дату
	filter := domain.BookingsFilter{
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetAllWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Отфильтровываем кандидатов, пересекающихся с существующими записями
	free := filterConflicting(candidates, items, bookings, uc.hours.BufferMinutes, req.Date)

	uc.logger.Info("GetAvailableSlots: %d of %d candidates available for date=%s",
		len(free), len(candidates), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           free,
	}, nil
}
