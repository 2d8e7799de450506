package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	identityClient "github.com/herlindaapr/beautybook-service/internal/integrations/identity"
	"github.com/herlindaapr/beautybook-service/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	serviceRepo    ServiceRepository
	identityClient IdentityClient
	txManager      TransactionManager
	hours          domain.BusinessHours
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	identityClient IdentityClient,
	txManager TransactionManager,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		serviceRepo:    serviceRepo,
		identityClient: identityClient,
		txManager:      txManager,
		hours:          hours,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов слотов выполняется в сериализуемой транзакции,
// чтобы две параллельные записи не заняли пересекающиеся слоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, date=%s, time=%s, services=%d",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, len(req.Selections))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не должна быть в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Резолвим выбранные услуги
	ids := make([]int64, len(req.Selections))
	for i, sel := range req.Selections {
		ids[i] = sel.ServiceID
	}

	services, err := uc.serviceRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	items, err := buildLineItems(req.Selections, services)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 5. Вычисляем слот и проверяем рабочие часы
	slot := domain.NewTimeSlot(slotStart(req.Date, req.StartTime), items)
	if err := uc.hours.ValidateSlot(slot); err != nil {
		uc.logger.Warn("CreateBooking: business hours check failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrOutsideBusinessHours, err)
	}

	// 6. Резолвим имя клиента через identity-сервис
	customerName, err := uc.resolveCustomerName(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var result *domain.Booking

	// 7. Проверка конфликтов и создание - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем активные бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetAllWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.2. Проверяем конфликт с учётом буфера между записями
		if hasSlotConflict(slot, bookings, uc.hours.BufferMinutes, 0) {
			uc.logger.Warn("CreateBooking: slot conflict for date=%s time=%s",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotConflict
		}

		// 7.3. Создаем бронирование со статусом pending
		booking := &domain.Booking{
			UserID:       req.UserID,
			CustomerName: customerName,
			BookingDate:  req.Date,
			StartTime:    req.StartTime,
			LineItems:    items,
			Status:       domain.StatusPending,
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (%d minutes, %d items)",
		result.ID, result.DurationMinutes(), len(result.LineItems))

	return fromDomain(result), nil
}

// resolveCustomerName получает имя клиента с graceful degradation:
// при недоступности identity-сервиса бронирование создаётся с плейсхолдером
func (uc *UseCase) resolveCustomerName(ctx context.Context, userID int64) (string, error) {
	customer, err := uc.identityClient.GetCustomerWithGracefulDegradation(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", userID)
			return "", ErrCustomerNotFound
		}
		if errors.Is(err, identityClient.ErrServiceDegraded) {
			uc.logger.Warn("CreateBooking: identity degraded, using placeholder name for user=%d", userID)
			return "Unknown Customer", nil
		}
		uc.logger.Error("CreateBooking: failed to resolve customer id=%d: %v", userID, err)
		return "", fmt.Errorf("%w: failed to resolve customer: %v", ErrInternal, err)
	}

	return customer.Name, nil
}

// slotStart собирает момент начала слота из даты и времени HH:MM
func slotStart(date time.Time, start types.TimeString) time.Time {
	minutes, err := start.Minutes()
	if err != nil {
		// Валидация формата уже прошла, сюда не попадаем
		minutes = 0
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}
