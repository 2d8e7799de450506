package create_booking

import (
	"fmt"
	"time"

	"github.com/herlindaapr/beautybook-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Пустой список услуг отклоняется здесь - до вычисления слота
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if len(req.Selections) == 0 {
		return ErrEmptySelection
	}

	for _, sel := range req.Selections {
		if sel.ServiceID <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		// Нулевое количество допустимо и считается одной единицей
		if sel.Quantity < 0 || sel.Quantity > domain.MaxLineItemQuantity {
			return fmt.Errorf("%w: quantity must be between 0 and %d", ErrInvalidInput, domain.MaxLineItemQuantity)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// buildLineItems собирает позиции бронирования из выбранных услуг
// Возвращает ErrServiceNotFound, если какая-то из услуг не существует
func buildLineItems(selections []ServiceSelection, services []*domain.Service) ([]domain.BookingLineItem, error) {
	byID := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	items := make([]domain.BookingLineItem, 0, len(selections))
	for _, sel := range selections {
		svc, ok := byID[sel.ServiceID]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, sel.ServiceID)
		}
		items = append(items, svc.ToLineItem(sel.Quantity))
	}

	return items, nil
}

// hasSlotConflict проверяет кандидата на конфликт с существующими записями
// Неактивные (отменённые) записи в проверке не участвуют
func hasSlotConflict(candidate domain.TimeSlot, bookings []*domain.Booking, bufferMinutes int, excludeID int64) bool {
	for _, booking := range bookings {
		if booking.ID == excludeID {
			continue
		}
		if !booking.IsActive() {
			continue
		}

		slot, err := booking.Slot()
		if err != nil {
			// Если не можем вычислить слот бронирования, пропускаем
			continue
		}

		if candidate.Overlaps(slot, bufferMinutes) {
			return true
		}
	}

	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
