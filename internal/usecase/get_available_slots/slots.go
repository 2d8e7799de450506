package get_available_slots

import (
	"time"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	"github.com/herlindaapr/beautybook-service/pkg/types"
)

// generateCandidateStarts генерирует сетку кандидатов времени начала
// Кандидаты идут от открытия с шагом domain.SlotStepMinutes; кандидат
// остаётся в сетке, только если запись целиком помещается до закрытия
// Для сегодняшней даты уже прошедшее время отфильтровывается
func generateCandidateStarts(
	hours domain.BusinessHours,
	durationMinutes int,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	closeMinutes, err := hours.CloseTime.Minutes()
	if err != nil {
		return nil, err
	}

	candidates := make([]types.TimeString, 0)
	current := hours.OpenTime

	for {
		startMinutes, err := current.Minutes()
		if err != nil {
			return nil, err
		}
		// Запись должна начаться и закончиться не позже закрытия
		if startMinutes > closeMinutes || startMinutes+durationMinutes > closeMinutes {
			break
		}

		candidates = append(candidates, current)

		current, err = current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			// Вышли за пределы суток
			break
		}
	}

	// На будущие даты сетка возвращается целиком
	if !isSameDay(requestDate, now) {
		return candidates, nil
	}

	// Сегодня предлагаем только время, которое ещё не прошло
	currentTime := types.NewTimeString(now)
	upcoming := make([]types.TimeString, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.IsBefore(currentTime) {
			upcoming = append(upcoming, candidate)
		}
	}

	return upcoming, nil
}

// filterConflicting оставляет только кандидатов, не пересекающихся
// (с учётом буфера) ни с одной активной записью на эту дату
func filterConflicting(
	candidates []types.TimeString,
	items []domain.BookingLineItem,
	bookings []*domain.Booking,
	bufferMinutes int,
	date time.Time,
) []types.TimeString {
	free := make([]types.TimeString, 0, len(candidates))

	for _, candidate := range candidates {
		minutes, err := candidate.Minutes()
		if err != nil {
			continue
		}

		start := time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
		slot := domain.NewTimeSlot(start, items)

		if !hasOverlap(slot, bookings, bufferMinutes) {
			free = append(free, candidate)
		}
	}

	return free
}

// hasOverlap проверяет пересечение слота с активными записями
func hasOverlap(candidate domain.TimeSlot, bookings []*domain.Booking, bufferMinutes int) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		slot, err := booking.Slot()
		if err != nil {
			continue
		}

		if candidate.Overlaps(slot, bufferMinutes) {
			return true
		}
	}

	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
