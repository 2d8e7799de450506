package get_available_slots

import (
	"context"
	"time"

	"github.com/herlindaapr/beautybook-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetAllWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
