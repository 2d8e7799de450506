package create_booking

import (
	"context"
	"time"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	"github.com/herlindaapr/beautybook-service/internal/integrations/identity"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetAllWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// IdentityClient интерфейс клиента identity-сервиса
type IdentityClient interface {
	GetCustomerWithGracefulDegradation(ctx context.Context, userID int64) (*identity.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
