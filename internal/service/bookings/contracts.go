package bookings

import (
	"context"

	"github.com/herlindaapr/beautybook-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetAllWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, notes *string, adminID *int64) error
	Cancel(ctx context.Context, id int64, reason string) error
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error)
	CompletedRevenue(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
