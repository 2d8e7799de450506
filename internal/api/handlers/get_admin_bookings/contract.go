package get_admin_bookings

import (
	"context"

	"github.com/herlindaapr/beautybook-service/internal/service/bookings/models"
)

type BookingService interface {
	GetAllBookings(ctx context.Context, req *models.GetAllBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
