package create_booking

import (
	"time"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	"github.com/herlindaapr/beautybook-service/pkg/types"
)

// ServiceSelection одна выбранная услуга с количеством
type ServiceSelection struct {
	ServiceID int64
	Quantity  int
}

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64              // ID клиента
	Date       time.Time          // Дата бронирования (без времени)
	StartTime  types.TimeString   // Время начала (например, "10:00")
	Selections []ServiceSelection // Выбранные услуги, минимум одна
	Notes      *string            // Дополнительные заметки (опционально)
}

// LineItem позиция созданного бронирования
type LineItem struct {
	ServiceID       int64
	ServiceName     string
	ServicePrice    int64
	DurationMinutes int
	Quantity        int
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	UserID          int64
	CustomerName    string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	TotalPrice      int64
	Status          string
	LineItems       []LineItem
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// fromDomain конвертирует domain модель в response
func fromDomain(b *domain.Booking) *Response {
	items := make([]LineItem, len(b.LineItems))
	for i, item := range b.LineItems {
		items[i] = LineItem{
			ServiceID:       item.ServiceID,
			ServiceName:     item.ServiceName,
			ServicePrice:    item.ServicePrice,
			DurationMinutes: item.DurationMinutes,
			Quantity:        item.Quantity,
		}
	}

	return &Response{
		ID:              b.ID,
		UserID:          b.UserID,
		CustomerName:    b.CustomerName,
		BookingDate:     b.BookingDate,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes(),
		TotalPrice:      b.TotalPrice(),
		Status:          string(b.Status),
		LineItems:       items,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
