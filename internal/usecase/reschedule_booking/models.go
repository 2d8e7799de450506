package reschedule_booking

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

// Request модель запроса на перенос бронирования
// Selections == nil означает "оставить текущий состав услуг";
// непустой список - полная замена (допустима только для pending)
type Request struct {
	BookingID  int64
	UserID     int64
	Date       time.Time
	StartTime  types.TimeString
	Selections []ServiceSelection
}

// LineItem позиция бронирования
type LineItem struct {
	ServiceID       int64
	ServiceName     string
	ServicePrice    int64
	DurationMinutes int
	Quantity        int
}

// Response модель ответа с обновлённым бронированием
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
