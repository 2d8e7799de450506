package update_booking

import (
	"time"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	rescheduleBooking "github.com/herlindaapr/beautybook-service/internal/usecase/reschedule_booking"
	"github.com/herlindaapr/beautybook-service/pkg/types"
)

// ServiceSelectionRequest выбранная услуга в HTTP запросе
type ServiceSelectionRequest struct {
	ServiceID int64 `json:"serviceId"`
	Quantity  int   `json:"quantity"`
}

// UpdateBookingRequest HTTP request model
// services указывается только если клиент меняет состав услуг
type UpdateBookingRequest struct {
	BookingDate string                    `json:"bookingDate"` // "2025-10-15"
	StartTime   string                    `json:"startTime"`   // "10:00"
	Services    []ServiceSelectionRequest `json:"services,omitempty"`
}

// LineItemResponse позиция бронирования в HTTP ответе
type LineItemResponse struct {
	ServiceID       int64  `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	ServicePrice    int64  `json:"servicePrice"`
	DurationMinutes int    `json:"durationMinutes"`
	Quantity        int    `json:"quantity"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64              `json:"id"`
	UserID          int64              `json:"userId"`
	CustomerName    string             `json:"customerName"`
	BookingDate     string             `json:"bookingDate"`
	StartTime       string             `json:"startTime"`
	DurationMinutes int                `json:"durationMinutes"`
	TotalPrice      int64              `json:"totalPrice"`
	Status          string             `json:"status"`
	Services        []LineItemResponse `json:"services"`
	Notes           *string            `json:"notes,omitempty"`
	CreatedAt       string             `json:"createdAt"`
	UpdatedAt       string             `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID, userID int64) (*rescheduleBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	var selections []rescheduleBooking.ServiceSelection
	if len(r.Services) > 0 {
		selections = make([]rescheduleBooking.ServiceSelection, len(r.Services))
		for i, svc := range r.Services {
			selections[i] = rescheduleBooking.ServiceSelection{
				ServiceID: svc.ServiceID,
				Quantity:  svc.Quantity,
			}
		}
	}

	return &rescheduleBooking.Request{
		BookingID:  bookingID,
		UserID:     userID,
		Date:       bookingDate,
		StartTime:  startTime,
		Selections: selections,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *BookingResponse {
	services := make([]LineItemResponse, len(resp.LineItems))
	for i, item := range resp.LineItems {
		services[i] = LineItemResponse{
			ServiceID:       item.ServiceID,
			ServiceName:     item.ServiceName,
			ServicePrice:    item.ServicePrice,
			DurationMinutes: item.DurationMinutes,
			Quantity:        item.Quantity,
		}
	}

	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		CustomerName:    resp.CustomerName,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		Services:        services,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
