package models

import (
	"errors"
	"time"

	"github.com/herlindaapr/beautybook-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	IsAdmin            bool   `json:"-"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования (только админ)
type UpdateStatusRequest struct {
	AdminID int64   `json:"-"`
	Status  string  `json:"status"`
	Notes   *string `json:"notes,omitempty"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetAllBookingsRequest запрос на получение всех бронирований (только админ)
type GetAllBookingsRequest struct {
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAllBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// LineItemResponse позиция бронирования
type LineItemResponse struct {
	ServiceID       int64  `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	ServicePrice    int64  `json:"servicePrice"`
	DurationMinutes int    `json:"durationMinutes"`
	Quantity        int    `json:"quantity"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64              `json:"id"`
	UserID          int64              `json:"userId"`
	CustomerName    string             `json:"customerName"`
	BookingDate     string             `json:"bookingDate"` // "2025-10-15"
	StartTime       string             `json:"startTime"`   // "10:00"
	DurationMinutes int                `json:"durationMinutes"`
	TotalPrice      int64              `json:"totalPrice"`
	Status          string             `json:"status"`
	StatusDisplay   string             `json:"statusDisplay"`
	StatusColor     string             `json:"statusColor"`
	Services        []LineItemResponse `json:"services"`

	Notes            *string `json:"notes,omitempty"`
	HandledByAdminID *int64  `json:"handledByAdminId,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatusCountResponse количество бронирований в одном статусе
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// StatsResponse сводка для панели администратора
type StatsResponse struct {
	TotalBookings    int64                 `json:"totalBookings"`
	ByStatus         []StatusCountResponse `json:"byStatus"`
	CompletedRevenue int64                 `json:"completedRevenue"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	services := make([]LineItemResponse, len(b.LineItems))
	for i, item := range b.LineItems {
		services[i] = LineItemResponse{
			ServiceID:       item.ServiceID,
			ServiceName:     item.ServiceName,
			ServicePrice:    item.ServicePrice,
			DurationMinutes: item.DurationMinutes,
			Quantity:        item.Quantity,
		}
	}

	badge := b.Status.Badge()

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		CustomerName:       b.CustomerName,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes(),
		TotalPrice:         b.TotalPrice(),
		Status:             string(b.Status),
		StatusDisplay:      badge.DisplayName,
		StatusColor:        badge.Color,
		Services:           services,
		Notes:              b.Notes,
		HandledByAdminID:   b.HandledByAdminID,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
// Строгая валидация - алиасы старых статусов здесь не принимаются
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
