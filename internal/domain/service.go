package domain

import "time"

// Service a beauty service from the price list (nail art, eyelash
// extensions, ...). Reference data: updates replace the whole record.
type Service struct {
	ID              int64
	Name            string
	Description     string
	Price           int64 // integer rupiah
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ToLineItem converts the service into a booking line item with the
// given quantity, denormalizing name, price and duration
func (s *Service) ToLineItem(quantity int) BookingLineItem {
	if quantity < 1 {
		quantity = 1
	}
	return BookingLineItem{
		ServiceID:       s.ID,
		ServiceName:     s.Name,
		ServicePrice:    s.Price,
		DurationMinutes: s.DurationMinutes,
		Quantity:        quantity,
	}
}
