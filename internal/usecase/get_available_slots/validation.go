package get_available_slots

import (
	"fmt"

	"github.com/herlindaapr/beautybook-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Selections) == 0 {
		return ErrEmptySelection
	}

	for _, sel := range req.Selections {
		if sel.ServiceID <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		// Нулевое количество допустимо и считается одной единицей
		if sel.Quantity < 0 || sel.Quantity > domain.MaxLineItemQuantity {
			return fmt.Errorf("%w: quantity must be between 0 and %d", ErrInvalidInput, domain.MaxLineItemQuantity)
		}
	}

	return nil
}

// buildLineItems собирает позиции из выбранных услуг
func buildLineItems(selections []ServiceSelection, services []*domain.Service) ([]domain.BookingLineItem, error) {
	byID := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	items := make([]domain.BookingLineItem, 0, len(selections))
	for _, sel := range selections {
		svc, ok := byID[sel.ServiceID]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, sel.ServiceID)
		}
		items = append(items, svc.ToLineItem(sel.Quantity))
	}

	return items, nil
}
