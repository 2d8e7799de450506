package get_available_slots

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	getAvailableSlots "github.com/herlindaapr/beautybook-service/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"` // Время начала, "10:00"
}

// parseSelections разбирает query параметр services
// Формат: "1,2,3" или с количеством "1:2,3" (serviceId:quantity)
func parseSelections(raw string) ([]getAvailableSlots.ServiceSelection, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	selections := make([]getAvailableSlots.ServiceSelection, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quantity := 1
		idStr := part
		if idx := strings.IndexByte(part, ':'); idx >= 0 {
			idStr = part[:idx]
			qty, err := strconv.Atoi(part[idx+1:])
			if err != nil {
				return nil, fmt.Errorf("invalid quantity in %q", part)
			}
			quantity = qty
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid service id in %q", part)
		}

		selections = append(selections, getAvailableSlots.ServiceSelection{
			ServiceID: id,
			Quantity:  quantity,
		})
	}

	return selections, nil
}

// toUseCaseRequest собирает модель use case из query параметров
func toUseCaseRequest(dateStr, servicesStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	selections, err := parseSelections(servicesStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:       date,
		Selections: selections,
	}, nil
}

// fromUseCaseResponse конвертирует ответ use case в HTTP response
func fromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
