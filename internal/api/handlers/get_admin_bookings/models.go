package get_admin_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	"github.com/herlindaapr/beautybook-service/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// date фильтрует по одной дате; startDate/endDate задают период
func ToServiceRequest(
	statusStr string,
	dateStr string,
	startDateStr string,
	endDateStr string,
	includeInactiveStr string,
) (*models.GetAllBookingsRequest, error) {
	req := &models.GetAllBookingsRequest{
		IncludeInactive: false, // По умолчанию только активные
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	} else if startDateStr != "" && endDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
		req.EndDate = &endDate
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
