package update_status

import (
	"github.com/herlindaapr/beautybook-service/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(adminID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		AdminID: adminID,
		Status:  r.Status,
		Notes:   r.Notes,
	}
}
