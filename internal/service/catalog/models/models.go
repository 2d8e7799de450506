package models

import (
	"time"

	"github.com/herlindaapr/beautybook-service/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int64  `json:"price"` // В рупиях
	DurationMinutes int    `json:"durationMinutes"`
}

// UpdateServiceRequest запрос на обновление услуги
// Все поля задаются целиком - частичное обновление не поддерживается
type UpdateServiceRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int64  `json:"price"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           int64     `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	if services == nil {
		return &ServiceListResponse{Services: []ServiceResponse{}}
	}

	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, len(services)),
	}

	for i, svc := range services {
		if svcResp := FromDomainService(svc); svcResp != nil {
			resp.Services[i] = *svcResp
		}
	}

	return resp
}
