package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	serviceRepo "github.com/herlindaapr/beautybook-service/internal/infra/storage/service"
	"github.com/herlindaapr/beautybook-service/internal/service/catalog/models"
)

// Service сервис для работы с каталогом услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает все услуги каталога
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching service catalog")

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%d", id)

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// Create создает новую услугу
// Доступно только администратору
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q", req.Name)

	if err := s.validateServiceData(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	svc := &domain.Service{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrDuplicateName) {
			s.logger.Warn("Create: duplicate service name=%q", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// Update полностью заменяет данные услуги
// Доступно только администратору; цены уже созданных бронирований не меняются
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	if err := s.validateServiceData(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	svc := &domain.Service{
		ID:              id,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		if errors.Is(err, serviceRepo.ErrDuplicateName) {
			s.logger.Warn("Update: duplicate service name=%q", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to reload service: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу
// Услуга с существующими бронированиями не удаляется
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting service id=%d", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%d not found", id)
			return ErrServiceNotFound
		}
		if errors.Is(err, serviceRepo.ErrServiceInUse) {
			s.logger.Warn("Delete: service id=%d is referenced by bookings", id)
			return ErrServiceInUse
		}
		s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%d", id)
	return nil
}

// validateServiceData проверяет поля услуги
func (s *Service) validateServiceData(name string, price int64, durationMinutes int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	}

	if price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}

	if durationMinutes < domain.MinServiceDurationMinutes || durationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	return nil
}
