package catalog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	serviceRepo "github.com/herlindaapr/beautybook-service/internal/infra/storage/service"
	"github.com/herlindaapr/beautybook-service/internal/service/catalog/models"
)

// Фейк репозитория

type fakeServiceRepo struct {
	byID      map[int64]*domain.Service
	names     map[string]bool
	inUse     map[int64]bool
	created   *domain.Service
	updated   *domain.Service
	deletedID int64
}

func (f *fakeServiceRepo) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if f.names[svc.Name] {
		return nil, serviceRepo.ErrDuplicateName
	}
	svc.ID = 10
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt
	f.created = svc
	return svc, nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.byID[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeServiceRepo) List(ctx context.Context) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0, len(f.byID))
	for _, svc := range f.byID {
		services = append(services, svc)
	}
	return services, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, svc *domain.Service) error {
	if _, ok := f.byID[svc.ID]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	if f.names[svc.Name] {
		return serviceRepo.ErrDuplicateName
	}
	f.updated = svc
	f.byID[svc.ID] = svc
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	if f.inUse[id] {
		return serviceRepo.ErrServiceInUse
	}
	f.deletedID = id
	delete(f.byID, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func hairSpa() *domain.Service {
	return &domain.Service{ID: 1, Name: "Hair Spa", Price: 150000, DurationMinutes: 60}
}

// Тесты

func TestCreate_Success(t *testing.T) {
	repo := &fakeServiceRepo{names: map[string]bool{}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:            "  Manicure  ",
		Description:     "Classic manicure",
		Price:           100000,
		DurationMinutes: 45,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ID)
	// Имя сохраняется без ведущих и хвостовых пробелов
	assert.Equal(t, "Manicure", resp.Name)
	assert.Equal(t, int64(100000), resp.Price)
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := &fakeServiceRepo{names: map[string]bool{"Hair Spa": true}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:            "Hair Spa",
		Price:           150000,
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{"empty name", models.CreateServiceRequest{Name: "   ", Price: 100, DurationMinutes: 30}},
		{"name too long", models.CreateServiceRequest{
			Name: strings.Repeat("x", domain.MaxServiceNameLength+1), Price: 100, DurationMinutes: 30,
		}},
		{"negative price", models.CreateServiceRequest{Name: "Pedicure", Price: -1, DurationMinutes: 30}},
		{"duration too short", models.CreateServiceRequest{
			Name: "Pedicure", Price: 100, DurationMinutes: domain.MinServiceDurationMinutes - 1,
		}},
		{"duration too long", models.CreateServiceRequest{
			Name: "Pedicure", Price: 100, DurationMinutes: domain.MaxServiceDurationMinutes + 1,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeServiceRepo{names: map[string]bool{}}, nopLogger{})

			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeServiceRepo{byID: map[int64]*domain.Service{1: hairSpa()}}
	svc := NewService(repo, nopLogger{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Hair Spa", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 404)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestUpdate_Success(t *testing.T) {
	repo := &fakeServiceRepo{
		byID:  map[int64]*domain.Service{1: hairSpa()},
		names: map[string]bool{},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
		Name:            "Hair Spa Deluxe",
		Price:           200000,
		DurationMinutes: 90,
	})
	require.NoError(t, err)

	assert.Equal(t, "Hair Spa Deluxe", resp.Name)
	assert.Equal(t, int64(200000), resp.Price)
	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &fakeServiceRepo{byID: map[int64]*domain.Service{}, names: map[string]bool{}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 404, &models.UpdateServiceRequest{
		Name:            "Hair Spa",
		Price:           150000,
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &fakeServiceRepo{byID: map[int64]*domain.Service{1: hairSpa()}}
		svc := NewService(repo, nopLogger{})

		err := svc.Delete(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), repo.deletedID)
	})

	t.Run("referenced by bookings", func(t *testing.T) {
		repo := &fakeServiceRepo{
			byID:  map[int64]*domain.Service{1: hairSpa()},
			inUse: map[int64]bool{1: true},
		}
		svc := NewService(repo, nopLogger{})

		err := svc.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, ErrServiceInUse)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&fakeServiceRepo{byID: map[int64]*domain.Service{}}, nopLogger{})

		err := svc.Delete(context.Background(), 404)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}
