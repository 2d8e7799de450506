package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	"github.com/herlindaapr/beautybook-service/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	existing []*domain.Booking
}

func (f *fakeBookingRepo) GetAllWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeServiceRepo struct {
	services []*domain.Service
}

func (f *fakeServiceRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	return f.services, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Хелперы

func testHours() domain.BusinessHours {
	return domain.BusinessHours{
		OpenTime:      types.TimeString("09:00"),
		CloseTime:     types.TimeString("16:00"),
		BufferMinutes: 30,
	}
}

func hourItems(durationMinutes int) []domain.BookingLineItem {
	return []domain.BookingLineItem{
		{ServiceID: 1, ServiceName: "Hair Spa", ServicePrice: 150000, DurationMinutes: durationMinutes, Quantity: 1},
	}
}

func confirmedBooking(id int64, start string, durationMinutes int) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		UserID:      7,
		BookingDate: time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString(start),
		Status:      domain.StatusConfirmed,
		LineItems:   hourItems(durationMinutes),
	}
}

// Тесты генерации сетки

func TestGenerateCandidateStarts_FullGrid(t *testing.T) {
	futureDate := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	candidates, err := generateCandidateStarts(testHours(), 60, futureDate, now)
	require.NoError(t, err)

	// 09:00..15:00 с шагом 30 минут - услуга на час должна закончиться к 16:00
	require.Len(t, candidates, 13)
	assert.Equal(t, types.TimeString("09:00"), candidates[0])
	assert.Equal(t, types.TimeString("15:00"), candidates[len(candidates)-1])
}

func TestGenerateCandidateStarts_LongDuration(t *testing.T) {
	futureDate := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fills whole day", func(t *testing.T) {
		candidates, err := generateCandidateStarts(testHours(), 420, futureDate, now)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"09:00"}, candidates)
	})

	t.Run("does not fit at all", func(t *testing.T) {
		candidates, err := generateCandidateStarts(testHours(), 421, futureDate, now)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})
}

func TestGenerateCandidateStarts_TodayDropsPastTimes(t *testing.T) {
	today := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 20, 10, 15, 0, 0, time.UTC)

	candidates, err := generateCandidateStarts(testHours(), 60, today, now)
	require.NoError(t, err)

	require.NotEmpty(t, candidates)
	assert.Equal(t, types.TimeString("10:30"), candidates[0])
}

func TestGenerateCandidateStarts_PastDate(t *testing.T) {
	pastDate := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC)

	candidates, err := generateCandidateStarts(testHours(), 60, pastDate, now)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

// Тесты фильтрации конфликтов

func TestFilterConflicting_BufferAroundBooking(t *testing.T) {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	candidates, err := generateCandidateStarts(testHours(), 60, date, now)
	require.NoError(t, err)

	// Запись 12:00-13:00 с буфером 30 минут блокирует кандидатов 11:00-13:00
	bookings := []*domain.Booking{confirmedBooking(1, "12:00", 60)}

	free := filterConflicting(candidates, hourItems(60), bookings, 30, date)

	expected := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "13:30", "14:00", "14:30", "15:00"}
	assert.Equal(t, expected, free)
}

func TestFilterConflicting_CancelledBookingIgnored(t *testing.T) {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	candidates, err := generateCandidateStarts(testHours(), 60, date, now)
	require.NoError(t, err)

	cancelled := confirmedBooking(1, "12:00", 60)
	cancelled.Status = domain.StatusCancelled

	free := filterConflicting(candidates, hourItems(60), []*domain.Booking{cancelled}, 30, date)
	assert.Equal(t, candidates, free)
}

// Тесты Execute

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{existing: []*domain.Booking{confirmedBooking(1, "12:00", 60)}}
	services := &fakeServiceRepo{services: []*domain.Service{
		{ID: 1, Name: "Hair Spa", Price: 150000, DurationMinutes: 60},
	}}

	uc := NewUseCase(bookings, services, testHours(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		Selections: []ServiceSelection{{ServiceID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Contains(t, resp.Slots, types.TimeString("09:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("12:00"))
}

func TestExecute_EmptySelection(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeServiceRepo{}, testHours(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestExecute_UnknownService(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeServiceRepo{}, testHours(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), &Request{
		Date:       time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		Selections: []ServiceSelection{{ServiceID: 99, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
