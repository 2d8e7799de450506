package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	bookingRepo "github.com/herlindaapr/beautybook-service/internal/infra/storage/booking"
	"github.com/herlindaapr/beautybook-service/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	byID        map[int64]*domain.Booking
	existing    []*domain.Booking
	rescheduled bool
	newItems    []domain.BookingLineItem
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetAllWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

func (f *fakeBookingRepo) Reschedule(ctx context.Context, booking *domain.Booking, replaceItems []domain.BookingLineItem) error {
	f.rescheduled = true
	f.newItems = replaceItems
	if replaceItems != nil {
		booking.LineItems = replaceItems
	}
	booking.UpdatedAt = time.Now()
	return nil
}

type fakeServiceRepo struct {
	services []*domain.Service
}

func (f *fakeServiceRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	return f.services, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func testBooking(id, userID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		UserID:      userID,
		BookingDate: time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("10:00"),
		Status:      status,
		LineItems: []domain.BookingLineItem{
			{ServiceID: 1, ServiceName: "Hair Spa", ServicePrice: 150000, DurationMinutes: 60, Quantity: 1},
		},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, services *fakeServiceRepo) *UseCase {
	uc := NewUseCase(bookings, services, &fakeTxManager{}, testHours(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		BookingID: 1,
		UserID:    5,
		Date:      time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("13:00"),
	}
}

// Тесты

func TestExecute_TimeOnlyReschedule(t *testing.T) {
	bookings := &fakeBookingRepo{
		byID: map[int64]*domain.Booking{1: testBooking(1, 5, domain.StatusConfirmed)},
	}

	uc := newTestUseCase(bookings, &fakeServiceRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, bookings.rescheduled)
	assert.Nil(t, bookings.newItems)
	assert.Equal(t, types.TimeString("13:00"), resp.StartTime)
	assert.Equal(t, time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC), resp.BookingDate)
	// Статус при переносе не меняется
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{byID: map[int64]*domain.Booking{}}

	uc := newTestUseCase(bookings, &fakeServiceRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_NotOwner(t *testing.T) {
	bookings := &fakeBookingRepo{
		byID: map[int64]*domain.Booking{1: testBooking(1, 99, domain.StatusPending)},
	}

	uc := newTestUseCase(bookings, &fakeServiceRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_FinalizedBooking(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{"completed", domain.StatusCompleted},
		{"cancelled", domain.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{
				byID: map[int64]*domain.Booking{1: testBooking(1, 5, tt.status)},
			}

			uc := newTestUseCase(bookings, &fakeServiceRepo{})

			_, err := uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrBookingFinalized)
		})
	}
}

func TestExecute_ServicesLockedAfterConfirmation(t *testing.T) {
	bookings := &fakeBookingRepo{
		byID: map[int64]*domain.Booking{1: testBooking(1, 5, domain.StatusConfirmed)},
	}

	uc := newTestUseCase(bookings, &fakeServiceRepo{})

	req := validRequest()
	req.Selections = []ServiceSelection{{ServiceID: 2, Quantity: 1}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServicesLocked)
}

func TestExecute_PendingAllowsServiceReplacement(t *testing.T) {
	bookings := &fakeBookingRepo{
		byID: map[int64]*domain.Booking{1: testBooking(1, 5, domain.StatusPending)},
	}
	services := &fakeServiceRepo{services: []*domain.Service{
		{ID: 2, Name: "Manicure", Price: 100000, DurationMinutes: 45},
	}}

	uc := newTestUseCase(bookings, services)

	req := validRequest()
	req.Selections = []ServiceSelection{{ServiceID: 2, Quantity: 2}}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, bookings.newItems, 1)
	assert.Equal(t, int64(2), bookings.newItems[0].ServiceID)
	assert.Equal(t, 2, bookings.newItems[0].Quantity)
	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestExecute_ConflictExcludesSelf(t *testing.T) {
	// Перенос на время, пересекающееся только с самой записью, допустим
	own := testBooking(1, 5, domain.StatusPending)
	bookings := &fakeBookingRepo{
		byID:     map[int64]*domain.Booking{1: own},
		existing: []*domain.Booking{own},
	}

	uc := newTestUseCase(bookings, &fakeServiceRepo{})

	req := validRequest()
	req.Date = own.BookingDate
	req.StartTime = types.TimeString("10:15")

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ConflictWithOtherBooking(t *testing.T) {
	own := testBooking(1, 5, domain.StatusPending)
	other := testBooking(2, 6, domain.StatusConfirmed)
	other.StartTime = types.TimeString("13:00")

	bookings := &fakeBookingRepo{
		byID:     map[int64]*domain.Booking{1: own},
		existing: []*domain.Booking{other},
	}

	uc := newTestUseCase(bookings, &fakeServiceRepo{})

	req := validRequest()
	req.StartTime = types.TimeString("13:30")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	bookings := &fakeBookingRepo{
		byID: map[int64]*domain.Booking{1: testBooking(1, 5, domain.StatusPending)},
	}

	uc := newTestUseCase(bookings, &fakeServiceRepo{})

	req := validRequest()
	req.StartTime = types.TimeString("15:30")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeServiceRepo{})

	req := validRequest()
	req.Date = time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
