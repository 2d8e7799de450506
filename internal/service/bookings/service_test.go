package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	bookingRepo "github.com/herlindaapr/beautybook-service/internal/infra/storage/booking"
	"github.com/herlindaapr/beautybook-service/internal/service/bookings/models"
	"github.com/herlindaapr/beautybook-service/pkg/ptr"
	"github.com/herlindaapr/beautybook-service/pkg/types"
)

// Фейк репозитория

type fakeBookingRepo struct {
	byID    map[int64]*domain.Booking
	byUser  []*domain.Booking
	counts  map[domain.BookingStatus]int64
	revenue int64

	cancelledID    int64
	cancelReason   string
	updatedID      int64
	updatedStatus  domain.BookingStatus
	updatedNotes   *string
	updatedAdminID *int64
	lastUserStatus *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.lastUserStatus = status
	return f.byUser, nil
}

func (f *fakeBookingRepo) GetAllWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.byUser, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, notes *string, adminID *int64) error {
	f.updatedID = id
	f.updatedStatus = status
	f.updatedNotes = notes
	f.updatedAdminID = adminID
	return nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id int64, reason string) error {
	f.cancelledID = id
	f.cancelReason = reason
	return nil
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	return f.counts, nil
}

func (f *fakeBookingRepo) CompletedRevenue(ctx context.Context) (int64, error) {
	return f.revenue, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

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

// GetByID

func TestGetByID_Access(t *testing.T) {
	repo := &fakeBookingRepo{
		byID: map[int64]*domain.Booking{1: testBooking(1, 5, domain.StatusPending)},
	}
	svc := NewService(repo, nopLogger{})

	tests := []struct {
		name    string
		userID  int64
		isAdmin bool
		wantErr error
	}{
		{"owner can view", 5, false, nil},
		{"admin can view any", 99, true, nil},
		{"stranger denied", 99, false, ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.GetByID(context.Background(), 1, tt.userID, tt.isAdmin)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), resp.ID)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{byID: map[int64]*domain.Booking{}}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404, 5, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// GetUserBookings

func TestGetUserBookings_StatusFilter(t *testing.T) {
	repo := &fakeBookingRepo{byUser: []*domain.Booking{testBooking(1, 5, domain.StatusConfirmed)}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 5,
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastUserStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastUserStatus)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 5,
		Status: ptr.Ptr("in_progress"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Cancel

func TestCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		userID  int64
		isAdmin bool
		wantErr error
	}{
		{"owner cancels pending", domain.StatusPending, 5, false, nil},
		{"owner cancels confirmed", domain.StatusConfirmed, 5, false, nil},
		{"admin cancels someone else's", domain.StatusPending, 99, true, nil},
		{"stranger denied", domain.StatusPending, 99, false, ErrAccessDenied},
		{"completed cannot be cancelled", domain.StatusCompleted, 5, false, ErrCannotCancel},
		{"already cancelled", domain.StatusCancelled, 5, false, ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{
				byID: map[int64]*domain.Booking{1: testBooking(1, 5, tt.status)},
			}
			svc := NewService(repo, nopLogger{})

			err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
				UserID:             tt.userID,
				IsAdmin:            tt.isAdmin,
				CancellationReason: "change of plans",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.cancelledID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), repo.cancelledID)
			assert.Equal(t, "change of plans", repo.cancelReason)
		})
	}
}

// UpdateStatus

func TestUpdateStatus_Workflow(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{"pending to confirmed", domain.StatusPending, "confirmed", nil},
		{"pending to completed", domain.StatusPending, "completed", nil},
		{"pending to cancelled", domain.StatusPending, "cancelled", nil},
		{"confirmed to completed", domain.StatusConfirmed, "completed", nil},
		{"confirmed to pending denied", domain.StatusConfirmed, "pending", ErrInvalidTransition},
		{"completed is terminal", domain.StatusCompleted, "cancelled", ErrInvalidTransition},
		{"cancelled is terminal", domain.StatusCancelled, "pending", ErrInvalidTransition},
		{"self transition denied", domain.StatusPending, "pending", ErrInvalidTransition},
		{"unknown status", domain.StatusPending, "in_progress", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{
				byID: map[int64]*domain.Booking{1: testBooking(1, 5, tt.from)},
			}
			svc := NewService(repo, nopLogger{})

			err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
				AdminID: 10,
				Status:  tt.to,
				Notes:   ptr.Ptr("handled"),
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.updatedID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatus(tt.to), repo.updatedStatus)
			require.NotNil(t, repo.updatedAdminID)
			assert.Equal(t, int64(10), *repo.updatedAdminID)
			require.NotNil(t, repo.updatedNotes)
			assert.Equal(t, "handled", *repo.updatedNotes)
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{byID: map[int64]*domain.Booking{}}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 404, &models.UpdateStatusRequest{
		AdminID: 10,
		Status:  "confirmed",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// GetStats

func TestGetStats(t *testing.T) {
	repo := &fakeBookingRepo{
		counts: map[domain.BookingStatus]int64{
			domain.StatusPending:   3,
			domain.StatusConfirmed: 2,
			domain.StatusCompleted: 7,
			domain.StatusCancelled: 1,
		},
		revenue: 1250000,
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(13), resp.TotalBookings)
	assert.Equal(t, int64(1250000), resp.CompletedRevenue)

	// Статусы идут в порядке workflow
	require.Len(t, resp.ByStatus, 4)
	assert.Equal(t, "pending", resp.ByStatus[0].Status)
	assert.Equal(t, int64(3), resp.ByStatus[0].Count)
	assert.Equal(t, "confirmed", resp.ByStatus[1].Status)
	assert.Equal(t, "completed", resp.ByStatus[2].Status)
	assert.Equal(t, int64(1), resp.ByStatus[3].Count)
}
