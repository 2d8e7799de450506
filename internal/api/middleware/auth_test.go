package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name        string
		userID      string
		role        string
		wantStatus  int
		wantUserID  int64
		wantIsAdmin bool
	}{
		{"customer", "5", "", http.StatusOK, 5, false},
		{"admin", "10", "admin", http.StatusOK, 10, true},
		{"unknown role is not admin", "5", "manager", http.StatusOK, 5, false},
		{"missing header", "", "", http.StatusUnauthorized, 0, false},
		{"non-numeric id", "abc", "", http.StatusUnauthorized, 0, false},
		{"non-positive id", "0", "", http.StatusUnauthorized, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			var gotIsAdmin bool
			called := false

			handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotUserID, _ = GetUserID(r.Context())
				gotIsAdmin = IsAdmin(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
			}
			if tt.role != "" {
				req.Header.Set("X-User-Role", tt.role)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.False(t, called)
				return
			}

			require.True(t, called)
			assert.Equal(t, tt.wantUserID, gotUserID)
			assert.Equal(t, tt.wantIsAdmin, gotIsAdmin)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	protected := Auth(AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
		req.Header.Set("X-User-ID", "10")
		req.Header.Set("X-User-Role", "admin")

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
		req.Header.Set("X-User-ID", "5")

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
