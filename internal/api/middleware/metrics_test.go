package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/herlindaapr/beautybook-service/pkg/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New("beautybook-test")

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m, "beautybook-test"))
	router.HandleFunc("/api/v1/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":1}`))
	}).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/services", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	t.Run("passes response through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/42", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1}`, rec.Body.String())
	})

	t.Run("records non-200 status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
