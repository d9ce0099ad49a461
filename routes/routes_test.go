package routes

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartstay/config"
	"smartstay/controllers"
	"smartstay/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func newRouter(t *testing.T, origins []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.Open(sqlite.Open(":memory:"), "silent")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() { _ = sqlDB.Close() })

	rooms := services.NewRoomService(db)
	bookings := services.NewBookingService(db, services.WithLocation(time.UTC))
	return SetupRouter(Deps{
		Bookings:    controllers.NewBookingController(bookings, services.NewAvailabilityService(db), rooms),
		Rooms:       controllers.NewRoomController(rooms),
		Hotels:      controllers.NewHotelController(services.NewHotelService(db)),
		Health:      controllers.NewHealthController(db),
		JWTSecret:   "secret",
		CORSOrigins: origins,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestRoutesWiring(t *testing.T) {
	r := newRouter(t, nil)

	cases := []struct {
		method, path string
		status       int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/rooms/search", http.StatusOK},
		{http.MethodGet, "/api/rooms/1", http.StatusNotFound},
		{http.MethodGet, "/api/hotels/1", http.StatusNotFound},
		{http.MethodGet, "/api/bookings", http.StatusUnauthorized},
		{http.MethodPost, "/api/bookings", http.StatusUnauthorized},
		{http.MethodPost, "/api/bookings/BK1/cancel", http.StatusUnauthorized},
		{http.MethodGet, "/api/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.status, w.Code, "%s %s", tc.method, tc.path)
		if tc.path != "/api/nope" {
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "%s %s", tc.method, tc.path)
		}
	}
}

func TestCORS(t *testing.T) {
	r := newRouter(t, []string{"https://app.smartstay.example"})

	req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "https://app.smartstay.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.smartstay.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	assert.Equal(t, []string{"*"}, corsOrigins(nil))
}
