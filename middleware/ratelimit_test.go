package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"smartstay/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/bookings", RateLimit(config.RateLimitConfig{Enabled: true, Capacity: 1}, nil, nil), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
	}
}

func TestRateKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/bookings", nil)
	c.Request.RemoteAddr = "203.0.113.9:5555"

	assert.Equal(t, "rl:ip:203.0.113.9", rateKey("rl", c))

	c.Set(userIDKey, uint(42))
	assert.Equal(t, "rl:user:42", rateKey("rl", c))
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 0, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(1))
	assert.Equal(t, 6, retryAfterSeconds(5001))
	assert.Equal(t, 0, retryAfterSeconds(-300))
	assert.EqualValues(t, 3, asInt64("3"))
	assert.EqualValues(t, 2, asInt64(int64(2)))
}
