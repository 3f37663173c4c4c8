package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"taskmanager/pkg/telemetry"
)

func newTestRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.RateLimitMiddleware())

	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}

func TestNewRateLimiter(t *testing.T) {
	RegisterTestingT(t)

	rl := NewRateLimiter(zap.NewNop(), telemetry.NewAppMetrics(prometheus.NewRegistry()))

	Expect(rl).ToNot(BeNil())
	Expect(rl.cache).ToNot(BeNil())
	Expect(rl.config).ToNot(BeNil())
}

func TestRateLimitMiddleware_AllowedRequests(t *testing.T) {
	RegisterTestingT(t)

	rl := NewRateLimiter(zap.NewNop(), telemetry.NewAppMetrics(prometheus.NewRegistry()))
	router := newTestRouter(rl)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(200))
		Expect(w.Header().Get("X-RateLimit-Limit")).ToNot(BeEmpty())
		Expect(w.Header().Get("X-RateLimit-Remaining")).ToNot(BeEmpty())
	}
}

func TestRateLimitMiddleware_ExceedLimit(t *testing.T) {
	RegisterTestingT(t)

	rl := NewRateLimiter(zap.NewNop(), telemetry.NewAppMetrics(prometheus.NewRegistry()))
	rl.SetConfig("GET /test", RateLimitEndpointConfig{
		Requests: 3,
		Window:   time.Minute,
		KeyFunc:  GetClientIP,
	})

	router := newTestRouter(rl)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)

		if i < 3 {
			Expect(w.Code).To(Equal(200))
		} else {
			Expect(w.Code).To(Equal(http.StatusTooManyRequests))
		}
	}
}
