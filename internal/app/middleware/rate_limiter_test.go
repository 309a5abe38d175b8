package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestTokenBucketAllow(t *testing.T) {
	// taxa baixa para não reabastecer durante o teste
	bucket := NewTokenBucket(0.001, 3)

	for i := 0; i < 3; i++ {
		if !bucket.Allow() {
			t.Fatalf("requisição %d dentro do burst deveria passar", i+1)
		}
	}
	if bucket.Allow() {
		t.Fatal("requisição acima do burst deveria ser bloqueada")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/limitada", RateLimiter(RateLimiterConfig{
		Rate:      0.001,
		Burst:     2,
		LimitType: "path",
	}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/limitada", nil))
		if recorder.Code != http.StatusOK {
			t.Fatalf("requisição %d deveria passar, status %d", i+1, recorder.Code)
		}
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/limitada", nil))
	if recorder.Code != http.StatusTooManyRequests {
		t.Fatalf("status esperado 429, obtido %d", recorder.Code)
	}
}
