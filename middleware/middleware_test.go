package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	userRepo "github.com/komo3344/airbnb-backend/database/repository/user"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestJWTAuthUserMiddleware(t *testing.T) {
	repo := userRepo.NewMemoryUserRepo()
	ctx := context.Background()
	if err := repo.Create(ctx, &models.User{ID: "u1", Username: "komo", Email: "komo@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	current, err := utils.GenerateToken("u1", "komo", time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if err := repo.UpdateTokenHash(ctx, "u1", utils.HashToken(current)); err != nil {
		t.Fatalf("store hash: %v", err)
	}
	stale, _ := utils.GenerateToken("u1", "komo", 2*time.Hour)
	expired, _ := utils.GenerateToken("u1", "komo", -time.Minute)
	stranger, _ := utils.GenerateToken("nobody", "ghost", time.Hour)

	r := gin.New()
	r.GET("/me", JWTAuthUserMiddleware(repo, nil), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUserID(c))
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"current token", "Bearer " + current, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + current, http.StatusUnauthorized},
		{"superseded token", "Bearer " + stale, http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"unknown user", "Bearer " + stranger, http.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.status, w.Body.String())
			}
			if tt.status == http.StatusOK && w.Body.String() != "u1" {
				t.Fatalf("userID = %q", w.Body.String())
			}
		})
	}

	// Logging out clears the hash and the same token stops working.
	if err := repo.UpdateTokenHash(ctx, "u1", ""); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+current)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token accepted: %d", w.Code)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(3))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}
	for i := 0; i < 3; i++ {
		if code := do("10.0.0.1"); code != http.StatusNoContent {
			t.Fatalf("request %d: status %d", i, code)
		}
	}
	if code := do("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if code := do("10.0.0.2"); code != http.StatusNoContent {
		t.Fatalf("other client limited: %d", code)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.9:5000", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "10.0.0.9:5000", "198.51.100.4"},
		{"bogus header", map[string]string{"X-Forwarded-For": "unknown"}, "10.0.0.9:5000", "10.0.0.9"},
		{"peer only", nil, "192.0.2.1:1234", "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			if got := getClientIP(c); got != tt.want {
				t.Fatalf("getClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		if _, ok := c.Get("logger"); !ok {
			t.Error("logger not stored on context")
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "req-42" {
		t.Fatalf("X-Request-ID = %q", got)
	}
}
