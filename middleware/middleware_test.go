package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waste-report-server/config"
	"waste-report-server/types"
	"waste-report-server/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupJWT(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{JWT: config.JWTConfig{Secret: "middleware-secret", ExpiryHours: 1}}
}

func protectedRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"subject_id": c.GetUint(ContextSubjectID),
			"worker_id":  c.GetUint(ContextWorkerID),
			"role":       c.GetString(ContextRole),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	setupJWT(t)
	workerToken, err := utils.GenerateToken(5, "amit@waste.gov", types.RoleWorker)
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(0, "admin@panchayat.gov", types.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", workerToken, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"wrong role", "Bearer " + adminToken, http.StatusForbidden},
		{"worker token", "Bearer " + workerToken, http.StatusOK},
	}

	r := protectedRouter(WorkerOnly())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"worker_id":5`)
				assert.Contains(t, w.Body.String(), `"role":"worker"`)
			}
		})
	}
}

func TestAuthMiddleware_AnyRole(t *testing.T) {
	setupJWT(t)
	token, err := utils.GenerateToken(0, "admin@panchayat.gov", types.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	protectedRouter(AuthMiddleware()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestAuthRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter()
	r := gin.New()
	r.POST("/login", AuthRateLimitMiddleware(rl), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 6)
	for i := 0; i < 6; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{200, 200, 200, 200, 200, 429}, codes)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter()
	rl.GetLimiterWithConfig("a", 1, 1)
	rl.GetLimiterWithConfig("b", 1, 1)
	require.Equal(t, 2, rl.Len())

	rl.Cleanup(time.Hour)
	assert.Equal(t, 2, rl.Len())

	rl.Cleanup(-time.Second)
	assert.Equal(t, 0, rl.Len())
}

func TestInputValidationMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(InputValidationMiddleware(64))
	r.POST("/echo", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 65)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSecurityHeadersAndCORS(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeadersMiddleware(), CORSMiddleware([]string{"http://localhost:3000"}))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
