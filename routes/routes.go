package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"

	"waste-report-server/config"
	"waste-report-server/middleware"
	"waste-report-server/services"
	"waste-report-server/websocket"
)

// Dependencies are the services the HTTP layer dispatches to
type Dependencies struct {
	Config      *config.Config
	Complaints  *services.ComplaintService
	Leaderboard *services.LeaderboardService
	Auth        *services.AuthService
	Hub         *websocket.Hub
	RateLimiter *middleware.RateLimiter
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.DefaultRateLimiter
	}

	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(deps.Config.CORS.AllowedOrigins))
	router.Use(middleware.AuditLogMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	// Multipart bodies carry a photo plus form fields
	maxBody := deps.Config.Photos.MaxBytes + 1<<20

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(limiter), middleware.InputValidationMiddleware(maxBody))
	{
		complaints := &complaintHandler{svc: deps.Complaints}
		api.POST("/complaints", complaints.submit)
		api.GET("/complaints", complaints.list)
		api.GET("/complaints/:id", complaints.get)

		board := &leaderboardHandler{svc: deps.Leaderboard}
		api.GET("/leaderboard", board.get)

		if deps.Hub != nil {
			upgrader := websocket.NewUpgrader(deps.Config.CORS.AllowedOrigins)
			api.GET("/ws/events", eventStream(deps.Hub, upgrader))
		}

		RegisterAdminRoutes(api, deps, limiter)
		RegisterWorkerRoutes(api, deps, limiter)
	}
}

func eventStream(hub *websocket.Hub, upgrader gorillaws.Upgrader) gin.HandlerFunc {
	return func(c *gin.Context) {
		websocket.ServeWebSocket(hub, upgrader, c.Writer, c.Request)
	}
}
