package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-report-server/middleware"
	"waste-report-server/services"
)

type workerHandler struct {
	complaints *services.ComplaintService
	auth       *services.AuthService
}

// RegisterWorkerRoutes registers the field worker endpoints
func RegisterWorkerRoutes(router *gin.RouterGroup, deps Dependencies, limiter *middleware.RateLimiter) {
	h := &workerHandler{complaints: deps.Complaints, auth: deps.Auth}

	worker := router.Group("/worker")
	worker.POST("/auth/login", middleware.AuthRateLimitMiddleware(limiter), h.login)

	protected := worker.Group("")
	protected.Use(middleware.WorkerOnly())
	{
		protected.GET("/tasks", h.tasks)
		protected.POST("/tasks/:id/resolve", h.resolve)
	}
}

func (h *workerHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email is required", "email")
		return
	}

	result, err := h.auth.WorkerLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    result,
	})
}

func (h *workerHandler) tasks(c *gin.Context) {
	workerID := c.GetUint(middleware.ContextWorkerID)

	summary, err := h.complaints.WorkerTasks(c.Request.Context(), workerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

func (h *workerHandler) resolve(c *gin.Context) {
	workerID := c.GetUint(middleware.ContextWorkerID)

	photo, closePhoto, err := photoFromForm(c, "after_photo")
	if err != nil {
		badRequest(c, "Invalid form data", "after_photo")
		return
	}
	defer closePhoto()

	complaint, err := h.complaints.MarkResolved(c.Request.Context(), c.Param("id"), workerID, photo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Complaint marked as resolved",
		"data":    complaint,
	})
}
