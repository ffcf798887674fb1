package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-report-server/middleware"
	"waste-report-server/services"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

type assignRequest struct {
	WorkerID uint `json:"worker_id" binding:"required"`
}

type deadlineRequest struct {
	Deadline string `json:"deadline" binding:"required"`
}

type adminHandler struct {
	complaints *services.ComplaintService
	auth       *services.AuthService
}

// RegisterAdminRoutes registers the panchayat admin endpoints
func RegisterAdminRoutes(router *gin.RouterGroup, deps Dependencies, limiter *middleware.RateLimiter) {
	h := &adminHandler{complaints: deps.Complaints, auth: deps.Auth}

	admin := router.Group("/admin")
	admin.POST("/auth/login", middleware.AuthRateLimitMiddleware(limiter), h.login)

	protected := admin.Group("")
	protected.Use(middleware.AdminOnly())
	{
		protected.GET("/dashboard", h.dashboard)
		protected.GET("/complaints", h.listComplaints)
		protected.GET("/workers", h.listWorkers)
		protected.PATCH("/complaints/:id/assign", h.assign)
		protected.PATCH("/complaints/:id/deadline", h.setDeadline)
	}
}

func (h *adminHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email is required", "email")
		return
	}

	result, err := h.auth.AdminLogin(c.Request.Context(), req.Email, req.Password)
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

func (h *adminHandler) dashboard(c *gin.Context) {
	dashboard, err := h.complaints.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dashboard})
}

func (h *adminHandler) listComplaints(c *gin.Context) {
	input, ok := listInput(c)
	if !ok {
		return
	}
	page, err := h.complaints.List(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": page})
}

func (h *adminHandler) listWorkers(c *gin.Context) {
	workers, err := h.complaints.ListWorkers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": workers})
}

func (h *adminHandler) assign(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "worker_id is required", "worker_id")
		return
	}

	complaint, err := h.complaints.AssignWorker(c.Request.Context(), c.Param("id"), req.WorkerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Worker assigned successfully",
		"data":    complaint,
	})
}

func (h *adminHandler) setDeadline(c *gin.Context) {
	var req deadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "deadline is required", "deadline")
		return
	}
	deadline, err := services.ParseDeadline(req.Deadline)
	if err != nil {
		respondError(c, err)
		return
	}

	complaint, err := h.complaints.SetDeadline(c.Request.Context(), c.Param("id"), deadline)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Deadline set successfully",
		"data":    complaint,
	})
}
