package routes

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"waste-report-server/models"
	"waste-report-server/services"
)

type complaintHandler struct {
	svc *services.ComplaintService
}

type submitComplaintRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// submit accepts multipart (with an optional photo field) or JSON bodies
func (h *complaintHandler) submit(c *gin.Context) {
	input := services.SubmitComplaintInput{}

	if strings.Contains(c.ContentType(), "application/json") {
		var req submitComplaintRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Body must be a JSON object with title, description and location")
			return
		}
		input.Title, input.Description, input.Location = req.Title, req.Description, req.Location
	} else {
		input.Title = c.PostForm("title")
		input.Description = c.PostForm("description")
		input.Location = c.PostForm("location")

		photo, closePhoto, err := photoFromForm(c, "photo")
		if err != nil {
			badRequest(c, "Invalid form data", "photo")
			return
		}
		defer closePhoto()
		input.Photo = photo
	}

	complaint, err := h.svc.Submit(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Complaint submitted successfully",
		"data":    complaint,
	})
}

func (h *complaintHandler) list(c *gin.Context) {
	input, ok := listInput(c)
	if !ok {
		return
	}

	page, err := h.svc.List(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": page})
}

func (h *complaintHandler) get(c *gin.Context) {
	complaint, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": complaint})
}

// listInput parses status, order, page, limit and overdue query parameters
func listInput(c *gin.Context) (services.ListComplaintsInput, bool) {
	input := services.ListComplaintsInput{
		Status: models.ComplaintStatus(c.Query("status")),
	}

	switch c.DefaultQuery("order", "desc") {
	case "asc":
		input.Ascending = true
	case "desc":
	default:
		badRequest(c, "order must be asc or desc", "order")
		return input, false
	}

	var err error
	if v := c.Query("page"); v != "" {
		if input.Page, err = strconv.Atoi(v); err != nil || input.Page < 1 {
			badRequest(c, "page must be a positive integer", "page")
			return input, false
		}
	}
	if v := c.Query("limit"); v != "" {
		if input.Limit, err = strconv.Atoi(v); err != nil || input.Limit < 1 {
			badRequest(c, "limit must be a positive integer", "limit")
			return input, false
		}
	}
	if v := c.Query("overdue"); v != "" {
		if input.OverdueOnly, err = strconv.ParseBool(v); err != nil {
			badRequest(c, "overdue must be true or false", "overdue")
			return input, false
		}
	}
	return input, true
}
