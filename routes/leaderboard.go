package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-report-server/services"
)

type leaderboardHandler struct {
	svc *services.LeaderboardService
}

func (h *leaderboardHandler) get(c *gin.Context) {
	order, err := services.ParseLeaderboardOrder(c.Query("order"))
	if err != nil {
		respondError(c, err)
		return
	}

	board, err := h.svc.Get(c.Request.Context(), order)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": board})
}
