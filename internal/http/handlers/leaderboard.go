package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/torvund/wildskills-backend/internal/http/response"
	"github.com/torvund/wildskills-backend/internal/services"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

func (lh *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	entries, err := lh.leaderboardService.TopUsers(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, entries)
}
