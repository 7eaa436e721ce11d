package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/torvund/wildskills-backend/internal/http/response"
	"github.com/torvund/wildskills-backend/internal/pkg/ctxutil"
	"github.com/torvund/wildskills-backend/internal/services"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (ph *ProfileHandler) GetProfile(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	user, stats, err := ph.profileService.GetProfile(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"user": user,
		"progress": gin.H{
			"completedLessons":   stats.CompletedLessons,
			"completedScenarios": stats.CompletedScenarios,
			"averageQuizScore":   stats.AvgQuizScore,
		},
	})
}
