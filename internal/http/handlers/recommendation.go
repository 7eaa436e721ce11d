package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/torvund/wildskills-backend/internal/http/response"
	"github.com/torvund/wildskills-backend/internal/pkg/ctxutil"
	"github.com/torvund/wildskills-backend/internal/services"
)

type RecommendationHandler struct {
	recommendationService services.RecommendationService
}

func NewRecommendationHandler(recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

func (rh *RecommendationHandler) GetRecommendations(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	lessons, scenarios, err := rh.recommendationService.GetRecommendations(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"recommendedLessons":   lessons,
		"recommendedScenarios": scenarios,
	})
}
