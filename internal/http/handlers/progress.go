package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/http/response"
	"github.com/torvund/wildskills-backend/internal/pkg/ctxutil"
	"github.com/torvund/wildskills-backend/internal/services"
)

type ProgressHandler struct {
	progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (ph *ProgressHandler) GetUserProgress(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	records, err := ph.progressService.GetScenarioProgress(c.Request.Context(), userID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, records)
}

// RecordScenarioAttempt stores an attempt for the authenticated user; the
// identity comes from the verified token, never from the body.
func (ph *ProgressHandler) RecordScenarioAttempt(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	var req struct {
		ScenarioID uuid.UUID `json:"scenarioId"`
		ChoiceID   uuid.UUID `json:"choiceId"`
		Outcome    string    `json:"outcome"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	attempt := types.ScenarioProgress{
		UserID:     rd.UserID,
		ScenarioID: req.ScenarioID,
		ChoiceID:   req.ChoiceID,
		Outcome:    req.Outcome,
	}
	created, err := ph.progressService.RecordScenarioAttempt(c.Request.Context(), &attempt)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (ph *ProgressHandler) RecordLessonCompletion(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	var req struct {
		LessonID uuid.UUID `json:"lessonId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	record := types.LessonProgress{
		UserID:   rd.UserID,
		LessonID: req.LessonID,
	}
	created, err := ph.progressService.RecordLessonCompletion(c.Request.Context(), &record)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (ph *ProgressHandler) RecordQuizScore(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	var req struct {
		Score float64 `json:"score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	score := types.QuizScore{
		UserID: rd.UserID,
		Score:  req.Score,
	}
	created, err := ph.progressService.RecordQuizScore(c.Request.Context(), &score)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, created)
}
