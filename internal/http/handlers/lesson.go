package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/http/response"
	"github.com/torvund/wildskills-backend/internal/services"
)

type LessonHandler struct {
	lessonService services.LessonService
}

func NewLessonHandler(lessonService services.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

type lessonRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	MediaType  string `json:"mediaType"`
	MediaURL   string `json:"mediaUrl"`
	Difficulty int    `json:"difficulty"`
}

func (lh *LessonHandler) ListLessons(c *gin.Context) {
	lessons, err := lh.lessonService.ListLessons(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, lessons)
}

func (lh *LessonHandler) CreateLesson(c *gin.Context) {
	var req lessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	lesson := types.Lesson{
		Title:      req.Title,
		Content:    req.Content,
		MediaType:  req.MediaType,
		MediaURL:   req.MediaURL,
		Difficulty: req.Difficulty,
	}
	created, err := lh.lessonService.CreateLesson(c.Request.Context(), &lesson)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (lh *LessonHandler) UpdateLesson(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req lessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	lesson := types.Lesson{
		ID:         lessonID,
		Title:      req.Title,
		Content:    req.Content,
		MediaType:  req.MediaType,
		MediaURL:   req.MediaURL,
		Difficulty: req.Difficulty,
	}
	updated, err := lh.lessonService.UpdateLesson(c.Request.Context(), &lesson)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, updated)
}

func (lh *LessonHandler) DeleteLesson(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := lh.lessonService.DeleteLesson(c.Request.Context(), lessonID); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}
