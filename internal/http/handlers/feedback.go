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

type FeedbackHandler struct {
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

func (fh *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	var req struct {
		ContentType string    `json:"contentType"`
		ContentID   uuid.UUID `json:"contentId"`
		Rating      int       `json:"rating"`
		Comment     string    `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	fb := types.Feedback{
		UserID:      rd.UserID,
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}
	created, err := fh.feedbackService.SubmitFeedback(c.Request.Context(), &fb)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, created)
}
