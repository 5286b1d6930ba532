package endpoints

import (
	"net/http"

	"joblink"
	"joblink/internal/api/handler/request"
	"joblink/internal/api/handler/response"
	"joblink/internal/api/service"
	"joblink/internal/apperrors"
	"joblink/pkg"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type feedbackHandler struct {
	feedbackService *service.FeedbackService
	logger          zerolog.Logger
}

func FeedbackHandler(router *graceful.Graceful, feedbackService *service.FeedbackService) {
	h := &feedbackHandler{
		feedbackService: feedbackService,
		logger:          joblink.Logger,
	}

	public := router.Group("/api/v1")
	{
		public.POST("/feedback", h.submit)
	}
}

func (slf *feedbackHandler) submit(c *gin.Context) {
	var feedbackDTO request.FeedbackDTO
	if err := pkg.ParseAndValidate(c, &feedbackDTO); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating feedback DTO")
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	feedback, err := slf.feedbackService.Submit(c.Request.Context(), feedbackDTO)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FeedbackResponse{Success: true, Feedback: feedback})
}
