package service

import (
	"context"
	"time"

	"joblink"
	"joblink/internal/api/handler/request"
	"joblink/internal/api/models"
	"joblink/internal/api/repo"
	"joblink/internal/apperrors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type FeedbackService struct {
	feedback *repo.FeedbackRepository
	logger   zerolog.Logger
}

func NewFeedbackService(feedback *repo.FeedbackRepository) *FeedbackService {
	return &FeedbackService{
		feedback: feedback,
		logger:   joblink.Logger,
	}
}

// Submit stores a piece of platform feedback. UserID is optional so the
// form also works for anonymous visitors.
func (slf *FeedbackService) Submit(ctx context.Context, dto request.FeedbackDTO) (models.Feedback, error) {
	feedback := models.Feedback{
		ID:        uuid.NewString(),
		UserID:    dto.UserID,
		Rating:    dto.Rating,
		Message:   dto.Message,
		CreatedAt: time.Now(),
	}
	if err := slf.feedback.Create(ctx, &feedback); err != nil {
		return models.Feedback{}, apperrors.Internal(err)
	}

	slf.logger.Info().Int("rating", feedback.Rating).Msg("feedback received")
	return feedback, nil
}
