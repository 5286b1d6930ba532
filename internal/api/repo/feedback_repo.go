package repo

import (
	"context"

	"joblink/internal/api/models"
	"joblink/internal/kvstore"
)

type FeedbackRepository struct {
	store kvstore.Store
}

func NewFeedbackRepository(store kvstore.Store) *FeedbackRepository {
	return &FeedbackRepository{store: store}
}

func (slf *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	return slf.store.Set(ctx, FeedbackKey(feedback.ID), feedback)
}

func (slf *FeedbackRepository) All(ctx context.Context) ([]models.Feedback, error) {
	raws, err := slf.store.GetByPrefix(ctx, "feedback:")
	if err != nil {
		return nil, err
	}
	return kvstore.DecodeAll[models.Feedback](raws)
}
