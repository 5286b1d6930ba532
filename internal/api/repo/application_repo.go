package repo

import (
	"context"

	"joblink/internal/api/models"
	"joblink/internal/kvstore"
)

type ApplicationRepository struct {
	store kvstore.Store
}

func NewApplicationRepository(store kvstore.Store) *ApplicationRepository {
	return &ApplicationRepository{store: store}
}

func (slf *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	return slf.store.Set(ctx, ApplicationKey(app.ID), app)
}

func (slf *ApplicationRepository) FindByID(ctx context.Context, id string) (models.Application, error) {
	var app models.Application
	err := slf.store.Get(ctx, ApplicationKey(id), &app)
	return app, err
}

func (slf *ApplicationRepository) Update(ctx context.Context, app *models.Application) error {
	return slf.store.Set(ctx, ApplicationKey(app.ID), app)
}

// AppendToUserIndex records the application in its submitter's index.
func (slf *ApplicationRepository) AppendToUserIndex(ctx context.Context, userID, appID string) error {
	_, err := appendToIndex(ctx, slf.store, UserApplicationsKey(userID), appID)
	return err
}

// AttachToJob appends the application to the job's applicant index and,
// under the same lock, rewrites the job record with ApplicantCount equal
// to the new index length. Keeping both writes inside one critical
// section is what preserves applicantCount == |index|.
func (slf *ApplicationRepository) AttachToJob(ctx context.Context, jobID, appID string) (int, error) {
	key := JobApplicantsKey(jobID)
	defer indexLocks.Lock(key).Unlock()

	ids, err := readIndex(ctx, slf.store, key)
	if err != nil {
		return 0, err
	}
	ids = append(ids, appID)
	if err := slf.store.Set(ctx, key, ids); err != nil {
		return 0, err
	}

	var job models.Job
	if err := slf.store.Get(ctx, JobKey(jobID), &job); err != nil {
		return 0, err
	}
	job.ApplicantCount = len(ids)
	if err := slf.store.Set(ctx, JobKey(jobID), &job); err != nil {
		return 0, err
	}

	return len(ids), nil
}

func (slf *ApplicationRepository) IDsByUser(ctx context.Context, userID string) ([]string, error) {
	return readIndex(ctx, slf.store, UserApplicationsKey(userID))
}

func (slf *ApplicationRepository) FindMany(ctx context.Context, ids []string) ([]models.Application, error) {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, ApplicationKey(id))
	}

	raws, err := slf.store.MGet(ctx, keys)
	if err != nil {
		return nil, err
	}
	return kvstore.DecodeAll[models.Application](raws)
}

// ExistsForUserAndJob reports whether the user already applied to the job.
func (slf *ApplicationRepository) ExistsForUserAndJob(ctx context.Context, userID, jobID string) (bool, error) {
	ids, err := slf.IDsByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	if len(ids) == 0 {
		return false, nil
	}

	apps, err := slf.FindMany(ctx, ids)
	if err != nil {
		return false, err
	}
	for _, app := range apps {
		if app.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}
