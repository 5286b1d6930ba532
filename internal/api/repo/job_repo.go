package repo

import (
	"context"

	"joblink/internal/api/models"
	"joblink/internal/kvstore"
)

type JobRepository struct {
	store kvstore.Store
}

func NewJobRepository(store kvstore.Store) *JobRepository {
	return &JobRepository{store: store}
}

// Create persists the job record and appends its id to the owning
// employer's job index.
func (slf *JobRepository) Create(ctx context.Context, job *models.Job) error {
	if err := slf.store.Set(ctx, JobKey(job.ID), job); err != nil {
		return err
	}
	_, err := appendToIndex(ctx, slf.store, EmployerJobsKey(job.EmployerID), job.ID)
	return err
}

func (slf *JobRepository) FindByID(ctx context.Context, id string) (models.Job, error) {
	var job models.Job
	err := slf.store.Get(ctx, JobKey(id), &job)
	return job, err
}

func (slf *JobRepository) Update(ctx context.Context, job *models.Job) error {
	return slf.store.Set(ctx, JobKey(job.ID), job)
}

// All scans every job record. The "job:" prefix also matches applicant
// index lists ("job:<id>:applicants"), which serialize as JSON arrays —
// those are skipped by shape.
func (slf *JobRepository) All(ctx context.Context) ([]models.Job, error) {
	raws, err := slf.store.GetByPrefix(ctx, "job:")
	if err != nil {
		return nil, err
	}

	records := raws[:0]
	for _, raw := range raws {
		if len(raw) > 0 && raw[0] == '{' {
			records = append(records, raw)
		}
	}

	return kvstore.DecodeAll[models.Job](records)
}

func (slf *JobRepository) IDsByEmployer(ctx context.Context, employerID string) ([]string, error) {
	return readIndex(ctx, slf.store, EmployerJobsKey(employerID))
}

func (slf *JobRepository) FindMany(ctx context.Context, ids []string) ([]models.Job, error) {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, JobKey(id))
	}

	raws, err := slf.store.MGet(ctx, keys)
	if err != nil {
		return nil, err
	}
	return kvstore.DecodeAll[models.Job](raws)
}

// ApplicantIDs returns the application ids submitted to a job, in
// submission order.
func (slf *JobRepository) ApplicantIDs(ctx context.Context, jobID string) ([]string, error) {
	return readIndex(ctx, slf.store, JobApplicantsKey(jobID))
}
