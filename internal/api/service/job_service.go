package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"joblink"
	"joblink/internal/api/handler/request"
	"joblink/internal/api/models"
	"joblink/internal/api/repo"
	"joblink/internal/apperrors"
	"joblink/internal/events"
	"joblink/internal/kvstore"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type JobService struct {
	jobs   *repo.JobRepository
	users  *repo.UserRepository
	events *events.Publisher
	config joblink.AppConfig
	logger zerolog.Logger
}

func NewJobService(jobs *repo.JobRepository, users *repo.UserRepository, publisher *events.Publisher) *JobService {
	return &JobService{
		jobs:   jobs,
		users:  users,
		events: publisher,
		config: joblink.GetConfig(),
		logger: joblink.Logger,
	}
}

// Create posts a new job for the authenticated employer.
func (slf *JobService) Create(ctx context.Context, employerID string, dto request.CreateJobDTO) (models.Job, error) {
	employer, err := slf.requireEmployer(ctx, employerID)
	if err != nil {
		return models.Job{}, err
	}

	category := models.JobCategory(dto.Category)
	if !category.Valid() {
		return models.Job{}, apperrors.Validation("unknown job category: " + dto.Category)
	}

	salaryPeriod := models.SalaryPeriod(dto.SalaryPeriod)
	if dto.SalaryPeriod == "" {
		salaryPeriod = models.SalaryPeriodMonthly
	}
	jobType := dto.Type
	if jobType == "" {
		jobType = "Full-time"
	}
	requirements := dto.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	job := models.Job{
		ID:           uuid.NewString(),
		EmployerID:   employer.ID,
		Title:        dto.Title,
		Description:  dto.Description,
		Location:     dto.Location,
		Salary:       dto.Salary,
		SalaryPeriod: salaryPeriod,
		Category:     category,
		Type:         jobType,
		PostedTime:   time.Now(),
		Status:       models.JobStatusActive,
		Requirements: requirements,
	}
	if err := slf.jobs.Create(ctx, &job); err != nil {
		return models.Job{}, apperrors.Internal(err)
	}

	slf.events.JobPosted(&job)
	slf.logger.Info().Str("jobId", job.ID).Str("employerId", employer.ID).Msg("job posted")

	job.Company = employer.DisplayCompany()
	return job, nil
}

// List returns active jobs, newest first, optionally narrowed by a
// case-insensitive search over title and description and by category.
// Category "All" (or empty) matches everything.
func (slf *JobService) List(ctx context.Context, search, category string) ([]models.Job, error) {
	all, err := slf.jobs.All(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	jobs := make([]models.Job, 0, len(all))
	for _, job := range all {
		if job.Status != models.JobStatusActive {
			continue
		}
		if category != "" && category != models.CategoryAll && string(job.Category) != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(job.Title), needle) &&
			!strings.Contains(strings.ToLower(job.Description), needle) {
			continue
		}
		jobs = append(jobs, job)
	}

	sortJobsNewestFirst(jobs)
	slf.joinCompanies(ctx, jobs)
	return jobs, nil
}

// Get returns a single job with the employer's public contact details
// joined in, regardless of status.
func (slf *JobService) Get(ctx context.Context, jobID string) (models.Job, error) {
	job, err := slf.jobs.FindByID(ctx, jobID)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return models.Job{}, apperrors.NotFound("Job")
		}
		return models.Job{}, apperrors.Internal(err)
	}

	employer, err := slf.users.FindByID(ctx, job.EmployerID)
	if err == nil {
		job.Company = employer.DisplayCompany()
		job.EmployerEmail = employer.Email
		job.EmployerPhone = employer.Phone
	} else {
		job.Company = (&models.User{}).DisplayCompany()
	}
	return job, nil
}

// Update patches a job's listing fields. Only the posting employer may
// update, and identity fields (id, employerId, postedTime, status,
// applicantCount) are never touched here.
func (slf *JobService) Update(ctx context.Context, jobID, requesterID string, dto request.UpdateJobDTO) (models.Job, error) {
	job, err := slf.ownedJob(ctx, jobID, requesterID)
	if err != nil {
		return models.Job{}, err
	}

	if dto.Title != nil {
		job.Title = *dto.Title
	}
	if dto.Description != nil {
		job.Description = *dto.Description
	}
	if dto.Location != nil {
		job.Location = *dto.Location
	}
	if dto.Salary != nil {
		job.Salary = *dto.Salary
	}
	if dto.SalaryPeriod != nil {
		job.SalaryPeriod = models.SalaryPeriod(*dto.SalaryPeriod)
	}
	if dto.Category != nil {
		category := models.JobCategory(*dto.Category)
		if !category.Valid() {
			return models.Job{}, apperrors.Validation("unknown job category: " + *dto.Category)
		}
		job.Category = category
	}
	if dto.Type != nil {
		job.Type = *dto.Type
	}
	if dto.Requirements != nil {
		job.Requirements = dto.Requirements
	}

	if err := slf.jobs.Update(ctx, &job); err != nil {
		return models.Job{}, apperrors.Internal(err)
	}
	return job, nil
}

// Close moves an active job to closed. Closed is terminal.
func (slf *JobService) Close(ctx context.Context, jobID, requesterID string) (models.Job, error) {
	if !slf.config.Features.JobClose {
		return models.Job{}, apperrors.NotFound("Route")
	}

	job, err := slf.ownedJob(ctx, jobID, requesterID)
	if err != nil {
		return models.Job{}, err
	}
	if job.Status != models.JobStatusActive {
		return models.Job{}, apperrors.InvalidStatus("job is already closed")
	}

	job.Status = models.JobStatusClosed
	if err := slf.jobs.Update(ctx, &job); err != nil {
		return models.Job{}, apperrors.Internal(err)
	}

	slf.logger.Info().Str("jobId", job.ID).Msg("job closed")
	return job, nil
}

// ListByEmployer returns the employer's own postings, newest first, with
// applicantCount recomputed from the applicant index so the dashboard
// never shows a stale counter.
func (slf *JobService) ListByEmployer(ctx context.Context, employerID string) ([]models.Job, error) {
	ids, err := slf.jobs.IDsByEmployer(ctx, employerID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	jobs, err := slf.jobs.FindMany(ctx, ids)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	for i := range jobs {
		applicantIDs, err := slf.jobs.ApplicantIDs(ctx, jobs[i].ID)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		jobs[i].ApplicantCount = len(applicantIDs)
	}

	sortJobsNewestFirst(jobs)
	return jobs, nil
}

func (slf *JobService) ownedJob(ctx context.Context, jobID, requesterID string) (models.Job, error) {
	job, err := slf.jobs.FindByID(ctx, jobID)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return models.Job{}, apperrors.NotFound("Job")
		}
		return models.Job{}, apperrors.Internal(err)
	}
	if job.EmployerID != requesterID {
		return models.Job{}, apperrors.Forbidden("Not allowed to modify this job")
	}
	return job, nil
}

func (slf *JobService) requireEmployer(ctx context.Context, userID string) (models.User, error) {
	user, err := slf.users.FindByID(ctx, userID)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return models.User{}, apperrors.Unauthorized("unknown user")
		}
		return models.User{}, apperrors.Internal(err)
	}
	if user.UserType != models.UserTypeEmployer {
		return models.User{}, apperrors.Forbidden("Only employer accounts can post jobs")
	}
	return user, nil
}

// joinCompanies fills the read-time Company field, fetching each distinct
// employer once.
func (slf *JobService) joinCompanies(ctx context.Context, jobs []models.Job) {
	cache := make(map[string]string)
	for i := range jobs {
		company, ok := cache[jobs[i].EmployerID]
		if !ok {
			employer, err := slf.users.FindByID(ctx, jobs[i].EmployerID)
			if err != nil {
				employer = models.User{}
			}
			company = employer.DisplayCompany()
			cache[jobs[i].EmployerID] = company
		}
		jobs[i].Company = company
	}
}

func sortJobsNewestFirst(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].PostedTime.After(jobs[j].PostedTime)
	})
}
