package service

import (
	"context"
	"sort"
	"time"

	"joblink"
	"joblink/internal/api/handler/request"
	"joblink/internal/api/models"
	"joblink/internal/api/repo"
	"joblink/internal/apperrors"
	"joblink/internal/email"
	"joblink/internal/events"
	"joblink/internal/kvstore"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ApplicationService struct {
	applications *repo.ApplicationRepository
	jobs         *repo.JobRepository
	users        *repo.UserRepository
	events       *events.Publisher
	notifier     *email.Notifier
	config       joblink.AppConfig
	logger       zerolog.Logger
}

func NewApplicationService(
	applications *repo.ApplicationRepository,
	jobs *repo.JobRepository,
	users *repo.UserRepository,
	publisher *events.Publisher,
	notifier *email.Notifier,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		users:        users,
		events:       publisher,
		notifier:     notifier,
		config:       joblink.GetConfig(),
		logger:       joblink.Logger,
	}
}

// Submit files an application for the authenticated job seeker. The job
// title and company are snapshotted onto the application so the seeker's
// history survives later edits to the posting.
func (slf *ApplicationService) Submit(ctx context.Context, userID string, dto request.SubmitApplicationDTO) (models.Application, error) {
	user, err := slf.users.FindByID(ctx, userID)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return models.Application{}, apperrors.Unauthorized("unknown user")
		}
		return models.Application{}, apperrors.Internal(err)
	}
	if user.UserType != models.UserTypeJobseeker {
		return models.Application{}, apperrors.Forbidden("Only job seeker accounts can apply to jobs")
	}

	job, err := slf.jobs.FindByID(ctx, dto.JobID)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return models.Application{}, apperrors.NotFound("Job")
		}
		return models.Application{}, apperrors.Internal(err)
	}
	if job.Status != models.JobStatusActive {
		return models.Application{}, apperrors.InvalidStatus("job is no longer accepting applications")
	}

	if slf.config.Features.RejectDuplicateApps {
		exists, err := slf.applications.ExistsForUserAndJob(ctx, userID, job.ID)
		if err != nil {
			return models.Application{}, apperrors.Internal(err)
		}
		if exists {
			return models.Application{}, apperrors.Conflict("you have already applied to this job")
		}
	}

	employer, err := slf.users.FindByID(ctx, job.EmployerID)
	if err != nil {
		employer = models.User{}
	}

	app := models.Application{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		UserID:      userID,
		JobTitle:    job.Title,
		Company:     employer.DisplayCompany(),
		Motivation:  dto.Motivation,
		Name:        dto.Name,
		Email:       dto.Email,
		Phone:       dto.Phone,
		AppliedDate: time.Now(),
		Status:      models.ApplicationStatusPending,
	}

	if err := slf.applications.Create(ctx, &app); err != nil {
		return models.Application{}, apperrors.Internal(err)
	}
	if err := slf.applications.AppendToUserIndex(ctx, userID, app.ID); err != nil {
		return models.Application{}, apperrors.Internal(err)
	}
	count, err := slf.applications.AttachToJob(ctx, job.ID, app.ID)
	if err != nil {
		return models.Application{}, apperrors.Internal(err)
	}

	slf.events.ApplicationSubmitted(&app)
	go slf.notifier.ApplicationReceived(employer.Email, &job, &app)

	slf.logger.Info().
		Str("applicationId", app.ID).
		Str("jobId", job.ID).
		Int("applicantCount", count).
		Msg("application submitted")
	return app, nil
}

// ListMine returns the caller's applications, newest first.
func (slf *ApplicationService) ListMine(ctx context.Context, userID string) ([]models.Application, error) {
	ids, err := slf.applications.IDsByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	apps, err := slf.applications.FindMany(ctx, ids)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	sortApplicationsNewestFirst(apps)
	return apps, nil
}

// ListApplicants returns the applications filed against a job. Only the
// posting employer may read them.
func (slf *ApplicationService) ListApplicants(ctx context.Context, jobID, requesterID string) ([]models.Application, error) {
	job, err := slf.jobs.FindByID(ctx, jobID)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return nil, apperrors.NotFound("Job")
		}
		return nil, apperrors.Internal(err)
	}
	if job.EmployerID != requesterID {
		return nil, apperrors.Forbidden("Not allowed to view applicants for this job")
	}

	ids, err := slf.jobs.ApplicantIDs(ctx, jobID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	apps, err := slf.applications.FindMany(ctx, ids)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	sortApplicationsNewestFirst(apps)
	return apps, nil
}

// Update lets the applicant rework their motivation while the application
// is still in play. Accepted and rejected applications are frozen.
func (slf *ApplicationService) Update(ctx context.Context, appID, requesterID string, dto request.UpdateApplicationDTO) (models.Application, error) {
	app, err := slf.applications.FindByID(ctx, appID)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return models.Application{}, apperrors.NotFound("Application")
		}
		return models.Application{}, apperrors.Internal(err)
	}
	if app.UserID != requesterID {
		return models.Application{}, apperrors.Forbidden("Not allowed to edit this application")
	}
	if app.Status.Terminal() {
		return models.Application{}, apperrors.InvalidStatus("application has been finalized and can no longer be edited")
	}

	now := time.Now()
	app.Motivation = dto.Motivation
	app.UpdatedAt = &now

	if err := slf.applications.Update(ctx, &app); err != nil {
		return models.Application{}, apperrors.Internal(err)
	}
	return app, nil
}

// UpdateStatus moves an application along the pipeline on behalf of the
// employer who owns the job. Transitions only move forward: pending may go
// anywhere, reviewed may only be finalized, accepted and rejected are
// terminal.
func (slf *ApplicationService) UpdateStatus(ctx context.Context, appID, requesterID string, status string) (models.Application, error) {
	app, err := slf.applications.FindByID(ctx, appID)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return models.Application{}, apperrors.NotFound("Application")
		}
		return models.Application{}, apperrors.Internal(err)
	}

	job, err := slf.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return models.Application{}, apperrors.NotFound("Job")
		}
		return models.Application{}, apperrors.Internal(err)
	}
	if job.EmployerID != requesterID {
		return models.Application{}, apperrors.Forbidden("Not allowed to manage applications for this job")
	}

	next := models.ApplicationStatus(status)
	if !next.Valid() {
		return models.Application{}, apperrors.Validation("unknown application status: " + status)
	}
	if !app.Status.CanTransitionTo(next) {
		return models.Application{}, apperrors.InvalidStatus(
			"cannot move application from " + string(app.Status) + " to " + string(next))
	}

	now := time.Now()
	app.Status = next
	app.UpdatedAt = &now

	if err := slf.applications.Update(ctx, &app); err != nil {
		return models.Application{}, apperrors.Internal(err)
	}

	slf.events.ApplicationStatusChanged(&app)
	go slf.notifier.StatusChanged(app.Email, &app)

	slf.logger.Info().
		Str("applicationId", app.ID).
		Str("status", string(next)).
		Msg("application status updated")
	return app, nil
}

func sortApplicationsNewestFirst(apps []models.Application) {
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].AppliedDate.After(apps[j].AppliedDate)
	})
}
