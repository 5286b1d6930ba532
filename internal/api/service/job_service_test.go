package service

import (
	"context"
	"testing"
	"time"

	"joblink/internal/api/handler/request"
	"joblink/internal/api/models"
	"joblink/internal/apperrors"
	"joblink/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJob_Create(t *testing.T) {
	env := newTestEnv(t)
	employer := env.signupEmployer(t, "Diallo Services")

	job, err := env.jobService.Create(context.Background(), employer.ID, request.CreateJobDTO{
		Title:       "Housekeeper",
		Description: "Daily cleaning and laundry for a family home",
		Location:    "Dakar",
		Salary:      95000,
		Category:    "Domestic",
	})
	require.NoError(t, err, "Failed to create job")

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, employer.ID, job.EmployerID)
	assert.Equal(t, models.JobStatusActive, job.Status)
	assert.Equal(t, models.SalaryPeriodMonthly, job.SalaryPeriod)
	assert.Equal(t, "Full-time", job.Type)
	assert.Equal(t, 0, job.ApplicantCount)
	assert.Equal(t, []string{}, job.Requirements)
	assert.Equal(t, "Diallo Services", job.Company)
}

func TestJob_Create_JobseekerForbidden(t *testing.T) {
	env := newTestEnv(t)
	seeker := env.signupJobseeker(t)

	_, err := env.jobService.Create(context.Background(), seeker.ID, request.CreateJobDTO{
		Title:       "Housekeeper",
		Description: "Daily cleaning and laundry for a family home",
		Location:    "Dakar",
		Salary:      95000,
		Category:    "Domestic",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}

func TestJob_Create_UnknownCategory(t *testing.T) {
	env := newTestEnv(t)
	employer := env.signupEmployer(t, "")

	_, err := env.jobService.Create(context.Background(), employer.ID, request.CreateJobDTO{
		Title:       "Housekeeper",
		Description: "Daily cleaning and laundry for a family home",
		Location:    "Dakar",
		Salary:      95000,
		Category:    "Astronautics",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
}

func TestJob_List_FiltersAndSorts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	employer := env.signupEmployer(t, "Diallo Services")

	older, err := env.jobService.Create(ctx, employer.ID, request.CreateJobDTO{
		Title:       "Housekeeper",
		Description: "Daily cleaning and laundry for a family home",
		Location:    "Dakar",
		Salary:      95000,
		Category:    "Domestic",
	})
	require.NoError(t, err)
	newer, err := env.jobService.Create(ctx, employer.ID, request.CreateJobDTO{
		Title:       "Shop assistant",
		Description: "Customer service and restocking in a retail shop",
		Location:    "Dakar",
		Salary:      110000,
		Category:    "Retail",
	})
	require.NoError(t, err)
	closed := env.postJob(t, employer.ID)
	_, err = env.jobService.Close(ctx, closed.ID, employer.ID)
	require.NoError(t, err)

	// Spread posting times so the expected order does not depend on
	// clock resolution.
	older.PostedTime = time.Now().Add(-2 * time.Hour)
	require.NoError(t, env.jobs.Update(ctx, pkg.ToPtr(older)))
	newer.PostedTime = time.Now().Add(-1 * time.Hour)
	require.NoError(t, env.jobs.Update(ctx, pkg.ToPtr(newer)))

	jobs, err := env.jobService.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, jobs, 2, "Closed job should be hidden")
	assert.Equal(t, newer.ID, jobs[0].ID)
	assert.Equal(t, older.ID, jobs[1].ID)
	assert.Equal(t, "Diallo Services", jobs[0].Company)

	jobs, err = env.jobService.List(ctx, "", "All")
	require.NoError(t, err)
	assert.Len(t, jobs, 2, "Category All should match everything")

	jobs, err = env.jobService.List(ctx, "", "Retail")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, newer.ID, jobs[0].ID)

	jobs, err = env.jobService.List(ctx, "LAUNDRY", "")
	require.NoError(t, err)
	require.Len(t, jobs, 1, "Search should be case-insensitive over description")
	assert.Equal(t, older.ID, jobs[0].ID)

	jobs, err = env.jobService.List(ctx, "astronaut", "")
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestJob_Get_IncludesEmployerContact(t *testing.T) {
	env := newTestEnv(t)
	employer := env.signupEmployer(t, "Diallo Services")
	job := env.postJob(t, employer.ID)

	got, err := env.jobService.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Diallo Services", got.Company)
	assert.Equal(t, employer.Email, got.EmployerEmail)
	assert.Equal(t, employer.Phone, got.EmployerPhone)
}

func TestJob_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.jobService.Get(context.Background(), "missing-job-id")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestJob_Update(t *testing.T) {
	env := newTestEnv(t)
	employer := env.signupEmployer(t, "")
	job := env.postJob(t, employer.ID)

	updated, err := env.jobService.Update(context.Background(), job.ID, employer.ID, request.UpdateJobDTO{
		Title:  pkg.ToPtr("Senior housekeeper"),
		Salary: pkg.ToPtr(120000.0),
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior housekeeper", updated.Title)
	assert.Equal(t, 120000.0, updated.Salary)
	assert.Equal(t, job.Description, updated.Description, "Unset fields should be untouched")
	assert.Equal(t, job.EmployerID, updated.EmployerID)
	assert.Equal(t, job.Status, updated.Status)
	assert.True(t, job.PostedTime.Equal(updated.PostedTime), "PostedTime must survive updates")
}

func TestJob_Update_NotOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.signupEmployer(t, "")
	other := env.signupEmployer(t, "")
	job := env.postJob(t, owner.ID)

	_, err := env.jobService.Update(context.Background(), job.ID, other.ID, request.UpdateJobDTO{
		Title: pkg.ToPtr("Hijacked"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}

func TestJob_Close(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	employer := env.signupEmployer(t, "")
	job := env.postJob(t, employer.ID)

	closed, err := env.jobService.Close(ctx, job.ID, employer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, closed.Status)

	_, err = env.jobService.Close(ctx, job.ID, employer.ID)
	require.Error(t, err, "Closed is terminal")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidStatus))
}

func TestJob_Close_NotOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.signupEmployer(t, "")
	other := env.signupEmployer(t, "")
	job := env.postJob(t, owner.ID)

	_, err := env.jobService.Close(context.Background(), job.ID, other.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}

func TestJob_ListByEmployer_RecomputesApplicantCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	employer := env.signupEmployer(t, "")
	job := env.postJob(t, employer.ID)

	env.apply(t, env.signupJobseeker(t).ID, job.ID)
	env.apply(t, env.signupJobseeker(t).ID, job.ID)

	// Corrupt the stored counter to prove the dashboard recomputes it
	// from the applicant index.
	stored, err := env.jobs.FindByID(ctx, job.ID)
	require.NoError(t, err)
	stored.ApplicantCount = 99
	require.NoError(t, env.jobs.Update(ctx, pkg.ToPtr(stored)))

	jobs, err := env.jobService.ListByEmployer(ctx, employer.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, 2, jobs[0].ApplicantCount)
}
