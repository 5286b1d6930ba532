package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"joblink"
	"joblink/internal/api/handler/request"
	"joblink/internal/api/models"
	"joblink/internal/api/repo"
	"joblink/internal/kvstore"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store        *kvstore.MemoryStore
	users        *repo.UserRepository
	jobs         *repo.JobRepository
	applications *repo.ApplicationRepository
	feedback     *repo.FeedbackRepository

	auth            *AuthService
	jobService      *JobService
	appService      *ApplicationService
	feedbackService *FeedbackService
}

func testConfig() joblink.AppConfig {
	var cfg joblink.AppConfig
	cfg.Mode = "test"
	cfg.KVBackend = "memory"
	cfg.JWTConfig.Secret = "test-secret"
	cfg.JWTConfig.Expiration = 60
	cfg.Features.JobClose = true
	cfg.Features.RejectDuplicateApps = true
	return cfg
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	joblink.SetConfigForTesting(testConfig())

	store := kvstore.NewMemoryStore()
	env := &testEnv{
		store:        store,
		users:        repo.NewUserRepository(store),
		jobs:         repo.NewJobRepository(store),
		applications: repo.NewApplicationRepository(store),
		feedback:     repo.NewFeedbackRepository(store),
	}
	env.auth = NewAuthService(env.users)
	env.jobService = NewJobService(env.jobs, env.users, nil)
	env.appService = NewApplicationService(env.applications, env.jobs, env.users, nil, nil)
	env.feedbackService = NewFeedbackService(env.feedback)
	return env
}

func uniqueEmail() string {
	return fmt.Sprintf("test-%d@example.com", time.Now().UnixNano())
}

func (env *testEnv) signupEmployer(t *testing.T, businessName string) models.User {
	t.Helper()
	user, _, err := env.auth.Signup(context.Background(), request.SignupDTO{
		Email:        uniqueEmail(),
		Password:     "testpassword123",
		Name:         "Awa Diallo",
		UserType:     "employer",
		Phone:        "+221770000001",
		Location:     "Dakar",
		BusinessName: businessName,
	})
	require.NoError(t, err, "Failed to sign up employer")
	return user
}

func (env *testEnv) signupJobseeker(t *testing.T) models.User {
	t.Helper()
	user, _, err := env.auth.Signup(context.Background(), request.SignupDTO{
		Email:    uniqueEmail(),
		Password: "testpassword123",
		Name:     "Moussa Ndiaye",
		UserType: "jobseeker",
		Phone:    "+221770000002",
		Location: "Thies",
	})
	require.NoError(t, err, "Failed to sign up jobseeker")
	return user
}

func (env *testEnv) postJob(t *testing.T, employerID string) models.Job {
	t.Helper()
	job, err := env.jobService.Create(context.Background(), employerID, request.CreateJobDTO{
		Title:       "Housekeeper",
		Description: "Daily cleaning and laundry for a family home",
		Location:    "Dakar",
		Salary:      95000,
		Category:    "Domestic",
	})
	require.NoError(t, err, "Failed to post job")
	return job
}

func (env *testEnv) apply(t *testing.T, userID, jobID string) models.Application {
	t.Helper()
	app, err := env.appService.Submit(context.Background(), userID, request.SubmitApplicationDTO{
		JobID:      jobID,
		Motivation: "I have five years of experience with references",
		Name:       "Moussa Ndiaye",
		Email:      uniqueEmail(),
		Phone:      "+221770000002",
	})
	require.NoError(t, err, "Failed to submit application")
	return app
}
