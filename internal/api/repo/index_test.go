package repo

import (
	"context"
	"sync"
	"testing"

	"joblink/internal/api/models"
	"joblink/internal/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendToIndex_Concurrent(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, err := appendToIndex(ctx, store, "employer:e1:jobs", "job-id")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	ids, err := readIndex(ctx, store, "employer:e1:jobs")
	require.NoError(t, err)
	assert.Len(t, ids, writers, "No appends may be lost under concurrency")
}

func TestReadIndex_MissingKeyIsEmpty(t *testing.T) {
	store := kvstore.NewMemoryStore()

	ids, err := readIndex(context.Background(), store, "user:u1:applications")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestApplicationRepository_AttachToJob_KeepsCounterInSync(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()
	jobs := NewJobRepository(store)
	apps := NewApplicationRepository(store)

	job := models.Job{ID: "j1", EmployerID: "e1", Title: "Housekeeper"}
	require.NoError(t, jobs.Create(ctx, &job))

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, err := apps.AttachToJob(ctx, "j1", "app-id")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := jobs.FindByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, writers, stored.ApplicantCount)

	ids, err := jobs.ApplicantIDs(ctx, "j1")
	require.NoError(t, err)
	assert.Len(t, ids, writers)
}

func TestJobRepository_All_SkipsIndexLists(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()
	jobs := NewJobRepository(store)
	apps := NewApplicationRepository(store)

	require.NoError(t, jobs.Create(ctx, &models.Job{ID: "j1", EmployerID: "e1", Title: "Housekeeper"}))
	_, err := apps.AttachToJob(ctx, "j1", "a1")
	require.NoError(t, err)

	all, err := jobs.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "Applicant index under the job: prefix must not decode as a job")
	assert.Equal(t, "j1", all[0].ID)
}
