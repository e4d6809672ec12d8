package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickhire/internal/database"
	"quickhire/internal/jobboard"
	"quickhire/internal/store"
	"quickhire/internal/testutil"
)

func TestSampleJobsAreValid(t *testing.T) {
	for _, in := range SampleJobs() {
		draft := in.ApplyTo(jobboard.NewJobDraft())
		assert.NoError(t, jobboard.ValidateJob(draft), *in.Title)
	}
}

func TestSeederRun(t *testing.T) {
	db := testutil.NewTestDB(t)
	jobs := store.NewJobStore(db, nil, nil)
	s := NewSeeder(db, jobs, store.NewApplicationStore(db, jobs), nil)
	ctx := context.Background()

	res, err := s.Run(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, Result{Jobs: len(SampleJobs()), Applications: 3}, res)

	res, err = s.Run(ctx, false)
	require.NoError(t, err)
	assert.True(t, res.Skipped)

	require.NoError(t, db.Create(&database.Job{
		Title: "Stray", Company: "X", Location: "Y", Category: "Other", Type: "Remote",
		Description: "Will be wiped by a reset run.", IsActive: true,
	}).Error)

	res, err = s.Run(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, len(SampleJobs()), res.Jobs)

	var count int64
	require.NoError(t, db.Model(&database.Job{}).Count(&count).Error)
	assert.EqualValues(t, len(SampleJobs()), count)
	require.NoError(t, db.Model(&database.Application{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}
