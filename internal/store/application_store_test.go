package store

import (
	"context"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickhire/internal/database"
	"quickhire/internal/jobboard"
	"quickhire/internal/pagination"
)

func applicationInput(jobID, email string) jobboard.ApplicationInput {
	return jobboard.ApplicationInput{
		JobID:      jobID,
		Name:       "Ada Lovelace",
		Email:      email,
		ResumeLink: "https://example.com/ada.pdf",
		CoverNote:  "I would love to work on your engines.",
	}
}

func TestApplicationStore_Submit(t *testing.T) {
	f := newFixture(t)
	job := f.seedJob(t, func(j *database.Job) { j.Title = "Engineer"; j.Company = "Analytical" })

	view, err := f.apps.Submit(context.Background(), applicationInput(job.ID, "  Ada@Example.COM "))
	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "ada@example.com", view.Email)
	assert.Equal(t, jobboard.StatusPending, view.Status)
	assert.Equal(t, JobSummary{ID: job.ID, Title: "Engineer", Company: "Analytical", Location: "Berlin"}, view.Job)
}

func TestApplicationStore_SubmitRejectsDuplicateEmailIgnoringCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.seedJob(t, nil)
	other := f.seedJob(t, nil)

	_, err := f.apps.Submit(ctx, applicationInput(job.ID, "ada@example.com"))
	require.NoError(t, err)

	_, err = f.apps.Submit(ctx, applicationInput(job.ID, "ADA@EXAMPLE.COM"))
	assert.ErrorIs(t, err, jobboard.ErrDuplicate)

	_, err = f.apps.Submit(ctx, applicationInput(other.ID, "ada@example.com"))
	assert.NoError(t, err, "same email may apply to a different job")

	var count int64
	require.NoError(t, f.db.Model(&database.Application{}).Where("job_id = ?", job.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplicationStore_UniqueIndexBacksDuplicateCheck(t *testing.T) {
	f := newFixture(t)
	job := f.seedJob(t, nil)
	f.seedApplication(t, job.ID, "ada@example.com", baseTime)

	err := f.db.Create(&database.Application{
		JobID:      job.ID,
		Name:       "Ada",
		Email:      "ada@example.com",
		ResumeLink: "https://example.com/cv.pdf",
		CoverNote:  "Second attempt at the same job.",
	}).Error
	require.Error(t, err)
	assert.True(t, database.IsUniqueViolation(err))
}

func TestApplicationStore_SubmitErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inactive := f.seedJob(t, func(j *database.Job) { j.IsActive = false })
	active := f.seedJob(t, nil)

	_, err := f.apps.Submit(ctx, applicationInput(inactive.ID, "ada@example.com"))
	assert.ErrorIs(t, err, jobboard.ErrJobInactive)

	_, err = f.apps.Submit(ctx, applicationInput("garbage", "ada@example.com"))
	assert.ErrorIs(t, err, jobboard.ErrNotFound)

	_, err = f.apps.Submit(ctx, applicationInput("3f1c9a2e-0b7d-4c8e-9a61-5d2e8f4b7c10", "ada@example.com"))
	assert.ErrorIs(t, err, jobboard.ErrNotFound)

	in := applicationInput(active.ID, "not-an-email")
	in.CoverNote = "short"
	_, err = f.apps.Submit(ctx, in)
	ve, ok := jobboard.AsValidationError(err)
	require.True(t, ok)
	fields := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"email", "coverNote"}, fields)

	var count int64
	require.NoError(t, f.db.Model(&database.Application{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApplicationStore_ListAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.seedJob(t, func(j *database.Job) { j.Category = "Engineering" })
	b := f.seedJob(t, nil)

	first := f.seedApplication(t, a.ID, "one@example.com", baseTime)
	second := f.seedApplication(t, b.ID, "two@example.com", baseTime.Add(time.Hour))
	third := f.seedApplication(t, a.ID, "three@example.com", baseTime.Add(2*time.Hour))
	require.NoError(t, f.db.Model(&third).Update("status", jobboard.StatusRejected).Error)

	page, err := f.apps.ListAll(ctx, ApplicationFilter{Page: pagination.Applications.Clamp(1, 20)})
	require.NoError(t, err)
	require.Len(t, page.Applications, 3)
	assert.Equal(t, []string{third.ID, second.ID, first.ID},
		[]string{page.Applications[0].ID, page.Applications[1].ID, page.Applications[2].ID})
	assert.Equal(t, "Engineering", page.Applications[0].Job.Category)
	assert.Empty(t, page.Applications[0].Job.Type)
	assert.EqualValues(t, 3, page.Meta.Total)

	page, err = f.apps.ListAll(ctx, ApplicationFilter{JobID: a.ID, Status: jobboard.StatusPending, Page: pagination.Applications.Clamp(1, 20)})
	require.NoError(t, err)
	require.Len(t, page.Applications, 1)
	assert.Equal(t, first.ID, page.Applications[0].ID)

	page, err = f.apps.ListAll(ctx, ApplicationFilter{Page: pagination.Applications.Clamp(2, 2)})
	require.NoError(t, err)
	require.Len(t, page.Applications, 1)
	assert.Equal(t, pagination.Meta{Total: 3, Page: 2, Limit: 2, TotalPages: 2, HasPrevPage: true}, page.Meta)

	page, err = f.apps.ListAll(ctx, ApplicationFilter{Status: jobboard.StatusShortlisted, Page: pagination.Applications.Clamp(1, 20)})
	require.NoError(t, err)
	assert.NotNil(t, page.Applications)
	assert.Empty(t, page.Applications)
}

func TestApplicationStore_ListAllHugePageIsBeyondLastPage(t *testing.T) {
	f := newFixture(t)
	job := f.seedJob(t, nil)
	f.seedApplication(t, job.ID, "one@example.com", baseTime)

	page, err := f.apps.ListAll(context.Background(), ApplicationFilter{
		Page: pagination.Applications.Parse(strconv.Itoa(math.MaxInt), "20"),
	})
	require.NoError(t, err)
	assert.NotNil(t, page.Applications)
	assert.Empty(t, page.Applications)
	assert.EqualValues(t, 1, page.Meta.Total)
	assert.False(t, page.Meta.HasNextPage)
}

func TestApplicationStore_ListByJob(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.seedJob(t, func(j *database.Job) { j.Title = "Welder"; j.Company = "Forge" })
	other := f.seedJob(t, nil)
	f.seedApplication(t, job.ID, "one@example.com", baseTime)
	f.seedApplication(t, job.ID, "two@example.com", baseTime.Add(time.Minute))
	f.seedApplication(t, other.ID, "one@example.com", baseTime)

	res, err := f.apps.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Total)
	assert.Equal(t, JobSummary{Title: "Welder", Company: "Forge"}, res.Job)
	require.Len(t, res.Applications, 2)
	assert.Equal(t, "two@example.com", res.Applications[0].Email)
	assert.Equal(t, JobSummary{ID: job.ID}, res.Applications[0].Job)

	empty, err := f.apps.ListByJob(ctx, f.seedJob(t, nil).ID)
	require.NoError(t, err)
	assert.NotNil(t, empty.Applications)
	assert.Zero(t, empty.Total)
}

func TestApplicationStore_GetByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.seedJob(t, func(j *database.Job) { j.Type = "Internship" })
	app := f.seedApplication(t, job.ID, "one@example.com", baseTime)

	view, err := f.apps.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Internship", view.Job.Type)
	assert.Equal(t, job.Title, view.Job.Title)

	_, err = f.apps.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, jobboard.ErrNotFound)
}

func TestApplicationStore_GetByIDAfterJobRemoved(t *testing.T) {
	f := newFixture(t)
	job := f.seedJob(t, nil)
	app := f.seedApplication(t, job.ID, "one@example.com", baseTime)
	require.NoError(t, f.db.Delete(&database.Job{}, "id = ?", job.ID).Error)

	view, err := f.apps.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, JobSummary{ID: job.ID}, view.Job)
}

func TestApplicationStore_UpdateStatusAllowsAnyTransition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.seedJob(t, nil)
	app := f.seedApplication(t, job.ID, "one@example.com", baseTime)

	for _, from := range jobboard.Statuses {
		for _, to := range jobboard.Statuses {
			_, err := f.apps.UpdateStatus(ctx, app.ID, from)
			require.NoError(t, err)
			view, err := f.apps.UpdateStatus(ctx, app.ID, to)
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, view.Status)
			assert.Equal(t, JobSummary{ID: job.ID, Title: job.Title, Company: job.Company}, view.Job)
		}
	}
}

func TestApplicationStore_UpdateStatusRejectsUnknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.seedJob(t, nil)
	app := f.seedApplication(t, job.ID, "one@example.com", baseTime)

	_, err := f.apps.UpdateStatus(ctx, app.ID, "Hired")
	ve, ok := jobboard.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "status", ve.Errors[0].Field)

	view, err := f.apps.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, jobboard.StatusPending, view.Status)

	_, err = f.apps.UpdateStatus(ctx, "missing", jobboard.StatusReviewed)
	assert.ErrorIs(t, err, jobboard.ErrNotFound)
}

func TestApplicationStore_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.seedJob(t, nil)
	app := f.seedApplication(t, job.ID, "one@example.com", baseTime)

	id, err := f.apps.Delete(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, id)

	_, err = f.apps.GetByID(ctx, app.ID)
	assert.ErrorIs(t, err, jobboard.ErrNotFound)
	_, err = f.apps.Delete(ctx, app.ID)
	assert.ErrorIs(t, err, jobboard.ErrNotFound)
}

func TestApplicationStore_DeleteByJobIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.seedJob(t, nil)
	f.seedApplication(t, job.ID, "one@example.com", baseTime)
	f.seedApplication(t, job.ID, "two@example.com", baseTime)

	n, err := f.apps.DeleteByJob(ctx, job.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = f.apps.DeleteByJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
