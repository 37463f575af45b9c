package services

import (
	"context"
	"testing"
	"time"

	"jobportal_backend/internal/apperrors"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/query"
	"jobportal_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func dtoCreateJob(deadline string) *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build services",
		Location:    "Berlin",
		JobType:     "full-time",
		Deadline:    deadline,
	}
}

func newJobServiceFixture() (JobService, *fakeJobRepo, *fakeProfileRepo, *fakeListingRepo) {
	jobRepo := newFakeJobRepo()
	profileRepo := newFakeProfileRepo()
	appRepo := newFakeApplicationRepo(jobRepo)
	savedRepo := newFakeSavedJobRepo()
	listings := &fakeListingRepo{}
	svc := NewJobService(jobRepo, profileRepo, appRepo, savedRepo, listings, fixedClock{testNow})
	return svc, jobRepo, profileRepo, listings
}

func seedJob(t *testing.T, repo *fakeJobRepo, recruiterID uint, status models.JobStatus, deadline time.Time) *models.Job {
	t.Helper()
	job := &models.Job{
		RecruiterID: recruiterID,
		Title:       "Backend Engineer",
		Description: "Build services",
		Location:    "Berlin",
		JobType:     models.JobTypeFullTime,
		Deadline:    deadline,
		Status:      status,
	}
	require.NoError(t, repo.Create(context.Background(), job))
	return job
}

func seedCompany(t *testing.T, repo *fakeProfileRepo, userID uint, name string) *models.CompanyProfile {
	t.Helper()
	profile := &models.CompanyProfile{UserID: userID, CompanyName: name}
	require.NoError(t, repo.CreateCompany(context.Background(), profile))
	return profile
}

func TestJobService_CreateRejectsPastDeadline(t *testing.T) {
	svc, _, _, _ := newJobServiceFixture()

	_, appErr := svc.Create(context.Background(), models.Actor{UserID: 1, Role: models.UserRoleRecruiter}, dtoCreateJob("2025-06-01"))
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestJobService_CreateStartsOpen(t *testing.T) {
	svc, jobRepo, profileRepo, _ := newJobServiceFixture()
	seedCompany(t, profileRepo, 1, "Acme GmbH")

	resp, appErr := svc.Create(context.Background(), models.Actor{UserID: 1, Role: models.UserRoleRecruiter}, dtoCreateJob("2025-07-01"))
	require.Nil(t, appErr)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, "Acme GmbH", resp.CompanyName)

	stored := jobRepo.jobs[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, models.JobStatusOpen, stored.Status)
}

func TestJobService_CreateRequiresCompanyProfile(t *testing.T) {
	svc, _, profileRepo, _ := newJobServiceFixture()

	// No profile row at all.
	_, appErr := svc.Create(context.Background(), models.Actor{UserID: 1, Role: models.UserRoleRecruiter}, dtoCreateJob("2025-07-01"))
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	// A profile row without a company name is still incomplete.
	seedCompany(t, profileRepo, 1, "")
	_, appErr = svc.Create(context.Background(), models.Actor{UserID: 1, Role: models.UserRoleRecruiter}, dtoCreateJob("2025-07-01"))
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestJobService_CloseOnlyFromOpen(t *testing.T) {
	svc, jobRepo, _, _ := newJobServiceFixture()
	actor := models.Actor{UserID: 7, Role: models.UserRoleRecruiter}
	job := seedJob(t, jobRepo, 7, models.JobStatusOpen, testNow.AddDate(0, 1, 0))

	resp, appErr := svc.Close(context.Background(), actor, job.ID)
	require.Nil(t, appErr)
	assert.Equal(t, "closed", resp.Status)

	// Closing again is a state error, not idempotent success.
	_, appErr = svc.Close(context.Background(), actor, job.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeInvalidState, appErr.Code)
}

func TestJobService_CloseRequiresOwnership(t *testing.T) {
	svc, jobRepo, _, _ := newJobServiceFixture()
	job := seedJob(t, jobRepo, 7, models.JobStatusOpen, testNow.AddDate(0, 1, 0))

	_, appErr := svc.Close(context.Background(), models.Actor{UserID: 8, Role: models.UserRoleRecruiter}, job.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestJobService_ReopenWithFutureDeadline(t *testing.T) {
	svc, jobRepo, _, _ := newJobServiceFixture()
	actor := models.Actor{UserID: 7, Role: models.UserRoleRecruiter}
	job := seedJob(t, jobRepo, 7, models.JobStatusClosed, testNow.AddDate(0, 1, 0))

	resp, appErr := svc.Reopen(context.Background(), actor, job.ID)
	require.Nil(t, appErr)
	assert.True(t, resp.Reopened)
	assert.Empty(t, resp.Warning)
	assert.Equal(t, "open", resp.Job.Status)
}

func TestJobService_ReopenPastDeadlineIsWarningNotError(t *testing.T) {
	svc, jobRepo, _, _ := newJobServiceFixture()
	actor := models.Actor{UserID: 7, Role: models.UserRoleRecruiter}
	job := seedJob(t, jobRepo, 7, models.JobStatusClosed, testNow.AddDate(0, -1, 0))

	// A passed deadline is a normal no-op outcome, not a failure.
	resp, appErr := svc.Reopen(context.Background(), actor, job.ID)
	require.Nil(t, appErr)
	assert.False(t, resp.Reopened)
	assert.NotEmpty(t, resp.Warning)
	assert.Equal(t, "closed", resp.Job.Status)

	// The job stays closed.
	assert.Equal(t, models.JobStatusClosed, jobRepo.jobs[job.ID].Status)
}

func TestJobService_ReopenOnlyFromClosed(t *testing.T) {
	svc, jobRepo, _, _ := newJobServiceFixture()
	actor := models.Actor{UserID: 7, Role: models.UserRoleRecruiter}
	job := seedJob(t, jobRepo, 7, models.JobStatusOpen, testNow.AddDate(0, 1, 0))

	_, appErr := svc.Reopen(context.Background(), actor, job.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeInvalidState, appErr.Code)
}

func TestJobService_GetReportsExpiredWithoutMutatingStatus(t *testing.T) {
	svc, jobRepo, _, _ := newJobServiceFixture()
	job := seedJob(t, jobRepo, 7, models.JobStatusOpen, testNow.AddDate(0, 0, -3))

	resp, appErr := svc.Get(context.Background(), nil, job.ID)
	require.Nil(t, appErr)
	assert.Equal(t, "expired", resp.Status)
	assert.Equal(t, models.JobStatusOpen, jobRepo.jobs[job.ID].Status)
}

func TestJobService_GetPopulatesViewerFlags(t *testing.T) {
	jobRepo := newFakeJobRepo()
	profileRepo := newFakeProfileRepo()
	appRepo := newFakeApplicationRepo(jobRepo)
	savedRepo := newFakeSavedJobRepo()
	svc := NewJobService(jobRepo, profileRepo, appRepo, savedRepo, &fakeListingRepo{}, fixedClock{testNow})

	job := seedJob(t, jobRepo, 7, models.JobStatusOpen, testNow.AddDate(0, 1, 0))
	require.NoError(t, appRepo.Create(context.Background(), &models.Application{JobID: job.ID, StudentID: 42, Status: models.ApplicationStatusPending}))
	require.NoError(t, savedRepo.Create(context.Background(), &models.SavedJob{JobID: job.ID, StudentID: 42}))

	viewer := &models.Actor{UserID: 42, Role: models.UserRoleStudent}
	resp, appErr := svc.Get(context.Background(), viewer, job.ID)
	require.Nil(t, appErr)
	assert.True(t, resp.HasApplied)
	assert.Equal(t, "pending", resp.ApplicationStatus)
	assert.True(t, resp.IsSaved)

	other := &models.Actor{UserID: 43, Role: models.UserRoleStudent}
	resp, appErr = svc.Get(context.Background(), other, job.ID)
	require.Nil(t, appErr)
	assert.False(t, resp.HasApplied)
	assert.Empty(t, resp.ApplicationStatus)
	assert.False(t, resp.IsSaved)
}

func TestJobService_GetIncrementsViews(t *testing.T) {
	svc, jobRepo, _, _ := newJobServiceFixture()
	job := seedJob(t, jobRepo, 7, models.JobStatusOpen, testNow.AddDate(0, 1, 0))

	resp, appErr := svc.Get(context.Background(), nil, job.ID)
	require.Nil(t, appErr)
	assert.Equal(t, 1, resp.Views)
	assert.Equal(t, 1, jobRepo.jobs[job.ID].Views)
}

func TestJobService_ListOwnedScopesToActor(t *testing.T) {
	svc, _, _, listings := newJobServiceFixture()
	listings.total = 25

	_, appErr := svc.ListOwned(context.Background(), models.Actor{UserID: 7, Role: models.UserRoleRecruiter}, query.Params{"page": "3"})
	require.Nil(t, appErr)

	assert.Contains(t, listings.lastQuery.Where, "j.recruiter_id = ?")
	assert.Equal(t, uint(7), listings.lastQuery.Args[0])
	assert.Equal(t, 10, listings.lastLimit)
	assert.Equal(t, 20, listings.lastOffset)
}
