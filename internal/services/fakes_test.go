package services

import (
	"context"
	"sync"
	"time"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/query"
	"jobportal_backend/internal/repositories"
)

// In-memory fakes so the lifecycle rules can be exercised without a
// database. Only the behavior the services depend on is modeled; the
// unique-index semantics are reproduced by hand.

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *fakeMailer) Send(to, subject, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+": "+subject)
	return nil
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeProfileRepo struct {
	students  map[uint]*models.StudentProfile // by user ID
	companies map[uint]*models.CompanyProfile // by user ID
	nextID    uint
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		students:  map[uint]*models.StudentProfile{},
		companies: map[uint]*models.CompanyProfile{},
		nextID:    1,
	}
}

func (r *fakeProfileRepo) CreateStudent(_ context.Context, p *models.StudentProfile) error {
	p.ID = r.nextID
	r.nextID++
	r.students[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) SaveStudent(_ context.Context, p *models.StudentProfile) error {
	r.students[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) FindStudentByUserID(_ context.Context, userID uint) (*models.StudentProfile, error) {
	if p, ok := r.students[userID]; ok {
		return p, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeProfileRepo) CreateCompany(_ context.Context, p *models.CompanyProfile) error {
	p.ID = r.nextID
	r.nextID++
	r.companies[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) SaveCompany(_ context.Context, p *models.CompanyProfile) error {
	r.companies[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) FindCompanyByUserID(_ context.Context, userID uint) (*models.CompanyProfile, error) {
	if p, ok := r.companies[userID]; ok {
		return p, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeProfileRepo) FindCompanyByID(_ context.Context, id uint) (*models.CompanyProfile, error) {
	for _, p := range r.companies {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeJobRepo struct {
	jobs   map[uint]*models.Job
	nextID uint
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[uint]*models.Job{}, nextID: 1}
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.Job) error {
	job.ID = r.nextID
	r.nextID++
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Save(_ context.Context, job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(_ context.Context, id uint) (*models.Job, error) {
	if j, ok := r.jobs[id]; ok {
		copied := *j
		return &copied, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeJobRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) Close(_ context.Context, id uint) error {
	j, ok := r.jobs[id]
	if !ok || j.Status != models.JobStatusOpen {
		return repositories.ErrNotFound
	}
	j.Status = models.JobStatusClosed
	return nil
}

func (r *fakeJobRepo) Reopen(_ context.Context, id uint, today time.Time) (int64, error) {
	j, ok := r.jobs[id]
	if !ok || j.Deadline.Before(today) {
		return 0, nil
	}
	j.Status = models.JobStatusOpen
	return 1, nil
}

func (r *fakeJobRepo) IncrementViews(_ context.Context, id uint) error {
	if j, ok := r.jobs[id]; ok {
		j.Views++
		return nil
	}
	return repositories.ErrNotFound
}

func (r *fakeJobRepo) FindSimilar(_ context.Context, job *models.Job, limit int) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.ID == job.ID || j.Status != models.JobStatusOpen {
			continue
		}
		if j.JobType == job.JobType || j.Location == job.Location {
			out = append(out, *j)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeJobRepo) CountByRecruiter(_ context.Context, recruiterID uint) (int64, error) {
	var n int64
	for _, j := range r.jobs {
		if j.RecruiterID == recruiterID {
			n++
		}
	}
	return n, nil
}

func (r *fakeJobRepo) CountByRecruiterAndStatus(_ context.Context, recruiterID uint, status models.JobStatus) (int64, error) {
	var n int64
	for _, j := range r.jobs {
		if j.RecruiterID == recruiterID && j.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeApplicationRepo struct {
	apps   map[uint]*models.Application
	jobs   *fakeJobRepo
	nextID uint
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[uint]*models.Application{}, jobs: jobs, nextID: 1}
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *models.Application) error {
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.StudentID == app.StudentID {
			return repositories.ErrDuplicate
		}
	}
	app.ID = r.nextID
	r.nextID++
	r.apps[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) FindByID(_ context.Context, id uint) (*models.Application, error) {
	if a, ok := r.apps[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeApplicationRepo) FindByJobAndStudent(_ context.Context, jobID, studentID uint) (*models.Application, error) {
	for _, a := range r.apps {
		if a.JobID == jobID && a.StudentID == studentID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id uint, status models.ApplicationStatus) error {
	if a, ok := r.apps[id]; ok {
		a.Status = status
		return nil
	}
	return repositories.ErrNotFound
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.apps[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.apps, id)
	return nil
}

func (r *fakeApplicationRepo) CountByStudent(_ context.Context, studentID uint) (int64, error) {
	var n int64
	for _, a := range r.apps {
		if a.StudentID == studentID {
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) CountByStudentAndStatus(_ context.Context, studentID uint, status models.ApplicationStatus) (int64, error) {
	var n int64
	for _, a := range r.apps {
		if a.StudentID == studentID && a.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) CountByRecruiter(_ context.Context, recruiterID uint) (int64, error) {
	var n int64
	for _, a := range r.apps {
		if j, ok := r.jobs.jobs[a.JobID]; ok && j.RecruiterID == recruiterID {
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) CountByRecruiterAndStatus(_ context.Context, recruiterID uint, status models.ApplicationStatus) (int64, error) {
	var n int64
	for _, a := range r.apps {
		if j, ok := r.jobs.jobs[a.JobID]; ok && j.RecruiterID == recruiterID && a.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeSavedJobRepo struct {
	saved  map[uint]*models.SavedJob
	nextID uint
}

func newFakeSavedJobRepo() *fakeSavedJobRepo {
	return &fakeSavedJobRepo{saved: map[uint]*models.SavedJob{}, nextID: 1}
}

func (r *fakeSavedJobRepo) Create(_ context.Context, s *models.SavedJob) error {
	for _, existing := range r.saved {
		if existing.JobID == s.JobID && existing.StudentID == s.StudentID {
			return repositories.ErrDuplicate
		}
	}
	s.ID = r.nextID
	r.nextID++
	r.saved[s.ID] = s
	return nil
}

func (r *fakeSavedJobRepo) Delete(_ context.Context, jobID, studentID uint) (int64, error) {
	for id, s := range r.saved {
		if s.JobID == jobID && s.StudentID == studentID {
			delete(r.saved, id)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeSavedJobRepo) Exists(_ context.Context, jobID, studentID uint) (bool, error) {
	for _, s := range r.saved {
		if s.JobID == jobID && s.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSavedJobRepo) CountByStudent(_ context.Context, studentID uint) (int64, error) {
	var n int64
	for _, s := range r.saved {
		if s.StudentID == studentID {
			n++
		}
	}
	return n, nil
}

// fakeListingRepo returns canned pages; the count drives the window
// math under test.
type fakeListingRepo struct {
	total        int
	jobs         []repositories.JobListItem
	companies    []repositories.CompanyListItem
	ownedJobs    []repositories.OwnedJobItem
	applications []repositories.ApplicationListItem
	savedJobs    []repositories.SavedJobItem
	locations    []string

	lastLimit  int
	lastOffset int
	lastQuery  query.Query
}

func (r *fakeListingRepo) record(q query.Query, limit, offset int) {
	r.lastQuery = q
	r.lastLimit = limit
	r.lastOffset = offset
}

func (r *fakeListingRepo) CountJobs(_ context.Context, q query.Query) (int, error) {
	r.lastQuery = q
	return r.total, nil
}

func (r *fakeListingRepo) FetchJobs(_ context.Context, q query.Query, limit, offset int) ([]repositories.JobListItem, error) {
	r.record(q, limit, offset)
	return r.jobs, nil
}

func (r *fakeListingRepo) CountCompanies(_ context.Context, q query.Query) (int, error) {
	r.lastQuery = q
	return r.total, nil
}

func (r *fakeListingRepo) FetchCompanies(_ context.Context, q query.Query, limit, offset int) ([]repositories.CompanyListItem, error) {
	r.record(q, limit, offset)
	return r.companies, nil
}

func (r *fakeListingRepo) CountOwnedJobs(_ context.Context, q query.Query) (int, error) {
	r.lastQuery = q
	return r.total, nil
}

func (r *fakeListingRepo) FetchOwnedJobs(_ context.Context, q query.Query, limit, offset int) ([]repositories.OwnedJobItem, error) {
	r.record(q, limit, offset)
	return r.ownedJobs, nil
}

func (r *fakeListingRepo) CountRecruiterApplications(_ context.Context, q query.Query) (int, error) {
	r.lastQuery = q
	return r.total, nil
}

func (r *fakeListingRepo) FetchRecruiterApplications(_ context.Context, q query.Query, limit, offset int) ([]repositories.ApplicationListItem, error) {
	r.record(q, limit, offset)
	return r.applications, nil
}

func (r *fakeListingRepo) CountStudentApplications(_ context.Context, q query.Query) (int, error) {
	r.lastQuery = q
	return r.total, nil
}

func (r *fakeListingRepo) FetchStudentApplications(_ context.Context, q query.Query, limit, offset int) ([]repositories.ApplicationListItem, error) {
	r.record(q, limit, offset)
	return r.applications, nil
}

func (r *fakeListingRepo) CountSavedJobs(_ context.Context, q query.Query) (int, error) {
	r.lastQuery = q
	return r.total, nil
}

func (r *fakeListingRepo) FetchSavedJobs(_ context.Context, q query.Query, limit, offset int) ([]repositories.SavedJobItem, error) {
	r.record(q, limit, offset)
	return r.savedJobs, nil
}

func (r *fakeListingRepo) DistinctLocations(_ context.Context) ([]string, error) {
	return r.locations, nil
}
