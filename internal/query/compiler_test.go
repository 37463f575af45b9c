package query

import (
	"strings"
	"testing"

	"jobportal_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCompileJobListingBaseClause(t *testing.T) {
	q := CompileJobListing(JobFilter{Sort: SortNewest})

	assert.Equal(t, "j.status = ?", q.Where)
	assert.Equal(t, []any{"open"}, q.Args)
	assert.Equal(t, "j.posted_date DESC, j.id ASC", q.Order)
}

func TestCompileJobListingAllFilters(t *testing.T) {
	q := CompileJobListing(JobFilter{
		Keyword:  "engineer",
		Location: "Remote",
		JobType:  models.JobTypeContract,
		Sort:     SortTitleAsc,
	})

	assert.Equal(t,
		"j.status = ? AND "+
			"(j.title ILIKE ? OR j.description ILIKE ? OR c.company_name ILIKE ?) AND "+
			"j.location ILIKE ? AND "+
			"j.job_type = ?",
		q.Where)
	assert.Equal(t, []any{"open", "%engineer%", "%engineer%", "%engineer%", "%Remote%", "contract"}, q.Args)
	assert.Equal(t, "j.title ASC, j.id ASC", q.Order)
}

// Filter values must never appear in the predicate text, only in Args,
// for every filter combination.
func TestCompileNeverInterpolatesFilterText(t *testing.T) {
	hostile := "x' OR '1'='1 --"

	queries := []Query{
		CompileJobListing(JobFilter{Keyword: hostile, Location: hostile}),
		CompileCompanyListing(CompanyFilter{Keyword: hostile, Location: hostile}),
		CompileOwnedJobs(7, OwnedJobFilter{Search: hostile}),
		CompileRecruiterApplications(7, ApplicationFilter{Search: hostile}),
	}

	for _, q := range queries {
		assert.NotContains(t, q.Where, hostile)
		assert.NotContains(t, q.Order, hostile)
		// Placeholder count must match the argument count exactly.
		assert.Equal(t, len(q.Args), strings.Count(q.Where, "?"))
	}
}

func TestCompileOwnedJobsOwnershipInPredicate(t *testing.T) {
	q := CompileOwnedJobs(42, OwnedJobFilter{Status: models.JobStatusClosed, Search: "intern"})

	assert.True(t, strings.HasPrefix(q.Where, "j.recruiter_id = ?"))
	assert.Equal(t, []any{uint(42), "closed", "%intern%", "%intern%"}, q.Args)
}

func TestCompileRecruiterApplications(t *testing.T) {
	q := CompileRecruiterApplications(9, ApplicationFilter{
		Status: models.ApplicationStatusPending,
		JobID:  3,
		Search: "jane",
	})

	assert.Equal(t,
		"j.recruiter_id = ? AND a.status = ? AND j.id = ? AND (sp.full_name ILIKE ? OR j.title ILIKE ?)",
		q.Where)
	assert.Equal(t, []any{uint(9), "pending", uint(3), "%jane%", "%jane%"}, q.Args)
	assert.Equal(t, "a.application_date DESC, a.id ASC", q.Order)
}

func TestCompileStudentApplicationsStatusOptional(t *testing.T) {
	q := CompileStudentApplications(5, ApplicationFilter{})
	assert.Equal(t, "a.student_id = ?", q.Where)
	assert.Equal(t, []any{uint(5)}, q.Args)

	q = CompileStudentApplications(5, ApplicationFilter{Status: models.ApplicationStatusRejected})
	assert.Equal(t, "a.student_id = ? AND a.status = ?", q.Where)
}

func TestCompileCompanyListingOrderings(t *testing.T) {
	assert.Equal(t, "c.company_name ASC, c.id ASC",
		CompileCompanyListing(CompanyFilter{Sort: SortNameAsc}).Order)
	assert.Equal(t, "job_count DESC, c.company_name ASC, c.id ASC",
		CompileCompanyListing(CompanyFilter{Sort: SortJobsDesc}).Order)
	// Empty predicate compiles to TRUE, never to an empty WHERE body.
	assert.Equal(t, "TRUE", CompileCompanyListing(CompanyFilter{}).Where)
}

func TestEveryOrderingHasStableTieBreak(t *testing.T) {
	for _, sort := range []SortKey{SortNewest, SortOldest, SortTitleAsc, SortTitleDesc} {
		q := CompileJobListing(JobFilter{Sort: sort})
		assert.Contains(t, q.Order, "j.id ASC", "sort %s must tie-break on id", sort)
	}
	for _, sort := range []SortKey{SortNameAsc, SortNameDesc, SortJobsDesc, SortNewest} {
		q := CompileCompanyListing(CompanyFilter{Sort: sort})
		assert.Contains(t, q.Order, "c.id ASC", "sort %s must tie-break on id", sort)
	}
}

func TestRebind(t *testing.T) {
	assert.Equal(t, "a = $1 AND b ILIKE $2", Rebind("a = ? AND b ILIKE ?"))
	assert.Equal(t, "no placeholders", Rebind("no placeholders"))

	// Two-digit placeholder numbers render correctly.
	in := strings.Repeat("? ", 12)
	out := Rebind(in)
	assert.Contains(t, out, "$10")
	assert.Contains(t, out, "$12")
}
