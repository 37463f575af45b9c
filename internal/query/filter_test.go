package query

import (
	"net/url"
	"testing"

	"jobportal_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseJobFilterDefaults(t *testing.T) {
	f := ParseJobFilter(Params{})

	assert.Equal(t, SortNewest, f.Sort)
	assert.Equal(t, 1, f.Page)
	assert.Empty(t, f.Keyword)
	assert.Empty(t, f.Location)
	assert.Empty(t, string(f.JobType))
}

func TestParseJobFilterUnknownSortFallsBack(t *testing.T) {
	// Permissive default: garbage sort keys never error, they just
	// produce the default ordering.
	f := ParseJobFilter(Params{"sort": "salary_desc; DROP TABLE jobs"})
	assert.Equal(t, SortNewest, f.Sort)

	// Company-only sort keys are not valid for the job board either.
	f = ParseJobFilter(Params{"sort": "name_asc"})
	assert.Equal(t, SortNewest, f.Sort)
}

func TestParseJobFilterUnknownJobTypeTreatedAsAbsent(t *testing.T) {
	f := ParseJobFilter(Params{"job_type": "freelance"})
	assert.Empty(t, string(f.JobType))

	f = ParseJobFilter(Params{"job_type": "internship"})
	assert.Equal(t, models.JobTypeInternship, f.JobType)
}

func TestParseJobFilterPage(t *testing.T) {
	assert.Equal(t, 7, ParseJobFilter(Params{"page": "7"}).Page)
	assert.Equal(t, 1, ParseJobFilter(Params{"page": "0"}).Page)
	assert.Equal(t, 1, ParseJobFilter(Params{"page": "-3"}).Page)
	assert.Equal(t, 1, ParseJobFilter(Params{"page": "abc"}).Page)
}

func TestParamsFromValuesTrimsWhitespace(t *testing.T) {
	v := url.Values{}
	v.Set("keyword", "  backend  ")
	v.Set("location", "\tBerlin ")

	p := ParamsFromValues(v)
	f := ParseJobFilter(p)

	assert.Equal(t, "backend", f.Keyword)
	assert.Equal(t, "Berlin", f.Location)
}

func TestParseCompanyFilterDefaults(t *testing.T) {
	f := ParseCompanyFilter(Params{})
	assert.Equal(t, SortNameAsc, f.Sort)
	assert.Equal(t, 1, f.Page)

	f = ParseCompanyFilter(Params{"sort": "jobs_desc"})
	assert.Equal(t, SortJobsDesc, f.Sort)
}

func TestParseOwnedJobFilterStatus(t *testing.T) {
	assert.Empty(t, string(ParseOwnedJobFilter(Params{"status": "all"}).Status))
	assert.Empty(t, string(ParseOwnedJobFilter(Params{}).Status))
	assert.Equal(t, models.JobStatusClosed, ParseOwnedJobFilter(Params{"status": "closed"}).Status)
}

func TestParseApplicationFilter(t *testing.T) {
	f := ParseApplicationFilter(Params{"status": "accepted", "job_id": "42", "search": "smith"})
	assert.Equal(t, models.ApplicationStatusAccepted, f.Status)
	assert.Equal(t, uint(42), f.JobID)
	assert.Equal(t, "smith", f.Search)

	f = ParseApplicationFilter(Params{"status": "withdrawn", "job_id": "-1"})
	assert.Empty(t, string(f.Status))
	assert.Zero(t, f.JobID)
}
