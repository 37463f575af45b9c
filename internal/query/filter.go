package query

import (
	"net/url"
	"strconv"
	"strings"

	"jobportal_backend/internal/models"
)

// Params is the raw, string-keyed listing request surface. All keys are
// optional; parsing never fails, it defaults.
type Params map[string]string

func ParamsFromValues(v url.Values) Params {
	p := make(Params, len(v))
	for key := range v {
		p[key] = strings.TrimSpace(v.Get(key))
	}
	return p
}

func (p Params) get(key string) string {
	return strings.TrimSpace(p[key])
}

// SortKey enumerates every ordering a listing can request. Raw values
// outside the listing's allowed set fall back to its default silently;
// permissive defaults are the policy here, not validation-by-rejection.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortTitleAsc  SortKey = "title_asc"
	SortTitleDesc SortKey = "title_desc"
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
	SortJobsDesc  SortKey = "jobs_desc"
)

func parseSort(raw string, allowed []SortKey, fallback SortKey) SortKey {
	for _, k := range allowed {
		if SortKey(raw) == k {
			return k
		}
	}
	return fallback
}

// parsePage clamps to >= 1. Clamping to <= totalPages happens later, in
// PageWindow, once the count query has run.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// JobFilter is the normalized filter set for the public job board.
type JobFilter struct {
	Keyword  string
	Location string
	JobType  models.JobType // empty means "any type"
	Sort     SortKey
	Page     int
}

var jobSorts = []SortKey{SortNewest, SortOldest, SortTitleAsc, SortTitleDesc}

func ParseJobFilter(p Params) JobFilter {
	f := JobFilter{
		Keyword:  p.get("keyword"),
		Location: p.get("location"),
		Sort:     parseSort(p.get("sort"), jobSorts, SortNewest),
		Page:     parsePage(p.get("page")),
	}
	// An unknown job type cannot match anything, so treat it as absent
	// rather than producing a guaranteed-empty listing.
	if jt, err := models.ParseJobType(p.get("job_type")); err == nil {
		f.JobType = jt
	}
	return f
}

// CompanyFilter is the normalized filter set for the company directory.
type CompanyFilter struct {
	Keyword  string
	Location string
	Sort     SortKey
	Page     int
}

var companySorts = []SortKey{SortNameAsc, SortNameDesc, SortJobsDesc, SortNewest}

func ParseCompanyFilter(p Params) CompanyFilter {
	return CompanyFilter{
		Keyword:  p.get("keyword"),
		Location: p.get("location"),
		Sort:     parseSort(p.get("sort"), companySorts, SortNameAsc),
		Page:     parsePage(p.get("page")),
	}
}

// OwnedJobFilter narrows a recruiter's own postings (manage screen).
type OwnedJobFilter struct {
	Status models.JobStatus // empty means "all"
	Search string
	Page   int
}

func ParseOwnedJobFilter(p Params) OwnedJobFilter {
	f := OwnedJobFilter{
		Search: p.get("search"),
		Page:   parsePage(p.get("page")),
	}
	if st, err := models.ParseJobStatus(p.get("status")); err == nil {
		f.Status = st
	}
	return f
}

// ApplicationFilter narrows application listings, both the recruiter's
// manage screen (JobID, Search apply) and the student's own list.
type ApplicationFilter struct {
	Status models.ApplicationStatus // empty means "all"
	JobID  uint
	Search string
	Page   int
}

func ParseApplicationFilter(p Params) ApplicationFilter {
	f := ApplicationFilter{
		Search: p.get("search"),
		Page:   parsePage(p.get("page")),
	}
	if st, err := models.ParseApplicationStatus(p.get("status")); err == nil {
		f.Status = st
	}
	if id, err := strconv.ParseUint(p.get("job_id"), 10, 64); err == nil && id > 0 {
		f.JobID = uint(id)
	}
	return f
}

// SavedJobFilter has no user filters; only the page number.
type SavedJobFilter struct {
	Page int
}

func ParseSavedJobFilter(p Params) SavedJobFilter {
	return SavedJobFilter{Page: parsePage(p.get("page"))}
}
