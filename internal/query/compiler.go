package query

import (
	"strings"

	"jobportal_backend/internal/models"
)

// Predicate accumulates conjunctive clauses with their bound arguments.
// Clauses use '?' placeholders; the number and order of arguments is fixed
// by the And calls, never assembled by positional splicing. Filter values
// only ever travel through args, never through the clause text.
type Predicate struct {
	clauses []string
	args    []any
}

func (p *Predicate) And(clause string, args ...any) {
	p.clauses = append(p.clauses, clause)
	p.args = append(p.args, args...)
}

func (p *Predicate) SQL() string {
	if len(p.clauses) == 0 {
		return "TRUE"
	}
	return strings.Join(p.clauses, " AND ")
}

func (p *Predicate) Args() []any {
	return p.args
}

// Query is a compiled listing query: a conjunctive WHERE body, its bound
// arguments and a deterministic ORDER BY expression. The same predicate
// feeds both the COUNT query and the page fetch.
type Query struct {
	Where string
	Order string
	Args  []any
}

// Rebind rewrites '?' placeholders to postgres-style $1..$n. None of the
// compiled clauses contain a literal question mark.
func Rebind(sql string) string {
	var b strings.Builder
	b.Grow(len(sql) + 8)
	n := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(itoa(n))
			continue
		}
		b.WriteByte(sql[i])
	}
	return b.String()
}

func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return itoa(n/10) + string(rune('0'+n%10))
}

func contains(term string) string {
	return "%" + term + "%"
}

// CompileJobListing builds the public board query. Joins company_profiles c
// on jobs j. status = open is the non-optional base clause; user filters
// are ANDed on top of it.
func CompileJobListing(f JobFilter) Query {
	p := &Predicate{}
	p.And("j.status = ?", string(models.JobStatusOpen))

	if f.Keyword != "" {
		kw := contains(f.Keyword)
		p.And("(j.title ILIKE ? OR j.description ILIKE ? OR c.company_name ILIKE ?)", kw, kw, kw)
	}
	if f.Location != "" {
		p.And("j.location ILIKE ?", contains(f.Location))
	}
	if f.JobType != "" {
		p.And("j.job_type = ?", string(f.JobType))
	}

	var order string
	switch f.Sort {
	case SortOldest:
		order = "j.posted_date ASC, j.id ASC"
	case SortTitleAsc:
		order = "j.title ASC, j.id ASC"
	case SortTitleDesc:
		order = "j.title DESC, j.id ASC"
	default: // SortNewest
		order = "j.posted_date DESC, j.id ASC"
	}

	return Query{Where: p.SQL(), Order: order, Args: p.Args()}
}

// CompileCompanyListing builds the company directory query over
// company_profiles c joined with users u; job_count is a correlated
// subselect the repository provides.
func CompileCompanyListing(f CompanyFilter) Query {
	p := &Predicate{}

	if f.Keyword != "" {
		kw := contains(f.Keyword)
		p.And("(c.company_name ILIKE ? OR c.industry ILIKE ? OR c.description ILIKE ?)", kw, kw, kw)
	}
	if f.Location != "" {
		p.And("c.location ILIKE ?", contains(f.Location))
	}

	var order string
	switch f.Sort {
	case SortNameDesc:
		order = "c.company_name DESC, c.id ASC"
	case SortJobsDesc:
		order = "job_count DESC, c.company_name ASC, c.id ASC"
	case SortNewest:
		order = "c.created_at DESC, c.id ASC"
	default: // SortNameAsc
		order = "c.company_name ASC, c.id ASC"
	}

	return Query{Where: p.SQL(), Order: order, Args: p.Args()}
}

// CompileOwnedJobs builds a recruiter's manage-jobs query over jobs j.
// Ownership is part of the predicate, not a post-filter.
func CompileOwnedJobs(recruiterID uint, f OwnedJobFilter) Query {
	p := &Predicate{}
	p.And("j.recruiter_id = ?", recruiterID)

	if f.Status != "" {
		p.And("j.status = ?", string(f.Status))
	}
	if f.Search != "" {
		kw := contains(f.Search)
		p.And("(j.title ILIKE ? OR j.location ILIKE ?)", kw, kw)
	}

	return Query{Where: p.SQL(), Order: "j.posted_date DESC, j.id ASC", Args: p.Args()}
}

// CompileRecruiterApplications builds the manage-applications query over
// applications a joined with jobs j and student_profiles sp.
func CompileRecruiterApplications(recruiterID uint, f ApplicationFilter) Query {
	p := &Predicate{}
	p.And("j.recruiter_id = ?", recruiterID)

	if f.Status != "" {
		p.And("a.status = ?", string(f.Status))
	}
	if f.JobID > 0 {
		p.And("j.id = ?", f.JobID)
	}
	if f.Search != "" {
		kw := contains(f.Search)
		p.And("(sp.full_name ILIKE ? OR j.title ILIKE ?)", kw, kw)
	}

	return Query{Where: p.SQL(), Order: "a.application_date DESC, a.id ASC", Args: p.Args()}
}

// CompileStudentApplications builds a student's own application list.
func CompileStudentApplications(studentID uint, f ApplicationFilter) Query {
	p := &Predicate{}
	p.And("a.student_id = ?", studentID)

	if f.Status != "" {
		p.And("a.status = ?", string(f.Status))
	}

	return Query{Where: p.SQL(), Order: "a.application_date DESC, a.id ASC", Args: p.Args()}
}

// CompileSavedJobs builds a student's bookmark list over saved_jobs s
// joined with jobs j and company_profiles c.
func CompileSavedJobs(studentID uint) Query {
	p := &Predicate{}
	p.And("s.student_id = ?", studentID)

	return Query{Where: p.SQL(), Order: "s.saved_date DESC, s.id ASC", Args: p.Args()}
}
