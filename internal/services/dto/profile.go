package dto

type UpdateStudentProfileRequest struct {
	FullName   string `json:"full_name" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"omitempty,max=20"`
	Address    string `json:"address" validate:"omitempty,max=255"`
	Education  string `json:"education" validate:"omitempty,max=2000"`
	Skills     string `json:"skills" validate:"omitempty,max=1000"`
	Experience string `json:"experience" validate:"omitempty,max=5000"`
	ResumePath string `json:"resume_path" validate:"omitempty,max=255"`
	ProfilePic string `json:"profile_pic" validate:"omitempty,max=255"`
}

type UpdateCompanyProfileRequest struct {
	CompanyName string            `json:"company_name" validate:"required,max=100"`
	Description string            `json:"description" validate:"omitempty,max=5000"`
	Industry    string            `json:"industry" validate:"omitempty,max=100"`
	Location    string            `json:"location" validate:"omitempty,max=100"`
	Website     string            `json:"website" validate:"omitempty,url,max=255"`
	LogoPath    string            `json:"logo_path" validate:"omitempty,max=255"`
	FoundedYear int               `json:"founded_year" validate:"omitempty,min=1800,max=2100"`
	CompanySize string            `json:"company_size" validate:"omitempty,max=50"`
	SocialLinks map[string]string `json:"social_links" validate:"omitempty"`
}

type StudentProfileResponse struct {
	UserID     uint   `json:"user_id"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	Education  string `json:"education,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`
	ResumePath string `json:"resume_path,omitempty"`
	ProfilePic string `json:"profile_pic,omitempty"`
}

type CompanyProfileResponse struct {
	ID          uint              `json:"id"`
	UserID      uint              `json:"user_id"`
	CompanyName string            `json:"company_name"`
	Description string            `json:"description,omitempty"`
	Industry    string            `json:"industry,omitempty"`
	Location    string            `json:"location,omitempty"`
	Website     string            `json:"website,omitempty"`
	LogoPath    string            `json:"logo_path,omitempty"`
	FoundedYear int               `json:"founded_year,omitempty"`
	CompanySize string            `json:"company_size,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

// CompanyDetailResponse is the public company page: the profile plus
// its currently open jobs.
type CompanyDetailResponse struct {
	Company  CompanyProfileResponse `json:"company"`
	OpenJobs []JobSummary           `json:"open_jobs"`
}
