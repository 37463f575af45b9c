package models

import "gorm.io/datatypes"

type StudentProfile struct {
	BaseModel
	UserID     uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName   string `gorm:"size:100;not null" json:"full_name"`
	Phone      string `gorm:"size:20" json:"phone"`
	Address    string `json:"address"`
	Education  string `json:"education"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	ResumePath string `gorm:"size:255" json:"resume_path"`
	ProfilePic string `gorm:"size:255" json:"profile_pic"`
}

type CompanyProfile struct {
	BaseModel
	UserID      uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName string         `gorm:"size:100;not null" json:"company_name"`
	Description string         `json:"description"`
	Industry    string         `gorm:"size:100" json:"industry"`
	Location    string         `gorm:"size:100" json:"location"`
	Website     string         `gorm:"size:255" json:"website"`
	LogoPath    string         `gorm:"size:255" json:"logo_path"`
	FoundedYear int            `json:"founded_year"`
	CompanySize string         `gorm:"size:50" json:"company_size"`
	SocialLinks datatypes.JSON `gorm:"type:jsonb" json:"social_links"`
}
