package models

type User struct {
	BaseModel
	Username     string   `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Relations
	StudentProfile *StudentProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"student_profile,omitempty"`
	CompanyProfile *CompanyProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"company_profile,omitempty"`
}
