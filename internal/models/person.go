package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Person is the directory aggregate root. A full profile read always
// returns the Person together with all five child collections; there is
// no partial loading.
type Person struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FullName       string         `gorm:"not null;size:255;index" json:"full_name"`
	StudentID      string         `gorm:"size:50;uniqueIndex" json:"student_id"`
	Email          string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Phone          *string        `gorm:"size:30" json:"phone,omitempty"`
	Bio            string         `gorm:"type:text" json:"bio"`
	Location       string         `gorm:"size:255;index" json:"location"`
	EnrollmentYear int            `gorm:"index" json:"enrollment_year"`
	Major          string         `gorm:"size:255" json:"major"`
	Degree         string         `gorm:"size:100" json:"degree"`
	Role           string         `gorm:"size:20;default:'member';index" json:"role"`
	PhotoURL       string         `gorm:"type:text" json:"photo_url"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Experiences    []Experience    `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"experiences,omitempty"`
	Skills         []Skill         `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
	Certifications []Certification `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"certifications,omitempty"`
	Educations     []Education     `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"educations,omitempty"`
	SocialLinks    []SocialLink    `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"social_links,omitempty"`
}

func (Person) TableName() string {
	return "people"
}

func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
