package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill proficiency levels, ordered weakest to strongest.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

// SocialPlatforms is the closed set of platforms a SocialLink may use.
// At most one link per platform per person; the write boundary enforces
// this, not the store.
var SocialPlatforms = []string{
	"linkedin", "twitter", "instagram", "facebook",
	"github", "youtube", "tiktok", "website",
}

// Experience is a work-history entry owned by one Person.
type Experience struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PersonID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"person_id"`
	Company     string     `gorm:"not null;size:255" json:"company"`
	Position    string     `gorm:"not null;size:255" json:"position"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	IsCurrent   bool       `gorm:"default:false;index" json:"is_current"`
	Description string     `gorm:"type:text" json:"description"`
	Location    string     `gorm:"size:255" json:"location"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Skill struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PersonID  uuid.UUID `gorm:"type:uuid;not null;index" json:"person_id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Category  string    `gorm:"size:100" json:"category"`
	Level     string    `gorm:"size:20" json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Certification struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PersonID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"person_id"`
	Name          string     `gorm:"not null;size:255" json:"name"`
	Issuer        string     `gorm:"not null;size:255" json:"issuer"`
	IssueDate     *time.Time `gorm:"type:date" json:"issue_date,omitempty"`
	ExpiryDate    *time.Time `gorm:"type:date" json:"expiry_date,omitempty"`
	CredentialID  string     `gorm:"size:255" json:"credential_id"`
	CredentialURL string     `gorm:"type:text" json:"credential_url"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type Education struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PersonID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"person_id"`
	Institution  string     `gorm:"not null;size:255" json:"institution"`
	Degree       string     `gorm:"not null;size:100" json:"degree"`
	FieldOfStudy string     `gorm:"size:255" json:"field_of_study"`
	StartDate    *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate      *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Grade        string     `gorm:"size:50" json:"grade"`
	Description  string     `gorm:"type:text" json:"description"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type SocialLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PersonID  uuid.UUID `gorm:"type:uuid;not null;index" json:"person_id"`
	Platform  string    `gorm:"not null;size:30" json:"platform"`
	URL       string    `gorm:"not null;type:text" json:"url"`
	Username  string    `gorm:"size:100" json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Ids are minted in Go so the same models work on stores without a uuid
// default (the sqlite test databases included).

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (c *Certification) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (l *SocialLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
