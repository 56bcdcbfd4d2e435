package dto

import (
	"time"

	"github.com/google/uuid"
)

// BasicProfileRequest is a partial update of the Person root row. Only
// non-nil fields are written.
type BasicProfileRequest struct {
	FullName       *string `json:"full_name" validate:"omitempty,min=1,max=255"`
	Phone          *string `json:"phone" validate:"omitempty,max=30"`
	Bio            *string `json:"bio"`
	Location       *string `json:"location" validate:"omitempty,max=255"`
	EnrollmentYear *int    `json:"enrollment_year" validate:"omitempty,min=1900,max=2100"`
	Major          *string `json:"major" validate:"omitempty,max=255"`
	Degree         *string `json:"degree" validate:"omitempty,max=100"`
	PhotoURL       *string `json:"photo_url"`
}

// Child-collection payloads. Client-supplied ids are ignored: a collection
// write replaces the whole set and mints fresh ids.

type ExperienceRequest struct {
	Company     string     `json:"company" validate:"required,max=255"`
	Position    string     `json:"position" validate:"required,max=255"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsCurrent   bool       `json:"is_current"`
	Description string     `json:"description"`
	Location    string     `json:"location" validate:"max=255"`
}

type SkillRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"max=100"`
	Level    string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}

type CertificationRequest struct {
	Name          string     `json:"name" validate:"required,max=255"`
	Issuer        string     `json:"issuer" validate:"required,max=255"`
	IssueDate     *time.Time `json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	CredentialID  string     `json:"credential_id" validate:"max=255"`
	CredentialURL string     `json:"credential_url" validate:"omitempty,url"`
}

type EducationRequest struct {
	Institution  string     `json:"institution" validate:"required,max=255"`
	Degree       string     `json:"degree" validate:"required,max=100"`
	FieldOfStudy string     `json:"field_of_study" validate:"max=255"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Grade        string     `json:"grade" validate:"max=50"`
	Description  string     `json:"description"`
}

type SocialLinkRequest struct {
	Platform string `json:"platform" validate:"required,oneof=linkedin twitter instagram facebook github youtube tiktok website"`
	URL      string `json:"url" validate:"required,url"`
	Username string `json:"username" validate:"max=100"`
}

// CompleteProfileRequest carries any subset of profile sections. A nil
// section is left untouched; a present-but-empty collection wipes it.
// Pointer-to-slice is what distinguishes the two.
type CompleteProfileRequest struct {
	Basic          *BasicProfileRequest    `json:"basic"`
	Experiences    *[]ExperienceRequest    `json:"experiences" validate:"omitempty,dive"`
	Skills         *[]SkillRequest         `json:"skills" validate:"omitempty,dive"`
	Certifications *[]CertificationRequest `json:"certifications" validate:"omitempty,dive"`
	Educations     *[]EducationRequest     `json:"educations" validate:"omitempty,dive"`
	SocialLinks    *[]SocialLinkRequest    `json:"social_links" validate:"omitempty,dive"`
}

// BasicProfileResponse is the root row alone, returned by the
// basic-fields update.
type BasicProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	StudentID      string    `json:"student_id"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone,omitempty"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	EnrollmentYear int       `json:"enrollment_year"`
	Major          string    `json:"major"`
	Degree         string    `json:"degree"`
	Role           string    `json:"role"`
	PhotoURL       string    `json:"photo_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProfileResponse is the complete profile view: the root row plus the
// current full contents of all five child collections.
type ProfileResponse struct {
	ID             uuid.UUID               `json:"id"`
	FullName       string                  `json:"full_name"`
	StudentID      string                  `json:"student_id"`
	Email          string                  `json:"email"`
	Phone          *string                 `json:"phone,omitempty"`
	Bio            string                  `json:"bio"`
	Location       string                  `json:"location"`
	EnrollmentYear int                     `json:"enrollment_year"`
	Major          string                  `json:"major"`
	Degree         string                  `json:"degree"`
	Role           string                  `json:"role"`
	PhotoURL       string                  `json:"photo_url"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
	Experiences    []ExperienceResponse    `json:"experiences"`
	Skills         []SkillResponse         `json:"skills"`
	Certifications []CertificationResponse `json:"certifications"`
	Educations     []EducationResponse     `json:"educations"`
	SocialLinks    []SocialLinkResponse    `json:"social_links"`
}

type ExperienceResponse struct {
	ID          uuid.UUID  `json:"id"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsCurrent   bool       `json:"is_current"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
}

type SkillResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Level    string    `json:"level"`
}

type CertificationResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Issuer        string     `json:"issuer"`
	IssueDate     *time.Time `json:"issue_date,omitempty"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	CredentialID  string     `json:"credential_id"`
	CredentialURL string     `json:"credential_url"`
}

type EducationResponse struct {
	ID           uuid.UUID  `json:"id"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Grade        string     `json:"grade"`
	Description  string     `json:"description"`
}

type SocialLinkResponse struct {
	ID       uuid.UUID `json:"id"`
	Platform string    `json:"platform"`
	URL      string    `json:"url"`
	Username string    `json:"username"`
}
