package services

import (
	"github.com/alumconnect/directory-backend/internal/dto"
	"github.com/alumconnect/directory-backend/internal/models"
)

// mapPersonToProfile builds the complete profile view. Directory-facing
// views pass includePhone=false so phone numbers stay private.
func mapPersonToProfile(p *models.Person, includePhone bool) *dto.ProfileResponse {
	resp := &dto.ProfileResponse{
		ID:             p.ID,
		FullName:       p.FullName,
		StudentID:      p.StudentID,
		Email:          p.Email,
		Bio:            p.Bio,
		Location:       p.Location,
		EnrollmentYear: p.EnrollmentYear,
		Major:          p.Major,
		Degree:         p.Degree,
		Role:           p.Role,
		PhotoURL:       p.PhotoURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Experiences:    make([]dto.ExperienceResponse, len(p.Experiences)),
		Skills:         make([]dto.SkillResponse, len(p.Skills)),
		Certifications: make([]dto.CertificationResponse, len(p.Certifications)),
		Educations:     make([]dto.EducationResponse, len(p.Educations)),
		SocialLinks:    make([]dto.SocialLinkResponse, len(p.SocialLinks)),
	}
	if includePhone {
		resp.Phone = p.Phone
	}
	for i := range p.Experiences {
		resp.Experiences[i] = mapExperience(&p.Experiences[i])
	}
	for i := range p.Skills {
		resp.Skills[i] = mapSkill(&p.Skills[i])
	}
	for i := range p.Certifications {
		resp.Certifications[i] = mapCertification(&p.Certifications[i])
	}
	for i := range p.Educations {
		resp.Educations[i] = mapEducation(&p.Educations[i])
	}
	for i := range p.SocialLinks {
		resp.SocialLinks[i] = mapSocialLink(&p.SocialLinks[i])
	}
	return resp
}

func mapExperience(e *models.Experience) dto.ExperienceResponse {
	return dto.ExperienceResponse{
		ID:          e.ID,
		Company:     e.Company,
		Position:    e.Position,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		IsCurrent:   e.IsCurrent,
		Description: e.Description,
		Location:    e.Location,
	}
}

func mapSkill(s *models.Skill) dto.SkillResponse {
	return dto.SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category, Level: s.Level}
}

func mapCertification(c *models.Certification) dto.CertificationResponse {
	return dto.CertificationResponse{
		ID:            c.ID,
		Name:          c.Name,
		Issuer:        c.Issuer,
		IssueDate:     c.IssueDate,
		ExpiryDate:    c.ExpiryDate,
		CredentialID:  c.CredentialID,
		CredentialURL: c.CredentialURL,
	}
}

func mapEducation(e *models.Education) dto.EducationResponse {
	return dto.EducationResponse{
		ID:           e.ID,
		Institution:  e.Institution,
		Degree:       e.Degree,
		FieldOfStudy: e.FieldOfStudy,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Grade:        e.Grade,
		Description:  e.Description,
	}
}

func mapSocialLink(l *models.SocialLink) dto.SocialLinkResponse {
	return dto.SocialLinkResponse{ID: l.ID, Platform: l.Platform, URL: l.URL, Username: l.Username}
}
