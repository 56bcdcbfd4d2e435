package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/alumconnect/directory-backend/internal/cache"
	"github.com/alumconnect/directory-backend/internal/dto"
	"github.com/alumconnect/directory-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var ErrPersonNotFound = errors.New("person not found")

// CollectionKind names one of the five child collections.
type CollectionKind string

const (
	KindExperiences    CollectionKind = "experiences"
	KindSkills         CollectionKind = "skills"
	KindCertifications CollectionKind = "certifications"
	KindEducations     CollectionKind = "educations"
	KindSocialLinks    CollectionKind = "social_links"
)

// ParseCollectionKind maps a route segment to a kind.
func ParseCollectionKind(s string) (CollectionKind, bool) {
	switch CollectionKind(s) {
	case KindExperiences, KindSkills, KindCertifications, KindEducations, KindSocialLinks:
		return CollectionKind(s), true
	}
	return "", false
}

// ProfileService reads and writes the Person aggregate. Collection writes
// use replace semantics: all rows owned by the person are deleted, then
// the new set is inserted with fresh ids. Rows the new set omits are gone;
// surviving rows get new identifiers.
type ProfileService struct {
	db    *gorm.DB
	cache *cache.Store
}

func NewProfileService(db *gorm.DB, store *cache.Store) *ProfileService {
	return &ProfileService{db: db, cache: store}
}

// Get returns the complete profile view: root row plus the current full
// contents of all five child collections.
func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error) {
	if cached, ok := s.cache.Get(cache.ProfileKey(id)); ok {
		if profile, ok := cached.(*dto.ProfileResponse); ok {
			return profile, nil
		}
	}

	person, err := s.fetchAggregate(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := mapPersonToProfile(person, true)
	s.cache.Set(cache.ProfileKey(id), profile)
	return profile, nil
}

// UpdateBasic writes only the supplied root-row scalar fields and returns
// the updated root row.
func (s *ProfileService) UpdateBasic(ctx context.Context, id uuid.UUID, req *dto.BasicProfileRequest) (*dto.BasicProfileResponse, error) {
	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.EnrollmentYear != nil {
		updates["enrollment_year"] = *req.EnrollmentYear
	}
	if req.Major != nil {
		updates["major"] = *req.Major
	}
	if req.Degree != nil {
		updates["degree"] = *req.Degree
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}

	if len(updates) > 0 {
		result := s.db.WithContext(ctx).Model(&models.Person{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update profile: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrPersonNotFound
		}
		s.invalidate(id)
	}

	var person models.Person
	if err := s.db.WithContext(ctx).First(&person, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	return mapPersonBasic(&person), nil
}

// ReplaceExperiences replaces the person's work history with the given
// set and returns the freshly inserted rows.
func (s *ProfileService) ReplaceExperiences(ctx context.Context, id uuid.UUID, items []dto.ExperienceRequest) ([]dto.ExperienceResponse, error) {
	rows := make([]models.Experience, len(items))
	for i, item := range items {
		rows[i] = models.Experience{
			ID:          uuid.New(),
			PersonID:    id,
			Company:     item.Company,
			Position:    item.Position,
			StartDate:   item.StartDate,
			EndDate:     item.EndDate,
			IsCurrent:   item.IsCurrent,
			Description: item.Description,
			Location:    item.Location,
		}
	}
	if err := replaceRows(ctx, s, id, rows); err != nil {
		return nil, err
	}
	out := make([]dto.ExperienceResponse, len(rows))
	for i := range rows {
		out[i] = mapExperience(&rows[i])
	}
	return out, nil
}

func (s *ProfileService) ReplaceSkills(ctx context.Context, id uuid.UUID, items []dto.SkillRequest) ([]dto.SkillResponse, error) {
	rows := make([]models.Skill, len(items))
	for i, item := range items {
		rows[i] = models.Skill{
			ID:       uuid.New(),
			PersonID: id,
			Name:     item.Name,
			Category: item.Category,
			Level:    item.Level,
		}
	}
	if err := replaceRows(ctx, s, id, rows); err != nil {
		return nil, err
	}
	out := make([]dto.SkillResponse, len(rows))
	for i := range rows {
		out[i] = mapSkill(&rows[i])
	}
	return out, nil
}

func (s *ProfileService) ReplaceCertifications(ctx context.Context, id uuid.UUID, items []dto.CertificationRequest) ([]dto.CertificationResponse, error) {
	rows := make([]models.Certification, len(items))
	for i, item := range items {
		rows[i] = models.Certification{
			ID:            uuid.New(),
			PersonID:      id,
			Name:          item.Name,
			Issuer:        item.Issuer,
			IssueDate:     item.IssueDate,
			ExpiryDate:    item.ExpiryDate,
			CredentialID:  item.CredentialID,
			CredentialURL: item.CredentialURL,
		}
	}
	if err := replaceRows(ctx, s, id, rows); err != nil {
		return nil, err
	}
	out := make([]dto.CertificationResponse, len(rows))
	for i := range rows {
		out[i] = mapCertification(&rows[i])
	}
	return out, nil
}

func (s *ProfileService) ReplaceEducations(ctx context.Context, id uuid.UUID, items []dto.EducationRequest) ([]dto.EducationResponse, error) {
	rows := make([]models.Education, len(items))
	for i, item := range items {
		rows[i] = models.Education{
			ID:           uuid.New(),
			PersonID:     id,
			Institution:  item.Institution,
			Degree:       item.Degree,
			FieldOfStudy: item.FieldOfStudy,
			StartDate:    item.StartDate,
			EndDate:      item.EndDate,
			Grade:        item.Grade,
			Description:  item.Description,
		}
	}
	if err := replaceRows(ctx, s, id, rows); err != nil {
		return nil, err
	}
	out := make([]dto.EducationResponse, len(rows))
	for i := range rows {
		out[i] = mapEducation(&rows[i])
	}
	return out, nil
}

// ReplaceSocialLinks additionally enforces at most one link per platform:
// when the input repeats a platform, the last occurrence wins. The store
// has no constraint for this, so the write boundary is where it holds.
func (s *ProfileService) ReplaceSocialLinks(ctx context.Context, id uuid.UUID, items []dto.SocialLinkRequest) ([]dto.SocialLinkResponse, error) {
	byPlatform := make(map[string]int, len(items))
	deduped := make([]dto.SocialLinkRequest, 0, len(items))
	for _, item := range items {
		if idx, seen := byPlatform[item.Platform]; seen {
			deduped[idx] = item
			continue
		}
		byPlatform[item.Platform] = len(deduped)
		deduped = append(deduped, item)
	}

	rows := make([]models.SocialLink, len(deduped))
	for i, item := range deduped {
		rows[i] = models.SocialLink{
			ID:       uuid.New(),
			PersonID: id,
			Platform: item.Platform,
			URL:      item.URL,
			Username: item.Username,
		}
	}
	if err := replaceRows(ctx, s, id, rows); err != nil {
		return nil, err
	}
	out := make([]dto.SocialLinkResponse, len(rows))
	for i := range rows {
		out[i] = mapSocialLink(&rows[i])
	}
	return out, nil
}

// ReplaceComplete writes any subset of profile sections. Section writes
// are issued concurrently and joined; once issued, each write runs to its
// own completion or failure, never cancelled by a sibling's error. The
// first failure is surfaced, and sections that completed are not rolled
// back. The store exposes no multi-statement transaction across
// collections, so a partial failure can leave the aggregate mixed. On
// success the full aggregate is re-read so the caller sees the store's
// authoritative post-write state, not a composition of write results.
func (s *ProfileService) ReplaceComplete(ctx context.Context, id uuid.UUID, req *dto.CompleteProfileRequest) (*dto.ProfileResponse, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	var g errgroup.Group

	if req.Basic != nil {
		g.Go(func() error {
			_, err := s.UpdateBasic(ctx, id, req.Basic)
			return err
		})
	}
	if req.Experiences != nil {
		g.Go(func() error {
			_, err := s.ReplaceExperiences(ctx, id, *req.Experiences)
			return err
		})
	}
	if req.Skills != nil {
		g.Go(func() error {
			_, err := s.ReplaceSkills(ctx, id, *req.Skills)
			return err
		})
	}
	if req.Certifications != nil {
		g.Go(func() error {
			_, err := s.ReplaceCertifications(ctx, id, *req.Certifications)
			return err
		})
	}
	if req.Educations != nil {
		g.Go(func() error {
			_, err := s.ReplaceEducations(ctx, id, *req.Educations)
			return err
		})
	}
	if req.SocialLinks != nil {
		g.Go(func() error {
			_, err := s.ReplaceSocialLinks(ctx, id, *req.SocialLinks)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.invalidate(id)

	person, err := s.fetchAggregate(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapPersonToProfile(person, true), nil
}

// replaceRows is the single-collection state machine: delete everything
// the person owns, then insert the new set when it is non-empty. A failure
// in either step leaves whatever the store already applied; prior contents
// are not restored.
func replaceRows[T any](ctx context.Context, s *ProfileService, id uuid.UUID, rows []T) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}

	// Deliberately two independent statements, not one transaction: the
	// storage contract is delete-then-insert, and a failing insert leaves
	// the collection cleared rather than restoring the prior contents.
	if err := s.db.WithContext(ctx).Where("person_id = ?", id).Delete(new(T)).Error; err != nil {
		return fmt.Errorf("failed to clear collection: %w", err)
	}
	if len(rows) > 0 {
		if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
			s.invalidate(id)
			return fmt.Errorf("failed to insert collection: %w", err)
		}
	}
	s.invalidate(id)
	return nil
}

func (s *ProfileService) ensureExists(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Person{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up person: %w", err)
	}
	if count == 0 {
		return ErrPersonNotFound
	}
	return nil
}

func (s *ProfileService) fetchAggregate(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := s.db.WithContext(ctx).
		Preload("Experiences").
		Preload("Skills").
		Preload("Certifications").
		Preload("Educations").
		Preload("SocialLinks").
		First(&person, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &person, nil
}

// invalidate drops the person's cached profile and the directory-wide
// caches; profile edits change both individual and aggregate views.
func (s *ProfileService) invalidate(id uuid.UUID) {
	s.cache.InvalidateProfile(id)
	s.cache.InvalidateDirectory()
}

func mapPersonBasic(p *models.Person) *dto.BasicProfileResponse {
	return &dto.BasicProfileResponse{
		ID:             p.ID,
		FullName:       p.FullName,
		StudentID:      p.StudentID,
		Email:          p.Email,
		Phone:          p.Phone,
		Bio:            p.Bio,
		Location:       p.Location,
		EnrollmentYear: p.EnrollmentYear,
		Major:          p.Major,
		Degree:         p.Degree,
		Role:           p.Role,
		PhotoURL:       p.PhotoURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
