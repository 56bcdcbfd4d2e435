package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/alumconnect/directory-backend/internal/cache"
	"github.com/alumconnect/directory-backend/internal/dto"
	"github.com/alumconnect/directory-backend/internal/models"
	"gorm.io/gorm"
)

// DirectoryPage is one fetched page plus its pagination metadata.
type DirectoryPage struct {
	Entries    []dto.ProfileResponse
	Pagination dto.Pagination
}

// DirectoryService runs filtered, paginated reads over the directory.
//
// Search, year and location are pushed down to the store. The company
// filter is not: it needs a cross-collection join against current
// experiences, so it is applied as a post-filter on the already-paginated
// page. As a consequence total/totalPages do not account for the company
// filter. Known limitation, kept rather than silently fixed.
type DirectoryService struct {
	db    *gorm.DB
	cache *cache.Store
}

func NewDirectoryService(db *gorm.DB, store *cache.Store) *DirectoryService {
	return &DirectoryService{db: db, cache: store}
}

// List fetches one directory page for the given predicate. A predicate
// with zero matches yields an empty page, not an error. Phone numbers are
// never included in directory views.
func (s *DirectoryService) List(ctx context.Context, pred DirectoryPredicate) (*DirectoryPage, error) {
	if pred.Page < 1 {
		pred.Page = 1
	}
	if pred.Limit < 1 {
		pred.Limit = DefaultPageSize
	}

	if cached, ok := s.cache.Get(pred.CacheKey()); ok {
		if page, ok := cached.(*DirectoryPage); ok {
			return page, nil
		}
	}

	query := s.db.WithContext(ctx).Model(&models.Person{})
	if pred.Search != "" {
		query = query.Where("LOWER(full_name) LIKE ?", "%"+strings.ToLower(pred.Search)+"%")
	}
	if pred.Year != nil {
		query = query.Where("enrollment_year = ?", *pred.Year)
	}
	if pred.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(pred.Location)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count directory entries: %w", err)
	}

	var people []models.Person
	err := query.
		Preload("Experiences").
		Preload("Skills").
		Preload("Certifications").
		Preload("Educations").
		Preload("SocialLinks").
		Order("full_name ASC, id ASC").
		Limit(pred.Limit).
		Offset((pred.Page - 1) * pred.Limit).
		Find(&people).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch directory page: %w", err)
	}

	entries := make([]dto.ProfileResponse, 0, len(people))
	for i := range people {
		if pred.Company != "" && !hasCurrentCompany(people[i].Experiences, pred.Company) {
			continue
		}
		entries = append(entries, *mapPersonToProfile(&people[i], false))
	}

	page := &DirectoryPage{
		Entries:    entries,
		Pagination: dto.NewPagination(pred.Page, pred.Limit, total),
	}
	s.cache.Set(pred.CacheKey(), page)
	return page, nil
}

// hasCurrentCompany reports whether any experience flagged is_current has
// a company matching the filter as a case-insensitive substring.
func hasCurrentCompany(exps []models.Experience, company string) bool {
	needle := strings.ToLower(company)
	for i := range exps {
		if exps[i].IsCurrent && strings.Contains(strings.ToLower(exps[i].Company), needle) {
			return true
		}
	}
	return false
}
