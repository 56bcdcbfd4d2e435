package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/alumconnect/directory-backend/internal/cache"
	"github.com/alumconnect/directory-backend/internal/dto"
	"github.com/alumconnect/directory-backend/internal/models"
	"gorm.io/gorm"
)

// StatsService computes grouped counts over the undeleted member
// population. Nothing is persisted; every call reads the live rows.
type StatsService struct {
	db    *gorm.DB
	cache *cache.Store
}

func NewStatsService(db *gorm.DB, store *cache.Store) *StatsService {
	return &StatsService{db: db, cache: store}
}

// Directory returns the member total plus per-dimension (value, count)
// lists sorted descending by count. Absent values (empty string, zero
// year) are excluded before counting. Ties keep encounter order, with
// rows scanned in (created_at, id) order so the result is deterministic.
// Company counts come only from experiences flagged is_current.
func (s *StatsService) Directory(ctx context.Context) (*dto.DirectoryStats, error) {
	if cached, ok := s.cache.Get(cache.StatsKey()); ok {
		if stats, ok := cached.(*dto.DirectoryStats); ok {
			return stats, nil
		}
	}

	members := s.db.WithContext(ctx).Model(&models.Person{}).Where("role = ?", models.RoleMember)

	var total int64
	if err := members.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	var rows []struct {
		EnrollmentYear int
		Location       string
		Major          string
	}
	err := members.Session(&gorm.Session{}).
		Select("enrollment_year, location, major").
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member attributes: %w", err)
	}

	years := make([]int, 0, len(rows))
	locations := make([]string, 0, len(rows))
	majors := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.EnrollmentYear != 0 {
			years = append(years, r.EnrollmentYear)
		}
		if r.Location != "" {
			locations = append(locations, r.Location)
		}
		if r.Major != "" {
			majors = append(majors, r.Major)
		}
	}

	var companies []string
	err = s.db.WithContext(ctx).Model(&models.Experience{}).
		Joins("JOIN people ON people.id = experiences.person_id AND people.deleted_at IS NULL AND people.role = ?", models.RoleMember).
		Where("experiences.is_current = ?", true).
		Where("experiences.company <> ''").
		Order("experiences.created_at ASC, experiences.id ASC").
		Pluck("experiences.company", &companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current employers: %w", err)
	}

	stats := &dto.DirectoryStats{
		TotalMembers: total,
		ByYear:       groupYears(years),
		ByLocation:   groupValues(locations),
		ByCompany:    groupValues(companies),
		ByMajor:      groupValues(majors),
	}
	s.cache.Set(cache.StatsKey(), stats)
	return stats, nil
}

// FilterOptions derives the directory dropdown contents from the same
// dimensions: distinct years descending (recency first), the rest sorted
// alphabetically for browsing.
func (s *StatsService) FilterOptions(ctx context.Context) (*dto.FilterOptions, error) {
	if cached, ok := s.cache.Get(cache.OptionsKey()); ok {
		if opts, ok := cached.(*dto.FilterOptions); ok {
			return opts, nil
		}
	}

	stats, err := s.Directory(ctx)
	if err != nil {
		return nil, err
	}

	opts := &dto.FilterOptions{
		Years:     make([]int, 0, len(stats.ByYear)),
		Locations: make([]string, 0, len(stats.ByLocation)),
		Companies: make([]string, 0, len(stats.ByCompany)),
		Majors:    make([]string, 0, len(stats.ByMajor)),
	}
	for _, y := range stats.ByYear {
		opts.Years = append(opts.Years, y.Year)
	}
	for _, v := range stats.ByLocation {
		opts.Locations = append(opts.Locations, v.Value)
	}
	for _, v := range stats.ByCompany {
		opts.Companies = append(opts.Companies, v.Value)
	}
	for _, v := range stats.ByMajor {
		opts.Majors = append(opts.Majors, v.Value)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(opts.Years)))
	sort.Strings(opts.Locations)
	sort.Strings(opts.Companies)
	sort.Strings(opts.Majors)

	s.cache.Set(cache.OptionsKey(), opts)
	return opts, nil
}

// groupValues counts occurrences by exact equality and sorts descending by
// count. The sort is stable, so tied values keep encounter order.
func groupValues(values []string) []dto.ValueCount {
	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	out := make([]dto.ValueCount, 0, len(order))
	for _, v := range order {
		out = append(out, dto.ValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func groupYears(years []int) []dto.YearCount {
	counts := make(map[int]int, len(years))
	order := make([]int, 0, len(years))
	for _, y := range years {
		if _, seen := counts[y]; !seen {
			order = append(order, y)
		}
		counts[y]++
	}
	out := make([]dto.YearCount, 0, len(order))
	for _, y := range order {
		out = append(out, dto.YearCount{Year: y, Count: counts[y]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
