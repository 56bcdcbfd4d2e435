package services

import (
	"strings"
	"testing"
	"time"

	"github.com/alumconnect/directory-backend/internal/cache"
	"github.com/alumconnect/directory-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing. A single
// connection keeps sqlite happy under the concurrent section writes.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Person{},
		&models.Experience{},
		&models.Skill{},
		&models.Certification{},
		&models.Education{},
		&models.SocialLink{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testCache(t *testing.T) *cache.Store {
	t.Helper()
	return cache.New(time.Minute)
}

type seedPerson struct {
	name     string
	year     int
	location string
	major    string
	role     string
	company  string // non-empty seeds one is_current experience
}

func seedPeople(t *testing.T, db *gorm.DB, seeds []seedPerson) []uuid.UUID {
	t.Helper()

	// Spread created_at so scan order matches seed order even when the
	// clock would stamp several rows identically.
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ids := make([]uuid.UUID, len(seeds))
	for i, s := range seeds {
		role := s.role
		if role == "" {
			role = models.RoleMember
		}
		p := models.Person{
			ID:             uuid.New(),
			FullName:       s.name,
			StudentID:      uuid.NewString()[:8],
			Email:          uuid.NewString()[:8] + "@example.com",
			Location:       s.location,
			EnrollmentYear: s.year,
			Major:          s.major,
			Role:           role,
		}
		p.CreatedAt = base.Add(time.Duration(i) * time.Second)
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("failed to seed person %q: %v", s.name, err)
		}
		ids[i] = p.ID
		if s.company != "" {
			exp := models.Experience{
				PersonID:  p.ID,
				Company:   s.company,
				Position:  "Engineer",
				IsCurrent: true,
			}
			if err := db.Create(&exp).Error; err != nil {
				t.Fatalf("failed to seed experience for %q: %v", s.name, err)
			}
		}
	}
	return ids
}

func intPtr(n int) *int { return &n }
