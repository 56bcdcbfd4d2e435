package cache

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestStore_ProfileInvalidation(t *testing.T) {
	s := New(time.Minute)
	a, b := uuid.New(), uuid.New()

	s.Set(ProfileKey(a), "profile-a")
	s.Set(ProfileKey(b), "profile-b")

	s.InvalidateProfile(a)

	if _, ok := s.Get(ProfileKey(a)); ok {
		t.Fatalf("profile a still cached after invalidation")
	}
	if v, ok := s.Get(ProfileKey(b)); !ok || v != "profile-b" {
		t.Fatalf("profile b dropped by unrelated invalidation")
	}
}

func TestStore_DirectoryInvalidationDropsAllPagesAndStats(t *testing.T) {
	s := New(time.Minute)

	s.Set("directory:s=|y=2010|l=|c=|p=1|n=12", "page1")
	s.Set("directory:s=ahmad|y=|l=|c=|p=2|n=12", "page2")
	s.Set(StatsKey(), "stats")
	s.Set(OptionsKey(), "options")
	s.Set(ProfileKey(uuid.New()), "profile")

	s.InvalidateDirectory()

	for _, key := range []string{
		"directory:s=|y=2010|l=|c=|p=1|n=12",
		"directory:s=ahmad|y=|l=|c=|p=2|n=12",
		StatsKey(),
		OptionsKey(),
	} {
		if _, ok := s.Get(key); ok {
			t.Fatalf("%q still cached after directory invalidation", key)
		}
	}
}

// A nil store is valid: every operation is a no-op, so components can run
// uncached.
func TestStore_NilIsNoop(t *testing.T) {
	var s *Store
	s.Set("k", "v")
	if _, ok := s.Get("k"); ok {
		t.Fatalf("nil store returned a value")
	}
	s.InvalidateProfile(uuid.New())
	s.InvalidateDirectory()
}
