package cache

import (
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Key namespaces. Directory pages are keyed per filter descriptor, so
// invalidating the directory means dropping the whole prefix.
const (
	profilePrefix   = "profile:"
	directoryPrefix = "directory:"
	statsKey        = "stats"
	optionsKey      = "filter-options"
)

// Store is a TTL read cache for successful reads. Writes must invalidate
// the owning person's profile entry and, for directory-affecting writes,
// the directory and stats entries.
type Store struct {
	c *gocache.Cache
}

func New(ttl time.Duration) *Store {
	return &Store{c: gocache.New(ttl, 2*ttl)}
}

func ProfileKey(id uuid.UUID) string {
	return profilePrefix + id.String()
}

func StatsKey() string { return statsKey }

func OptionsKey() string { return optionsKey }

func (s *Store) Get(key string) (interface{}, bool) {
	if s == nil {
		return nil, false
	}
	return s.c.Get(key)
}

func (s *Store) Set(key string, val interface{}) {
	if s == nil {
		return
	}
	s.c.SetDefault(key, val)
}

// InvalidateProfile drops one person's cached profile view.
func (s *Store) InvalidateProfile(id uuid.UUID) {
	if s == nil {
		return
	}
	s.c.Delete(ProfileKey(id))
}

// InvalidateDirectory drops every cached directory page plus the stats and
// filter-option entries. Profile edits change both individual and
// aggregate views.
func (s *Store) InvalidateDirectory() {
	if s == nil {
		return
	}
	for key := range s.c.Items() {
		if strings.HasPrefix(key, directoryPrefix) {
			s.c.Delete(key)
		}
	}
	s.c.Delete(statsKey)
	s.c.Delete(optionsKey)
}
