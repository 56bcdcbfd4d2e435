package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultPageSize is the directory page size unless the caller overrides it.
const DefaultPageSize = 12

// SearchDebounceDelay is how long search input must be quiet before the
// committed search value updates.
const SearchDebounceDelay = 300 * time.Millisecond

// Sentinel dropdown values that mean "no constraint". They must never be
// passed through as literal filter values.
const (
	AllYears     = "All years"
	AllLocations = "All locations"
	AllCompanies = "All companies"
)

// DirectoryPredicate is the normalized filter descriptor handed to the
// directory fetcher. Zero fields mean "no constraint".
type DirectoryPredicate struct {
	Search   string
	Year     *int
	Location string
	Company  string
	Page     int
	Limit    int
}

// CacheKey is a stable textual form of the predicate, used as the read
// cache key for directory pages. Free-text fields are escaped so values
// containing the separator characters cannot alias another predicate's key.
func (p DirectoryPredicate) CacheKey() string {
	year := ""
	if p.Year != nil {
		year = strconv.Itoa(*p.Year)
	}
	return fmt.Sprintf("directory:s=%s|y=%s|l=%s|c=%s|p=%d|n=%d",
		url.QueryEscape(strings.ToLower(p.Search)), year,
		url.QueryEscape(strings.ToLower(p.Location)),
		url.QueryEscape(strings.ToLower(p.Company)), p.Page, p.Limit)
}

// BuildPredicate normalizes raw filter values into a predicate. Sentinel
// dropdown values and empty strings become absent; page is clamped to 1+
// and limit falls back to the default.
func BuildPredicate(search, year, location, company string, page, limit int) DirectoryPredicate {
	pred := DirectoryPredicate{
		Search:   strings.TrimSpace(search),
		Location: normalizeChoice(location, AllLocations),
		Company:  normalizeChoice(company, AllCompanies),
		Page:     page,
		Limit:    limit,
	}
	if y := normalizeChoice(year, AllYears); y != "" {
		if n, err := strconv.Atoi(y); err == nil && n > 0 {
			pred.Year = &n
		}
	}
	if pred.Page < 1 {
		pred.Page = 1
	}
	if pred.Limit < 1 {
		pred.Limit = DefaultPageSize
	}
	return pred
}

func normalizeChoice(val, sentinel string) string {
	val = strings.TrimSpace(val)
	if val == "" || strings.EqualFold(val, sentinel) {
		return ""
	}
	return val
}

// Debouncer delays a call until its delay has passed without a newer call.
// It holds at most one pending call: a new Call cancels and replaces any
// unfired one. Stop cancels the pending call for good, so a teardown never
// sees a stale fire.
type Debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Call schedules fn after the delay, replacing any pending call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stale := d.stopped || d.gen != gen
		d.mu.Unlock()
		if stale {
			return
		}
		fn()
	})
}

// Stop cancels any pending call. Further Calls are no-ops.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}

// FilterState tracks a consumer's live filter values and publishes a fresh
// predicate whenever one of them changes. Every change except the page
// itself resets the page to 1, so a stale page is never shown against a
// new filter set. Search input is debounced: TypedSearch reflects raw
// keystrokes immediately, while the committed predicate only updates after
// the input has been quiet for the debounce delay.
type FilterState struct {
	mu          sync.Mutex
	typedSearch string
	pred        DirectoryPredicate
	deb         *Debouncer
	onChange    func(DirectoryPredicate)
}

// NewFilterState returns a state seeded with page 1 and the default page
// size. onChange fires after every committed change; nil is allowed.
func NewFilterState(onChange func(DirectoryPredicate)) *FilterState {
	return &FilterState{
		pred:     DirectoryPredicate{Page: 1, Limit: DefaultPageSize},
		deb:      NewDebouncer(SearchDebounceDelay),
		onChange: onChange,
	}
}

// SetTypedSearch records a keystroke. The committed search value updates
// only after the debounce delay passes without another keystroke.
func (f *FilterState) SetTypedSearch(val string) {
	f.mu.Lock()
	f.typedSearch = val
	f.mu.Unlock()

	f.deb.Call(func() {
		f.commit(func(p *DirectoryPredicate) { p.Search = strings.TrimSpace(val) })
	})
}

// TypedSearch returns the raw typed value for UI echo.
func (f *FilterState) TypedSearch() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.typedSearch
}

func (f *FilterState) SetYear(year *int) {
	f.commit(func(p *DirectoryPredicate) { p.Year = year })
}

func (f *FilterState) SetLocation(location string) {
	f.commit(func(p *DirectoryPredicate) { p.Location = normalizeChoice(location, AllLocations) })
}

func (f *FilterState) SetCompany(company string) {
	f.commit(func(p *DirectoryPredicate) { p.Company = normalizeChoice(company, AllCompanies) })
}

// SetPage moves to another page of the current filter set. It is the one
// setter that does not reset the page.
func (f *FilterState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	f.mu.Lock()
	f.pred.Page = page
	pred := f.pred
	f.mu.Unlock()
	f.notify(pred)
}

// Predicate returns the current committed predicate.
func (f *FilterState) Predicate() DirectoryPredicate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pred
}

// Close cancels any pending debounced search commit.
func (f *FilterState) Close() {
	f.deb.Stop()
}

func (f *FilterState) commit(apply func(*DirectoryPredicate)) {
	f.mu.Lock()
	apply(&f.pred)
	f.pred.Page = 1
	pred := f.pred
	f.mu.Unlock()
	f.notify(pred)
}

func (f *FilterState) notify(pred DirectoryPredicate) {
	if f.onChange != nil {
		f.onChange(pred)
	}
}
