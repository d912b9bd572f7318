package catalog

import (
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Entry is one priced material. Key is always Normalize(Name).
type Entry struct {
	Key   string
	Name  string
	Price int64
}

// Snapshot is an immutable, fully built catalog. Loads never mutate a
// published snapshot; they build a new one and swap it in.
type Snapshot struct {
	ID       string
	Source   string
	LoadedAt time.Time

	entries map[string]Entry
	names   []string
}

// NewSnapshot indexes entries by normalized name. Later entries overwrite
// earlier ones with the same key; entries whose name normalizes to "" are
// dropped.
func NewSnapshot(source string, entries []Entry) *Snapshot {
	s := &Snapshot{
		ID:       uuid.NewString(),
		Source:   source,
		LoadedAt: time.Now().UTC(),
		entries:  make(map[string]Entry, len(entries)),
	}

	order := make([]string, 0, len(entries))
	for _, e := range entries {
		e.Key = Normalize(e.Name)
		if e.Key == "" {
			continue
		}
		if _, seen := s.entries[e.Key]; !seen {
			order = append(order, e.Key)
		}
		s.entries[e.Key] = e
	}

	s.names = make([]string, 0, len(order))
	for _, k := range order {
		s.names = append(s.names, s.entries[k].Name)
	}
	slices.SortStableFunc(s.names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	return s
}

func emptySnapshot() *Snapshot {
	return &Snapshot{entries: map[string]Entry{}, names: []string{}}
}

func (s *Snapshot) Get(key string) (Entry, bool) {
	e, ok := s.entries[key]
	return e, ok
}

func (s *Snapshot) Len() int { return len(s.entries) }

// Names lists display names ordered case-insensitively. The slice is a copy.
func (s *Snapshot) Names() []string { return slices.Clone(s.names) }

type Deps struct {
	Fetcher Fetcher
	Log     *zap.Logger
	Metrics *Metrics
}

// Catalog holds the current snapshot. Reads are lock-free and always see a
// complete snapshot; a failed load leaves the current one in place.
type Catalog struct {
	fetcher Fetcher
	log     *zap.Logger
	metrics *Metrics

	current atomic.Pointer[Snapshot]
}

func New(deps Deps) *Catalog {
	if deps.Fetcher == nil {
		deps.Fetcher = NewHTTPFetcher(defaultFetchTimeout)
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	c := &Catalog{
		fetcher: deps.Fetcher,
		log:     deps.Log,
		metrics: deps.Metrics,
	}
	c.current.Store(emptySnapshot())
	return c
}

// Snapshot returns the current view. Callers that look up several keys
// should hold on to one snapshot rather than calling Get repeatedly.
func (c *Catalog) Snapshot() *Snapshot { return c.current.Load() }

func (c *Catalog) Get(key string) (Entry, bool) { return c.Snapshot().Get(key) }

func (c *Catalog) List() []string { return c.Snapshot().Names() }

func (c *Catalog) Size() int { return c.Snapshot().Len() }

// Ready reports whether any load has succeeded since start.
func (c *Catalog) Ready() bool { return c.Snapshot().ID != "" }

// Replace publishes s as the current snapshot.
func (c *Catalog) Replace(s *Snapshot) {
	c.current.Store(s)
	c.metrics.observeSnapshot(s)
}
