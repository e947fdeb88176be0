package manager

import (
	"context"
	"errors"
	"sync"

	"github.com/abidraza5594/SecurePass/pkg/model"
	"github.com/abidraza5594/SecurePass/pkg/session"
	"github.com/abidraza5594/SecurePass/pkg/vault/index"
	"github.com/abidraza5594/SecurePass/pkg/vault/store"
	"github.com/abidraza5594/SecurePass/pkg/vault/view"
	"github.com/abidraza5594/SecurePass/pkg/vault/visibility"
)

// ErrNoSession is returned for record access while the session is loading
// or resolved to absent.
var ErrNoSession = errors.New("no resolved identity")

// Record is what a manager needs from a record type: identity plus the
// searchable view.
type Record interface {
	index.Entry
	GetID() string
}

// Manager drives one record kind for one session: it owns the last fetched
// list, the filter and pagination state, and the per-record visibility
// toggles. Every successful mutation is followed by a full re-list rather
// than a local patch, so the visible state always reflects the latest
// listing.
type Manager[T Record] struct {
	mu         sync.Mutex
	kind       model.Kind
	store      store.RecordStore[T]
	categoryOf func(T) string

	owner   string
	loading bool
	gen     uint64

	records  []T
	query    string
	category string
	pager    *view.Pager
	vis      *visibility.Set
}

// New creates a manager for one record kind.
func New[T Record](kind model.Kind, st store.RecordStore[T]) *Manager[T] {
	return &Manager[T]{
		kind:     kind,
		store:    st,
		loading:  true,
		category: index.CategoryAll,
		pager:    view.NewPager(view.DefaultPageSize),
		vis:      visibility.NewSet(),
	}
}

// WithCategory enables the exact-match category filter for this kind,
// deriving each record's category with categoryOf.
func (m *Manager[T]) WithCategory(categoryOf func(T) string) *Manager[T] {
	m.categoryOf = categoryOf
	return m
}

// Kind returns the record kind this manager drives.
func (m *Manager[T]) Kind() model.Kind { return m.kind }

// Visibility returns the session-scoped mask state.
func (m *Manager[T]) Visibility() *visibility.Set { return m.vis }

// HandleSession reacts to a session resolution. Loading suspends access;
// absent discards all state; a new identity discards the previous
// identity's state and re-lists.
func (m *Manager[T]) HandleSession(ctx context.Context, state session.State) error {
	m.mu.Lock()
	m.loading = state.Loading

	switch {
	case state.Loading:
		m.mu.Unlock()
		return nil
	case state.Identity == nil:
		m.owner = ""
		m.clearLocked()
		m.mu.Unlock()
		return nil
	default:
		if m.owner == state.Identity.OwnerID {
			m.mu.Unlock()
			return nil
		}
		m.owner = state.Identity.OwnerID
		m.clearLocked()
		m.mu.Unlock()
		return m.Refresh(ctx)
	}
}

// clearLocked drops everything tied to the previous identity and
// invalidates any in-flight list. Callers must hold m.mu.
func (m *Manager[T]) clearLocked() {
	m.gen++
	m.records = nil
	m.query = ""
	m.category = index.CategoryAll
	m.pager = view.NewPager(m.pager.Size())
	m.vis.Reset()
}

// Refresh re-lists the owner's records. Each refresh carries a generation
// token; a response whose generation is no longer current is discarded, so
// the last issued refresh wins.
func (m *Manager[T]) Refresh(ctx context.Context) error {
	m.mu.Lock()
	if m.loading || m.owner == "" {
		m.mu.Unlock()
		return ErrNoSession
	}
	owner := m.owner
	m.gen++
	gen := m.gen
	m.mu.Unlock()

	recs, err := m.store.List(ctx, owner)

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen || owner != m.owner {
		// A newer refresh or a session change superseded this response.
		return nil
	}
	if err != nil {
		// The displayed list stays whatever was last fetched.
		return err
	}
	m.records = recs
	m.vis.Reset()
	return nil
}

// Records returns the last successfully fetched full list.
func (m *Manager[T]) Records() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records
}

// Get looks up a record by id in the last fetched list.
func (m *Manager[T]) Get(id string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.records {
		if rec.GetID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// SetQuery changes the search query and resets to page 1.
func (m *Manager[T]) SetQuery(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.query == query {
		return
	}
	m.query = query
	m.pager.Reset()
}

// SetCategory changes the category filter and resets to page 1.
// index.CategoryAll disables filtering.
func (m *Manager[T]) SetCategory(category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if category == "" {
		category = index.CategoryAll
	}
	if m.category == category {
		return
	}
	m.category = category
	m.pager.Reset()
}

// SetPageSize changes the page size and resets to page 1. Sizes outside
// view.PageSizes are ignored.
func (m *Manager[T]) SetPageSize(size int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pager.SetSize(size)
}

// PageSize returns the current page size.
func (m *Manager[T]) PageSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pager.Size()
}

// SetPage moves to the requested page, clamped to the filtered list.
func (m *Manager[T]) SetPage(page int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pager.SetTotal(len(m.visibleLocked()))
	m.pager.SetPage(page)
}

// Next advances one page; a no-op on the last page.
func (m *Manager[T]) Next() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pager.SetTotal(len(m.visibleLocked()))
	m.pager.Next()
}

// Previous goes back one page; a no-op on the first page.
func (m *Manager[T]) Previous() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pager.SetTotal(len(m.visibleLocked()))
	m.pager.Previous()
}

// Visible returns the records passing both the search query and the
// category filter.
func (m *Manager[T]) Visible() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visibleLocked()
}

func (m *Manager[T]) visibleLocked() []T {
	out := index.Search(m.records, m.query)
	if m.categoryOf != nil {
		out = index.FilterCategoryFunc(out, m.categoryOf, m.category)
	}
	return out
}

// Page returns the current page of the filtered list along with the
// clamped page number and page count.
func (m *Manager[T]) Page() ([]T, int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := view.Slice(m.pager, m.visibleLocked())
	return items, m.pager.Page(), m.pager.PageCount()
}

// Add validates nothing itself; callers run the form validator first. On
// success the list is re-fetched.
func (m *Manager[T]) Add(ctx context.Context, rec T) (string, error) {
	m.mu.Lock()
	if m.loading || m.owner == "" {
		m.mu.Unlock()
		return "", ErrNoSession
	}
	owner := m.owner
	m.mu.Unlock()

	id, err := m.store.Create(ctx, owner, rec)
	if err != nil {
		return "", err
	}
	return id, m.Refresh(ctx)
}

// Edit replaces all mutable fields of the record at id, then re-fetches.
func (m *Manager[T]) Edit(ctx context.Context, id string, rec T) error {
	m.mu.Lock()
	if m.loading || m.owner == "" {
		m.mu.Unlock()
		return ErrNoSession
	}
	owner := m.owner
	m.mu.Unlock()

	if err := m.store.Update(ctx, owner, id, rec); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// Remove permanently deletes the record at id, then re-fetches.
func (m *Manager[T]) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	if m.loading || m.owner == "" {
		m.mu.Unlock()
		return ErrNoSession
	}
	owner := m.owner
	m.mu.Unlock()

	if err := m.store.Delete(ctx, owner, id); err != nil {
		return err
	}
	return m.Refresh(ctx)
}
