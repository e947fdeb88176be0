package index

import (
	"sort"
	"strings"
)

// CategoryAll is the distinguished category value that disables the
// category filter.
const CategoryAll = "all"

// Entry is any record the index can search: its kind-specific text fields
// plus its tags.
type Entry interface {
	SearchFields() []string
	GetTags() []string
}

// Categorized is implemented by record kinds that carry a platform/app
// category (passwords).
type Categorized interface {
	Category() string
}

// Matches reports whether the record matches the query: any search field
// or tag contains the query as a case-insensitive substring. The empty
// query matches everything.
func Matches[T Entry](rec T, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)

	for _, field := range rec.SearchFields() {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, tag := range rec.GetTags() {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Search returns the records matching the query, preserving input order.
func Search[T Entry](recs []T, query string) []T {
	if query == "" {
		return recs
	}

	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if Matches(rec, query) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterCategory returns the records whose category exactly equals
// category. CategoryAll disables the filter.
func FilterCategory[T Categorized](recs []T, category string) []T {
	return FilterCategoryFunc(recs, func(rec T) string { return rec.Category() }, category)
}

// FilterCategoryFunc is FilterCategory for record types whose category is
// derived by categoryOf rather than a method.
func FilterCategoryFunc[T any](recs []T, categoryOf func(T) string, category string) []T {
	if category == "" || category == CategoryAll {
		return recs
	}

	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if categoryOf(rec) == category {
			out = append(out, rec)
		}
	}
	return out
}

// Count is a key with its occurrence count.
type Count struct {
	Key string `json:"key"`
	N   int    `json:"count"`
}

// Frequency counts occurrences while remembering first-encountered order,
// which breaks ties in Top.
type Frequency struct {
	counts map[string]int
	order  []string
}

func NewFrequency() *Frequency {
	return &Frequency{counts: map[string]int{}}
}

// Add records one occurrence of key.
func (f *Frequency) Add(key string) {
	if _, seen := f.counts[key]; !seen {
		f.order = append(f.order, key)
	}
	f.counts[key]++
}

// Count returns the occurrence count for key.
func (f *Frequency) Count(key string) int {
	return f.counts[key]
}

// Len returns the number of distinct keys.
func (f *Frequency) Len() int {
	return len(f.order)
}

// Top returns up to n keys ordered by descending count; equal counts keep
// first-encountered order.
func (f *Frequency) Top(n int) []Count {
	keys := make([]string, len(f.order))
	copy(keys, f.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return f.counts[keys[i]] > f.counts[keys[j]]
	})

	if n > len(keys) {
		n = len(keys)
	}
	out := make([]Count, 0, n)
	for _, key := range keys[:n] {
		out = append(out, Count{Key: key, N: f.counts[key]})
	}
	return out
}

// AddTags feeds every tag of every record into the frequency.
func AddTags[T Entry](f *Frequency, recs []T) {
	for _, rec := range recs {
		for _, tag := range rec.GetTags() {
			f.Add(tag)
		}
	}
}

// AddCategories feeds every record's category into the frequency.
func AddCategories[T Categorized](f *Frequency, recs []T) {
	for _, rec := range recs {
		f.Add(rec.Category())
	}
}
