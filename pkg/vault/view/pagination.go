// Package view slices a filtered record list into pages.
package view

import "fmt"

// PageSizes is the fixed set of allowed page sizes.
var PageSizes = []int{10, 50, 100, 200, 500}

// DefaultPageSize is used when a requested size is not in PageSizes.
const DefaultPageSize = 10

// AllowedPageSize reports whether size is in the fixed allowed set.
func AllowedPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Pager tracks the current page over a filtered list. The current page is
// clamped into [1, PageCount] whenever the list length or page size
// changes; changing the size or emptying the list resets to page 1.
type Pager struct {
	size    int
	current int
	total   int
}

// NewPager creates a pager at page 1. Sizes outside PageSizes fall back to
// DefaultPageSize.
func NewPager(size int) *Pager {
	if !AllowedPageSize(size) {
		size = DefaultPageSize
	}
	return &Pager{size: size, current: 1}
}

// Size returns the page size.
func (p *Pager) Size() int { return p.size }

// Total returns the filtered list length the pager was last given.
func (p *Pager) Total() int { return p.total }

// PageCount returns ceil(total/size); zero when the list is empty.
func (p *Pager) PageCount() int {
	if p.total == 0 {
		return 0
	}
	return (p.total + p.size - 1) / p.size
}

// Page returns the current page, clamped; zero when the list is empty.
func (p *Pager) Page() int {
	if p.total == 0 {
		return 0
	}
	return p.current
}

// SetTotal records a new filtered list length and clamps the current page.
func (p *Pager) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.clamp()
}

// SetSize changes the page size and resets to page 1. Sizes outside
// PageSizes are ignored.
func (p *Pager) SetSize(size int) {
	if !AllowedPageSize(size) {
		return
	}
	p.size = size
	p.current = 1
}

// Reset returns to page 1. Called whenever the search query or category
// filter changes.
func (p *Pager) Reset() {
	p.current = 1
}

// SetPage moves to the requested page, clamped into [1, PageCount].
func (p *Pager) SetPage(page int) {
	p.current = page
	p.clamp()
}

// Next advances one page; a no-op on the last page.
func (p *Pager) Next() {
	if p.current < p.PageCount() {
		p.current++
	}
}

// Previous goes back one page; a no-op on the first page.
func (p *Pager) Previous() {
	if p.current > 1 {
		p.current--
	}
}

func (p *Pager) clamp() {
	max := p.PageCount()
	if max == 0 {
		// An emptied list renders "0 of 0"; once it refills we start
		// back at page 1 rather than resuming a stale position.
		p.current = 1
		return
	}
	if p.current > max {
		p.current = max
	}
	if p.current < 1 {
		p.current = 1
	}
}

// Bounds returns the [lo, hi) slice indexes of the current page.
func (p *Pager) Bounds() (int, int) {
	if p.total == 0 {
		return 0, 0
	}
	lo := (p.current - 1) * p.size
	hi := lo + p.size
	if hi > p.total {
		hi = p.total
	}
	return lo, hi
}

// Label renders the "current of count" display, "0 of 0" for an empty
// list.
func (p *Pager) Label() string {
	return fmt.Sprintf("%d of %d", p.Page(), p.PageCount())
}

// Slice returns the items on the pager's current page. The pager is
// re-pointed at the given list's length first.
func Slice[T any](p *Pager, items []T) []T {
	p.SetTotal(len(items))
	lo, hi := p.Bounds()
	return items[lo:hi]
}
