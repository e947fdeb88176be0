// Package manager is the record lifecycle and presentation engine.
//
// A Manager owns, for one record kind and one session: the last
// successfully fetched list, the search/category filter state, the pager
// and the per-record visibility toggles. Mutations round-trip through the
// record store and trigger a full re-list (never an optimistic local
// patch), and stale list responses are discarded via a generation token,
// so the last issued refresh wins.
package manager
