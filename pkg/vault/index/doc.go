// Package index derives search matches, category-filtered subsets and
// tag/platform frequencies from a loaded record list.
//
// All derivations are pure: they never mutate their inputs and are
// order-independent with respect to when filters are applied relative to a
// list refresh. Matching is case-insensitive throughout.
package index
