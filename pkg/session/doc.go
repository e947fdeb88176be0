// Package session resolves the current owner identity and gates all other
// components on it.
//
// Resolution is push-based: the identity provider notifies the session on
// every change and consumers subscribe rather than poll. Managers react to
// each notification by re-deriving their lists for the new identity and
// discarding state tied to the previous one.
package session
