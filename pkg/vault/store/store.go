package store

import (
	"context"
	"errors"
)

// ErrRecordNotFound is returned when an id is absent from the owner's
// collection.
var ErrRecordNotFound = errors.New("record not found")

// RecordStore abstracts CRUD over one owner's collection of a single
// record kind.
//
// List returns an empty slice, not an error, when the owner has no records
// of the kind. Update and Delete return ErrRecordNotFound when the id is
// absent from the owner's collection. No transactional guarantee spans
// multiple records or kinds.
type RecordStore[T any] interface {
	// List returns all of the owner's records of this kind.
	List(ctx context.Context, ownerID string) ([]T, error)

	// Create assigns a fresh id, binds the record to the owner and
	// persists it. It returns the assigned id.
	Create(ctx context.Context, ownerID string, rec T) (string, error)

	// Update replaces all mutable fields of the record at id. The id and
	// owner binding never change.
	Update(ctx context.Context, ownerID string, id string, rec T) error

	// Delete permanently removes the record at id. There is no undo.
	Delete(ctx context.Context, ownerID string, id string) error
}
