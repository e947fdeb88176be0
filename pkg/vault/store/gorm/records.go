package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abidraza5594/SecurePass/pkg/model"
	"github.com/abidraza5594/SecurePass/pkg/vault/store"
)

// record constrains a vault record model to its pointer type, which is
// what carries the Record setters.
type record[T any] interface {
	*T
	model.Record
}

// Ensure the stores implement store.RecordStore
var (
	_ store.RecordStore[model.APIKey]   = (*Store[model.APIKey, *model.APIKey])(nil)
	_ store.RecordStore[model.Password] = (*Store[model.Password, *model.Password])(nil)
	_ store.RecordStore[model.Note]     = (*Store[model.Note, *model.Note])(nil)
)

// Store implements store.RecordStore for one record kind using GORM.
type Store[T any, PT record[T]] struct {
	db *gorm.DB
}

// NewAPIKeyStore creates the store for the owner's api_keys collection.
func NewAPIKeyStore(db *gorm.DB) *Store[model.APIKey, *model.APIKey] {
	return &Store[model.APIKey, *model.APIKey]{db: db}
}

// NewPasswordStore creates the store for the owner's passwords collection.
func NewPasswordStore(db *gorm.DB) *Store[model.Password, *model.Password] {
	return &Store[model.Password, *model.Password]{db: db}
}

// NewNoteStore creates the store for the owner's notes collection.
func NewNoteStore(db *gorm.DB) *Store[model.Note, *model.Note] {
	return &Store[model.Note, *model.Note]{db: db}
}

// List returns all of the owner's records of this kind, newest first.
func (s *Store[T, PT]) List(ctx context.Context, ownerID string) ([]T, error) {
	var recs []T
	tx := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id").
		Find(&recs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if recs == nil {
		recs = []T{}
	}
	return recs, nil
}

// Create assigns a fresh id and owner binding, persists the record and
// returns the assigned id.
func (s *Store[T, PT]) Create(ctx context.Context, ownerID string, rec T) (string, error) {
	p := PT(&rec)
	p.SetID(uuid.NewString())
	p.SetOwner(ownerID)

	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return "", err
	}
	return p.GetID(), nil
}

// Update replaces all mutable fields of the record at id. Returns
// store.ErrRecordNotFound if id is absent from the owner's collection.
func (s *Store[T, PT]) Update(ctx context.Context, ownerID string, id string, rec T) error {
	p := PT(&rec)
	p.SetID(id)
	p.SetOwner(ownerID)

	tx := s.db.WithContext(ctx).
		Model(p).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Select("*").
		Omit("id", "owner_id", "created_at").
		Updates(p)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrRecordNotFound
	}
	return nil
}

// Delete permanently removes the record at id. Returns
// store.ErrRecordNotFound if id is absent from the owner's collection.
func (s *Store[T, PT]) Delete(ctx context.Context, ownerID string, id string) error {
	tx := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(PT(new(T)))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrRecordNotFound
	}
	return nil
}
