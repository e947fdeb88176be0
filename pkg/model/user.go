package model

import "time"

// VaultUser is an authenticated identity. Every vault record belongs to
// exactly one VaultUser via owner_id.
type VaultUser struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (VaultUser) TableName() string {
	return "vault_users"
}
