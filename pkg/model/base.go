package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// CustomFields is an ordered sequence of CustomField pairs stored as a
// jsonb array.
type CustomFields []CustomField

// Value implements driver.Valuer for jsonb storage.
func (f CustomFields) Value() (driver.Value, error) {
	if f == nil {
		f = CustomFields{}
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for jsonb retrieval.
func (f *CustomFields) Scan(value interface{}) error {
	if value == nil {
		*f = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported custom_fields column type %T", value)
	}
	return json.Unmarshal(data, f)
}

// Base holds the columns shared by all vault record kinds.
type Base struct {
	ID           string         `gorm:"column:id;primaryKey" json:"id"`
	OwnerID      string         `gorm:"column:owner_id;not null;index" json:"-"`
	Tags         pq.StringArray `gorm:"column:tags;type:text[]" json:"tags"`
	CustomFields CustomFields   `gorm:"column:custom_fields;type:jsonb" json:"customFields"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (b Base) GetID() string { return b.ID }

func (b *Base) SetID(id string) { b.ID = id }

func (b Base) GetOwner() string { return b.OwnerID }

func (b *Base) SetOwner(ownerID string) { b.OwnerID = ownerID }

func (b Base) GetTags() []string { return b.Tags }
