package model

// Note is a free-text secure note. Notes carry no status and no secret
// value, so they are never masked.
type Note struct {
	Base
	Title   string `gorm:"column:title;not null" json:"title"`
	Content string `gorm:"column:content;not null" json:"content"`
}

func (Note) TableName() string {
	return "notes"
}

func (Note) RecordKind() Kind {
	return KindNote
}

// SearchFields returns the text fields matched by a search query.
func (n Note) SearchFields() []string {
	return []string{n.Title, n.Content}
}
