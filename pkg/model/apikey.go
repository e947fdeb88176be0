package model

// APIKey is a credential key record (e.g. an LLM provider key).
type APIKey struct {
	Base
	ModelName   string `gorm:"column:model_name;not null" json:"modelName"`
	SecretValue string `gorm:"column:secret_value;not null" json:"secretValue"`
	Status      Status `gorm:"column:status;type:smallint;not null;default:0" json:"status"`
}

func (APIKey) TableName() string {
	return "api_keys"
}

func (APIKey) RecordKind() Kind {
	return KindAPIKey
}

// SearchFields returns the text fields matched by a search query.
func (k APIKey) SearchFields() []string {
	return []string{k.ModelName}
}

// Secret returns the raw secret value.
func (k APIKey) Secret() string {
	return k.SecretValue
}
