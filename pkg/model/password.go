package model

// Password is a login password record for an app or platform.
type Password struct {
	Base
	AppName     string `gorm:"column:app_name;not null" json:"appName"`
	Username    string `gorm:"column:username;not null" json:"username"`
	SecretValue string `gorm:"column:secret_value;not null" json:"secretValue"`
	Status      Status `gorm:"column:status;type:smallint;not null;default:0" json:"status"`
}

func (Password) TableName() string {
	return "passwords"
}

func (Password) RecordKind() Kind {
	return KindPassword
}

// SearchFields returns the text fields matched by a search query.
func (p Password) SearchFields() []string {
	return []string{p.AppName, p.Username}
}

// Category returns the platform/app name used by the category filter and
// the platform frequency computation.
func (p Password) Category() string {
	return p.AppName
}

// Secret returns the raw secret value.
func (p Password) Secret() string {
	return p.SecretValue
}
