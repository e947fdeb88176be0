package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"

	"github.com/abidraza5594/SecurePass/pkg/model"
)

// Errors is a field-keyed set of validation messages. A non-empty Errors
// blocks submission; no store call is made.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ParseTags splits free-text comma-separated tag input into the stored tag
// set: segments are trimmed and lower-cased, empty segments and duplicates
// are dropped, first-occurrence order is kept.
func ParseTags(input string) []string {
	seen := map[string]bool{}
	tags := []string{}
	for _, segment := range strings.Split(input, ",") {
		tag := strings.ToLower(strings.TrimSpace(segment))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func requireField(errs Errors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = "must not be empty"
	}
}

func parseStatus(errs Errors, value string) model.Status {
	if value == "" {
		return model.StatusActive
	}
	status, err := model.StatusString(value)
	if err != nil {
		errs["status"] = fmt.Sprintf("must be one of %s", strings.Join(model.StatusStrings(), ", "))
		return model.StatusActive
	}
	return status
}

// checkCustomFields validates every label/value pair. An empty sequence is
// valid; a pair with a blank label or value is not.
func checkCustomFields(errs Errors, fields []model.CustomField) {
	for i, field := range fields {
		if strings.TrimSpace(field.Label) == "" {
			errs[fmt.Sprintf("customFields[%d].label", i)] = "must not be empty"
		}
		if strings.TrimSpace(field.Value) == "" {
			errs[fmt.Sprintf("customFields[%d].value", i)] = "must not be empty"
		}
	}
}

// APIKeyForm is the add/edit payload for credential key records.
type APIKeyForm struct {
	ModelName    string              `json:"modelName"`
	SecretValue  string              `json:"secretValue"`
	Status       string              `json:"status"`
	Tags         string              `json:"tags"`
	CustomFields []model.CustomField `json:"customFields"`
}

// Validate checks the form and, on success, returns the exact payload
// shape the record store expects.
func (f APIKeyForm) Validate() (model.APIKey, error) {
	errs := Errors{}
	requireField(errs, "modelName", f.ModelName)
	requireField(errs, "secretValue", f.SecretValue)
	status := parseStatus(errs, f.Status)
	checkCustomFields(errs, f.CustomFields)
	if len(errs) > 0 {
		return model.APIKey{}, errs
	}

	return model.APIKey{
		Base: model.Base{
			Tags:         pq.StringArray(ParseTags(f.Tags)),
			CustomFields: f.CustomFields,
		},
		ModelName:   strings.TrimSpace(f.ModelName),
		SecretValue: f.SecretValue,
		Status:      status,
	}, nil
}

// PasswordForm is the add/edit payload for login password records.
type PasswordForm struct {
	AppName      string              `json:"appName"`
	Username     string              `json:"username"`
	SecretValue  string              `json:"secretValue"`
	Status       string              `json:"status"`
	Tags         string              `json:"tags"`
	CustomFields []model.CustomField `json:"customFields"`
}

// Validate checks the form and, on success, returns the exact payload
// shape the record store expects.
func (f PasswordForm) Validate() (model.Password, error) {
	errs := Errors{}
	requireField(errs, "appName", f.AppName)
	requireField(errs, "username", f.Username)
	requireField(errs, "secretValue", f.SecretValue)
	status := parseStatus(errs, f.Status)
	checkCustomFields(errs, f.CustomFields)
	if len(errs) > 0 {
		return model.Password{}, errs
	}

	return model.Password{
		Base: model.Base{
			Tags:         pq.StringArray(ParseTags(f.Tags)),
			CustomFields: f.CustomFields,
		},
		AppName:     strings.TrimSpace(f.AppName),
		Username:    strings.TrimSpace(f.Username),
		SecretValue: f.SecretValue,
		Status:      status,
	}, nil
}

// NoteForm is the add/edit payload for secure note records. Notes carry no
// status.
type NoteForm struct {
	Title        string              `json:"title"`
	Content      string              `json:"content"`
	Tags         string              `json:"tags"`
	CustomFields []model.CustomField `json:"customFields"`
}

// Validate checks the form and, on success, returns the exact payload
// shape the record store expects.
func (f NoteForm) Validate() (model.Note, error) {
	errs := Errors{}
	requireField(errs, "title", f.Title)
	requireField(errs, "content", f.Content)
	checkCustomFields(errs, f.CustomFields)
	if len(errs) > 0 {
		return model.Note{}, errs
	}

	return model.Note{
		Base: model.Base{
			Tags:         pq.StringArray(ParseTags(f.Tags)),
			CustomFields: f.CustomFields,
		},
		Title:   strings.TrimSpace(f.Title),
		Content: f.Content,
	}, nil
}
