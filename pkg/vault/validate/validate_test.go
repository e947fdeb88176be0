package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abidraza5594/SecurePass/pkg/model"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", []string{}},
		{"single tag", "work", []string{"work"}},
		{"trims and lower-cases", "  Work , LLM ", []string{"work", "llm"}},
		{"drops empty segments", "work,,personal,", []string{"work", "personal"}},
		{"dedupes keeping first occurrence", "llm, work, LLM, Work", []string{"llm", "work"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.input))
		})
	}
}

func TestAPIKeyFormValidate(t *testing.T) {
	form := APIKeyForm{
		ModelName:   " gpt-4 ",
		SecretValue: "sk-123",
		Tags:        "LLM, OpenAI",
	}

	rec, err := form.Validate()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4", rec.ModelName)
	assert.Equal(t, "sk-123", rec.SecretValue)
	assert.Equal(t, model.StatusActive, rec.Status)
	assert.Equal(t, []string{"llm", "openai"}, []string(rec.Tags))
}

func TestAPIKeyFormValidateErrors(t *testing.T) {
	form := APIKeyForm{
		ModelName:   "   ",
		SecretValue: "",
		Status:      "Broken",
	}

	_, err := form.Validate()
	require.Error(t, err)

	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "modelName")
	assert.Contains(t, errs, "secretValue")
	assert.Contains(t, errs, "status")
}

func TestPasswordFormValidate(t *testing.T) {
	form := PasswordForm{
		AppName:     "GitHub",
		Username:    "alice",
		SecretValue: "hunter2",
		Status:      "Inactive",
		CustomFields: []model.CustomField{
			{Label: "recovery email", Value: "alice@backup.example.com"},
		},
	}

	rec, err := form.Validate()
	require.NoError(t, err)
	assert.Equal(t, "GitHub", rec.AppName)
	assert.Equal(t, model.StatusInactive, rec.Status)
	require.Len(t, rec.CustomFields, 1)
	assert.Equal(t, "recovery email", rec.CustomFields[0].Label)
}

func TestPasswordFormMissingFields(t *testing.T) {
	_, err := PasswordForm{}.Validate()
	require.Error(t, err)

	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "appName")
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "secretValue")
}

func TestNoteFormValidate(t *testing.T) {
	rec, err := NoteForm{Title: "recovery codes", Content: "a b c"}.Validate()
	require.NoError(t, err)
	assert.Equal(t, "recovery codes", rec.Title)
	assert.Equal(t, "a b c", rec.Content)

	_, err = NoteForm{Title: "t"}.Validate()
	require.Error(t, err)
}

func TestCustomFieldValidation(t *testing.T) {
	form := NoteForm{
		Title:   "t",
		Content: "c",
		CustomFields: []model.CustomField{
			{Label: "ok", Value: "fine"},
			{Label: " ", Value: "v"},
			{Label: "l", Value: ""},
		},
	}

	_, err := form.Validate()
	require.Error(t, err)

	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "customFields[1].label")
	assert.Contains(t, errs, "customFields[2].value")
	assert.NotContains(t, errs, "customFields[0].label")
}

func TestErrorsMessageIsDeterministic(t *testing.T) {
	errs := Errors{"b": "bad", "a": "worse"}
	assert.Equal(t, "validation failed: a: worse; b: bad", errs.Error())
}
