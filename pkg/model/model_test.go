package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "apikey", KindAPIKey.String())
	assert.Equal(t, "password", KindPassword.String())
	assert.Equal(t, "note", KindNote.String())

	kind, err := KindString("password")
	require.NoError(t, err)
	assert.Equal(t, KindPassword, kind)

	_, err = KindString("certificates")
	assert.Error(t, err)
}

func TestStatusJSON(t *testing.T) {
	data, err := json.Marshal(StatusActive)
	require.NoError(t, err)
	assert.Equal(t, `"Active"`, string(data))

	var status Status
	require.NoError(t, json.Unmarshal([]byte(`"Inactive"`), &status))
	assert.Equal(t, StatusInactive, status)

	assert.Error(t, json.Unmarshal([]byte(`"Archived"`), &status))
}

func TestCustomFieldsRoundtrip(t *testing.T) {
	fields := CustomFields{
		{Label: "url", Value: "https://example.com"},
		{Label: "notes", Value: "rotate quarterly"},
	}

	value, err := fields.Value()
	require.NoError(t, err)

	var got CustomFields
	require.NoError(t, got.Scan(value))
	assert.Equal(t, fields, got, "field order is preserved")
}

func TestCustomFieldsScan(t *testing.T) {
	var fields CustomFields

	require.NoError(t, fields.Scan(nil))
	assert.Nil(t, fields)

	require.NoError(t, fields.Scan(`[{"label":"a","value":"1"}]`))
	require.Len(t, fields, 1)
	assert.Equal(t, "a", fields[0].Label)

	assert.Error(t, fields.Scan(42))
}

func TestSearchFieldsExcludeSecrets(t *testing.T) {
	key := APIKey{ModelName: "gpt-4", SecretValue: "sk-123"}
	assert.NotContains(t, key.SearchFields(), "sk-123")

	pw := Password{AppName: "GitHub", Username: "alice", SecretValue: "pw-123"}
	assert.NotContains(t, pw.SearchFields(), "pw-123")
	assert.Contains(t, pw.SearchFields(), "alice")
}

func TestRecordSetters(t *testing.T) {
	var note Note
	var rec Record = &note

	rec.SetID("rec-1")
	rec.SetOwner("u-1")

	assert.Equal(t, "rec-1", note.ID)
	assert.Equal(t, "u-1", note.OwnerID)
	assert.Equal(t, KindNote, rec.RecordKind())
}
