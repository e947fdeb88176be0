package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listBody struct {
	Items     []map[string]interface{} `json:"items"`
	Page      int                      `json:"page"`
	PageCount int                      `json:"pageCount"`
	PageSize  int                      `json:"pageSize"`
	Total     int                      `json:"total"`
}

func doRequest(t *testing.T, s http.Handler, method, path, authHeader, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listBody {
	t.Helper()
	var body listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRecordsCRUD(t *testing.T) {
	s, issuer := newTestServer(&MockProvider{})
	authHeader := sessionToken(issuer, "owner-1", "alice@example.com")

	// Create
	w := doRequest(t, s.Router, "POST", "/records/apikey", authHeader,
		`{"modelName":"gpt-4","secretValue":"sk-123","tags":"LLM, OpenAI, llm"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"]
	require.NotEmpty(t, id)

	// Listing masks the secret and normalizes tags
	w = doRequest(t, s.Router, "GET", "/records/apikey", authHeader, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeList(t, w)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "gpt-4", body.Items[0]["modelName"])
	assert.Equal(t, "********", body.Items[0]["secretValue"])
	assert.Equal(t, []interface{}{"llm", "openai"}, body.Items[0]["tags"])
	assert.Equal(t, "Active", body.Items[0]["status"])

	// Reveal returns the raw value even while masked
	w = doRequest(t, s.Router, "GET", "/records/apikey/"+id+"/secret", authHeader, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sk-123")

	// Toggle visibility, the listing now shows the raw value
	w = doRequest(t, s.Router, "POST", "/records/apikey/"+id+"/visibility", authHeader, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"visible":true`)

	w = doRequest(t, s.Router, "GET", "/records/apikey", authHeader, "")
	body = decodeList(t, w)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "sk-123", body.Items[0]["secretValue"])

	// Full-field replace
	w = doRequest(t, s.Router, "PUT", "/records/apikey/"+id, authHeader,
		`{"modelName":"claude","secretValue":"sk-456","status":"Inactive"}`)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = doRequest(t, s.Router, "GET", "/records/apikey", authHeader, "")
	body = decodeList(t, w)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "claude", body.Items[0]["modelName"])
	assert.Equal(t, "Inactive", body.Items[0]["status"])
	// The re-listing after a mutation resets the mask
	assert.Equal(t, "********", body.Items[0]["secretValue"])

	// Delete
	w = doRequest(t, s.Router, "DELETE", "/records/apikey/"+id, authHeader, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, s.Router, "GET", "/records/apikey", authHeader, "")
	body = decodeList(t, w)
	assert.Empty(t, body.Items)
	assert.Equal(t, 0, body.Total)
}

func TestRecordsValidation(t *testing.T) {
	s, issuer := newTestServer(&MockProvider{})
	authHeader := sessionToken(issuer, "owner-1", "alice@example.com")

	// Blank required field
	w := doRequest(t, s.Router, "POST", "/records/apikey", authHeader,
		`{"modelName":"  ","secretValue":"sk-123"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "modelName")

	// Unknown status value
	w = doRequest(t, s.Router, "POST", "/records/password", authHeader,
		`{"appName":"github","username":"alice","secretValue":"pw","status":"Archived"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "status")

	// Custom field with blank label
	w = doRequest(t, s.Router, "POST", "/records/note", authHeader,
		`{"title":"t","content":"c","customFields":[{"label":"","value":"v"}]}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "customFields[0].label")

	// Malformed JSON
	w = doRequest(t, s.Router, "POST", "/records/note", authHeader, `{`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was stored
	w = doRequest(t, s.Router, "GET", "/records/note", authHeader, "")
	assert.Empty(t, decodeList(t, w).Items)
}

func TestRecordsSearchAndCategory(t *testing.T) {
	s, issuer := newTestServer(&MockProvider{})
	authHeader := sessionToken(issuer, "owner-1", "alice@example.com")

	seeds := []struct{ app, user string }{
		{"GitHub", "alice"},
		{"GitLab", "bob"},
		{"GitHub", "carol"},
		{"Stripe", "alice"},
	}
	for _, seed := range seeds {
		w := doRequest(t, s.Router, "POST", "/records/password", authHeader,
			fmt.Sprintf(`{"appName":%q,"username":%q,"secretValue":"pw"}`, seed.app, seed.user))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// Case-insensitive substring search across app name and username
	w := doRequest(t, s.Router, "GET", "/records/password?q=git", authHeader, "")
	assert.Equal(t, 3, decodeList(t, w).Total)

	w = doRequest(t, s.Router, "GET", "/records/password?q=ALICE", authHeader, "")
	assert.Equal(t, 2, decodeList(t, w).Total)

	// Exact-match category filter stacks with the query
	w = doRequest(t, s.Router, "GET", "/records/password?q=alice&category=GitHub", authHeader, "")
	body := decodeList(t, w)
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "alice", body.Items[0]["username"])

	// The category sentinel clears the filter
	w = doRequest(t, s.Router, "GET", "/records/password?q=&category=all", authHeader, "")
	assert.Equal(t, 4, decodeList(t, w).Total)

	// No match
	w = doRequest(t, s.Router, "GET", "/records/password?q=zzz", authHeader, "")
	body = decodeList(t, w)
	assert.Empty(t, body.Items)
	assert.Equal(t, 0, body.Page)
	assert.Equal(t, 0, body.PageCount)
}

func TestRecordsPagination(t *testing.T) {
	s, issuer := newTestServer(&MockProvider{})
	authHeader := sessionToken(issuer, "owner-1", "alice@example.com")

	for i := 0; i < 25; i++ {
		w := doRequest(t, s.Router, "POST", "/records/note", authHeader,
			fmt.Sprintf(`{"title":"note %02d","content":"body"}`, i))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Default page size is 10
	w := doRequest(t, s.Router, "GET", "/records/note", authHeader, "")
	body := decodeList(t, w)
	assert.Len(t, body.Items, 10)
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 3, body.PageCount)
	assert.Equal(t, 25, body.Total)

	// The last page is short
	w = doRequest(t, s.Router, "GET", "/records/note?page=3", authHeader, "")
	body = decodeList(t, w)
	assert.Len(t, body.Items, 5)
	assert.Equal(t, 3, body.Page)

	// Out-of-range pages clamp
	w = doRequest(t, s.Router, "GET", "/records/note?page=99", authHeader, "")
	assert.Equal(t, 3, decodeList(t, w).Page)

	// Changing the page size resets to page 1
	w = doRequest(t, s.Router, "GET", "/records/note?page_size=50", authHeader, "")
	body = decodeList(t, w)
	assert.Len(t, body.Items, 25)
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 1, body.PageCount)

	// Disallowed page sizes are rejected
	w = doRequest(t, s.Router, "GET", "/records/note?page_size=17", authHeader, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(t, s.Router, "GET", "/records/note?page=abc", authHeader, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRecordsOwnerIsolation(t *testing.T) {
	s, issuer := newTestServer(&MockProvider{})
	alice := sessionToken(issuer, "owner-1", "alice@example.com")
	bob := sessionToken(issuer, "owner-2", "bob@example.com")

	w := doRequest(t, s.Router, "POST", "/records/apikey", alice,
		`{"modelName":"gpt-4","secretValue":"sk-123"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"]

	// Bob sees nothing and cannot touch Alice's record
	w = doRequest(t, s.Router, "GET", "/records/apikey", bob, "")
	assert.Empty(t, decodeList(t, w).Items)

	w = doRequest(t, s.Router, "DELETE", "/records/apikey/"+id, bob, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, s.Router, "GET", "/records/apikey/"+id+"/secret", bob, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Alice's record is untouched
	w = doRequest(t, s.Router, "GET", "/records/apikey", alice, "")
	assert.Len(t, decodeList(t, w).Items, 1)
}

func TestRecordsErrors(t *testing.T) {
	s, issuer := newTestServer(&MockProvider{})
	authHeader := sessionToken(issuer, "owner-1", "alice@example.com")

	// Unknown kind
	w := doRequest(t, s.Router, "GET", "/records/wallet", authHeader, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing token
	w = doRequest(t, s.Router, "GET", "/records/apikey", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Update and delete of a missing record
	w = doRequest(t, s.Router, "PUT", "/records/apikey/nope", authHeader,
		`{"modelName":"gpt-4","secretValue":"sk-123"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, s.Router, "DELETE", "/records/apikey/nope", authHeader, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Notes have no secret to reveal or mask
	w = doRequest(t, s.Router, "POST", "/records/note", authHeader,
		`{"title":"t","content":"c"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(t, s.Router, "GET", "/records/note/"+created["id"]+"/secret", authHeader, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, s.Router, "POST", "/records/note/"+created["id"]+"/visibility", authHeader, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVisibilityIndependentPerRecord(t *testing.T) {
	s, issuer := newTestServer(&MockProvider{})
	authHeader := sessionToken(issuer, "owner-1", "alice@example.com")

	ids := make([]string, 0, 2)
	for _, secret := range []string{"pw-one", "pw-two"} {
		w := doRequest(t, s.Router, "POST", "/records/password", authHeader,
			fmt.Sprintf(`{"appName":"github","username":"alice","secretValue":%q}`, secret))
		require.Equal(t, http.StatusCreated, w.Code)
		var created map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		ids = append(ids, created["id"])
	}

	w := doRequest(t, s.Router, "POST", "/records/password/"+ids[0]+"/visibility", authHeader, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s.Router, "GET", "/records/password", authHeader, "")
	body := decodeList(t, w)
	require.Len(t, body.Items, 2)

	secrets := map[string]string{}
	for _, item := range body.Items {
		secrets[item["id"].(string)] = item["secretValue"].(string)
	}
	assert.Equal(t, "pw-one", secrets[ids[0]])
	assert.Equal(t, "********", secrets[ids[1]])

	// Toggling back masks it again
	w = doRequest(t, s.Router, "POST", "/records/password/"+ids[0]+"/visibility", authHeader, "")
	assert.Contains(t, w.Body.String(), `"visible":false`)
}
