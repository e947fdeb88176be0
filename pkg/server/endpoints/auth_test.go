package endpoints

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/abidraza5594/SecurePass/pkg/auth"
	"github.com/abidraza5594/SecurePass/pkg/model"
)

func TestSignUpEndpoint(t *testing.T) {
	provider := &MockProvider{}
	provider.On("SignUp", mock.Anything, "alice@example.com", "password123").
		Return(&model.VaultUser{ID: "u-1", Email: "alice@example.com"}, nil)

	s, issuer := newTestServer(provider)

	w := doRequest(t, s.Router, "POST", "/authn/signup", "",
		`{"email":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	id, err := issuer.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id.OwnerID)
	assert.Equal(t, "alice@example.com", id.Email)

	provider.AssertExpectations(t)
}

func TestSignUpEndpointDuplicate(t *testing.T) {
	provider := &MockProvider{}
	provider.On("SignUp", mock.Anything, "alice@example.com", "password123").
		Return(nil, &auth.AuthError{Message: "an account with this email already exists"})

	s, _ := newTestServer(provider)

	w := doRequest(t, s.Router, "POST", "/authn/signup", "",
		`{"email":"alice@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestLoginEndpoint(t *testing.T) {
	provider := &MockProvider{}
	provider.On("SignIn", mock.Anything, "alice@example.com", "password123").
		Return(&model.VaultUser{ID: "u-1", Email: "alice@example.com"}, nil)

	s, _ := newTestServer(provider)

	w := doRequest(t, s.Router, "POST", "/authn/login", "",
		`{"email":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.ExpiresAt.IsZero())
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	provider := &MockProvider{}
	provider.On("SignIn", mock.Anything, "alice@example.com", "wrong").
		Return(nil, &auth.AuthError{Message: "invalid email or password"})

	s, _ := newTestServer(provider)

	w := doRequest(t, s.Router, "POST", "/authn/login", "",
		`{"email":"alice@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestPasswordResetEndpoint(t *testing.T) {
	provider := &MockProvider{}
	provider.On("RequestPasswordReset", mock.Anything, "alice@example.com").Return(nil)

	s, _ := newTestServer(provider)

	w := doRequest(t, s.Router, "POST", "/authn/reset", "",
		`{"email":"alice@example.com"}`)
	assert.Equal(t, http.StatusAccepted, w.Code)

	provider.AssertExpectations(t)
}

func TestPasswordResetEndpointUnknownEmail(t *testing.T) {
	provider := &MockProvider{}
	provider.On("RequestPasswordReset", mock.Anything, "nobody@example.com").
		Return(&auth.AuthError{Message: "no account with this email"})

	s, _ := newTestServer(provider)

	w := doRequest(t, s.Router, "POST", "/authn/reset", "",
		`{"email":"nobody@example.com"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogoutEndpointDiscardsSessionState(t *testing.T) {
	s, issuer := newTestServer(&MockProvider{})
	authHeader := sessionToken(issuer, "owner-1", "alice@example.com")

	// Build some session state: a visible secret
	w := doRequest(t, s.Router, "POST", "/records/apikey", authHeader,
		`{"modelName":"gpt-4","secretValue":"sk-123"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(t, s.Router, "POST", "/records/apikey/"+created["id"]+"/visibility", authHeader, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s.Router, "POST", "/authn/logout", authHeader, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	// A later request with a still-valid token gets a fresh vault with
	// every mask re-applied
	w = doRequest(t, s.Router, "GET", "/records/apikey", authHeader, "")
	body := decodeList(t, w)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "********", body.Items[0]["secretValue"])
}

func TestLogoutEndpointRequiresToken(t *testing.T) {
	s, _ := newTestServer(&MockProvider{})

	w := doRequest(t, s.Router, "POST", "/authn/logout", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
