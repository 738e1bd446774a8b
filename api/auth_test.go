package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := issueAdminToken("admin@example.com", testSecret)
	require.NoError(t, err)

	email, err := verifyAdminToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)
}

func TestVerifyAdminTokenRejectsWrongSecret(t *testing.T) {
	token, err := issueAdminToken("admin@example.com", testSecret)
	require.NoError(t, err)

	_, err = verifyAdminToken(token, []byte("other-secret"))
	assert.Error(t, err)
}

func TestVerifyAdminTokenRejectsGarbage(t *testing.T) {
	_, err := verifyAdminToken("not-a-token", testSecret)
	assert.Error(t, err)
}

func protectedProbe(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	reached := false
	m := newAuthMiddleware(testSecret)
	handler := m.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		email, err := ctxGetAdminEmail(r.Context())
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", email)
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &reached
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	handler, reached := protectedProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/tools", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	handler, reached := protectedProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/tools", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	handler, reached := protectedProbe(t)

	token, err := issueAdminToken("admin@example.com", testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/tools", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
}
