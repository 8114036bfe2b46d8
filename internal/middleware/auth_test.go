// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/primebid/auction-api/internal/core"
)

const testCookieName = "token"

type fakeVerifier struct {
	claims map[string]*AccessTokenClaims
}

func (v *fakeVerifier) VerifyAccessToken(
	_ context.Context,
	token string,
) (*AccessTokenClaims, error) {
	claims, ok := v.claims[token]
	if !ok {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}
	return claims, nil
}

func verifierFor(role string) (*fakeVerifier, string) {
	token := "valid-token-" + role
	return &fakeVerifier{claims: map[string]*AccessTokenClaims{
		token: {
			UserID:    "user-1",
			Role:      role,
			JTI:       "jti-1",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}, token
}

type envelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticatorMissingTokenIs400(t *testing.T) {
	verifier, _ := verifierFor(RoleBidder)
	called := false

	handler := Authenticator(verifier, testCookieName)(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, called)

	env := decodeEnvelope(t, rec)
	require.False(t, env.Success)
	require.Equal(t, "AUTH_REQUIRED", env.Error.Code)
}

func TestAuthenticatorRejectsUnknownToken(t *testing.T) {
	verifier, _ := verifierFor(RoleBidder)
	called := false

	handler := Authenticator(verifier, testCookieName)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "forged"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, called)
	require.Equal(t, "TOKEN_INVALID", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthenticatorAcceptsCookie(t *testing.T) {
	verifier, token := verifierFor(RoleBidder)

	var gotUserID, gotRole string
	handler := Authenticator(verifier, testCookieName)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID = GetUserID(r.Context())
			gotRole = GetUserRole(r.Context())
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-1", gotUserID)
	require.Equal(t, RoleBidder, gotRole)
}

func TestAuthenticatorFallsBackToBearerHeader(t *testing.T) {
	verifier, token := verifierFor(RoleAuctioneer)
	called := false

	handler := Authenticator(verifier, testCookieName)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
}

func TestRequireRoleMismatchIs403(t *testing.T) {
	verifier, token := verifierFor(RoleBidder)
	called := false

	handler := Authenticator(verifier, testCookieName)(
		RequireSuperAdmin(okHandler(&called)),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, called, "handler must not run for a role mismatch")

	env := decodeEnvelope(t, rec)
	require.Equal(t, "FORBIDDEN", env.Error.Code)
	require.Contains(t, env.Error.Message, RoleBidder)
}

func TestRequireAuctioneerAdmitsSuperAdmin(t *testing.T) {
	verifier, token := verifierFor(RoleSuperAdmin)
	called := false

	handler := Authenticator(verifier, testCookieName)(
		RequireAuctioneer(okHandler(&called)),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
}

func TestExtractTokenPrefersCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "from-cookie"})
	req.Header.Set("Authorization", "Bearer from-header")

	require.Equal(t, "from-cookie", ExtractToken(req, testCookieName))
}

func TestExtractTokenRejectsMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")

	require.Empty(t, ExtractToken(req, testCookieName))
}
