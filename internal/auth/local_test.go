package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/seifeddinerezgui/gethrought/internal/seed"
	"github.com/seifeddinerezgui/gethrought/internal/store"
	"github.com/seifeddinerezgui/gethrought/internal/utilities"
)

const testPassword = "admin-password"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTokens() *Tokens {
	return NewTokens([]byte("test-secret"), "gethrought", time.Hour)
}

func adminStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore()
	_, err := seed.EnsureAdmin(context.Background(), s, "admin", testPassword)
	require.NoError(t, err)
	return s
}

func TestLocalLogin_Success(t *testing.T) {
	tokens := newTokens()
	token, err := GetAccessToken(t, adminStore(t), tokens, "admin", testPassword)
	require.NoError(t, err)

	parsed, err := tokens.ValidatedToken(token)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "gethrought", claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	id, err := UserID(claims)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)
}

func TestLocalLogin_ResponseHidesPassword(t *testing.T) {
	handler := NewLocalAuthHandler(adminStore(t), newTokens(), nil)
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"username": "admin",
		"password": testPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	user, ok := resp["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "admin", user["username"])
	assert.NotContains(t, user, "password")
}

func TestLocalLogin_Fail(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	handler := NewLocalAuthHandler(adminStore(t), newTokens(), zap.New(core))

	tests := []struct {
		name string
		body map[string]string
		code int
	}{
		{"missing password", map[string]string{"username": "admin"}, http.StatusBadRequest},
		{"unknown user", map[string]string{"username": "ghost", "password": testPassword}, http.StatusUnauthorized},
		{"wrong password", map[string]string{"username": "admin", "password": "nope"}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.code, rec.Code)
			assert.NotContains(t, resp, "accessToken")
		})
	}

	assert.Equal(t, 2, logs.FilterMessage("auth attempt").Len())
}

func TestValidatedToken_Rejects(t *testing.T) {
	tokens := newTokens()

	expired, err := NewTokens([]byte("test-secret"), "gethrought", -time.Minute).GenerateToken(1)
	require.NoError(t, err)
	_, err = tokens.ValidatedToken(expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	foreign, err := NewTokens([]byte("test-secret"), "someone-else", time.Hour).GenerateToken(1)
	require.NoError(t, err)
	_, err = tokens.ValidatedToken(foreign)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	forged, err := NewTokens([]byte("other-secret"), "gethrought", time.Hour).GenerateToken(1)
	require.NoError(t, err)
	_, err = tokens.ValidatedToken(forged)
	assert.Error(t, err)

	_, err = tokens.ValidatedToken("not.a.token")
	assert.Error(t, err)
}

func TestUserID_BadSubject(t *testing.T) {
	_, err := UserID(&jwt.RegisteredClaims{Subject: "abc"})
	assert.Error(t, err)
	_, err = UserID(&jwt.RegisteredClaims{Subject: "0"})
	assert.Error(t, err)
}
