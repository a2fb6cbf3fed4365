package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authConfig(t *testing.T) Config {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	return Config{AdminPasswordHash: string(h), JWTSecret: "test_secret"}
}

func login(t *testing.T, s *Server, password string) *http.Cookie {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/auth/login", `{"password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	for _, c := range rec.Result().Cookies() {
		if c.Name == "hangman_token" {
			return c
		}
	}
	t.Fatal("no auth cookie set")
	return nil
}

func TestLoginDisabledWithoutPasswordHash(t *testing.T) {
	s := newTestServer(t, nil, Config{})
	rec := do(t, s, http.MethodPost, "/auth/login", `{"password":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"auth_disabled"}`, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/auth/me", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authEnabled":false,"operator":null}`, rec.Body.String())
}

func TestManagementRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, nil, authConfig(t))
	for _, path := range []string{"/gamesHistory", "/stats", "/auth/me"} {
		rec := do(t, s, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	// Game routes stay public.
	rec := do(t, s, http.MethodGet, "/newGameSession", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestServer(t, nil, authConfig(t))
	rec := do(t, s, http.MethodPost, "/auth/login", `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, s, http.MethodPost, "/auth/login", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginCookieGrantsAccess(t *testing.T) {
	s := newTestServer(t, nil, authConfig(t))
	c := login(t, s, "hunter22")
	assert.True(t, c.HttpOnly)

	rec := do(t, s, http.MethodGet, "/gamesHistory", "", "Cookie", c.Name+"="+c.Value)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodGet, "/auth/me", "", "Authorization", "Bearer "+c.Value)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[map[string]any](t, rec)
	assert.Equal(t, true, me["authEnabled"])
	assert.Equal(t, "operator", me["operator"].(map[string]any)["role"])
}

func TestLogoutClearsCookie(t *testing.T) {
	s := newTestServer(t, nil, authConfig(t))
	rec := do(t, s, http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestRejectsForeignAndExpiredTokens(t *testing.T) {
	cfg := authConfig(t)
	s := newTestServer(t, nil, cfg)

	sign := func(secret string, claims jwt.MapClaims) string {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return tok
	}
	future := time.Now().Add(time.Hour).Unix()
	tokens := map[string]string{
		"wrong secret": sign("other", jwt.MapClaims{"role": "operator", "exp": future}),
		"wrong role":   sign(cfg.JWTSecret, jwt.MapClaims{"role": "player", "exp": future}),
		"expired":      sign(cfg.JWTSecret, jwt.MapClaims{"role": "operator", "exp": time.Now().Add(-time.Hour).Unix()}),
		"garbage":      "not.a.token",
	}
	for name, tok := range tokens {
		rec := do(t, s, http.MethodGet, "/gamesHistory", "", "Authorization", "Bearer "+tok)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
	}
}
