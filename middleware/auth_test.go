package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, tokenType string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(expiresIn).Unix(),
		"iat":     time.Now().Unix(),
		"type":    tokenType,
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})
	return router
}

func get(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAcceptsValidAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", testSecret)
	router := authRouter()

	w := get(router, "Bearer "+signToken(t, testSecret, "access", time.Hour))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestAuthMiddlewareRequiresHeader(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", testSecret)
	router := authRouter()

	assert.Equal(t, http.StatusUnauthorized, get(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "Basic abc").Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", testSecret)
	router := authRouter()

	assert.Equal(t, http.StatusUnauthorized, get(router, "Bearer not-a-token").Code)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", testSecret)
	router := authRouter()

	w := get(router, "Bearer "+signToken(t, "other-secret", "access", time.Hour))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", testSecret)
	router := authRouter()

	w := get(router, "Bearer "+signToken(t, testSecret, "access", -time.Hour))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", testSecret)
	router := authRouter()

	w := get(router, "Bearer "+signToken(t, testSecret, "refresh", time.Hour))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token type")
}
