package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Conceptual-Machines/piano-chords/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{AuthMode: config.AuthModeToken, JWTSecret: testSecret}

	r := gin.New()
	r.POST("/admin", JWTAuth(cfg), AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString("token_subject")})
	})
	return r
}

func TestAdminGate(t *testing.T) {
	admin, err := MintToken(testSecret, "ops", RoleAdmin, time.Hour)
	require.NoError(t, err)
	viewer, err := MintToken(testSecret, "ops", "viewer", time.Hour)
	require.NoError(t, err)
	expired, err := MintToken(testSecret, "ops", RoleAdmin, -time.Minute)
	require.NoError(t, err)
	foreign, err := MintToken("other-secret", "ops", RoleAdmin, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Token " + admin, http.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"not admin", "Bearer " + viewer, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}

	r := newAdminRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestParseToken(t *testing.T) {
	token, err := MintToken(testSecret, "ops", RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)

	_, err = ParseToken("nope", token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = MintToken("", "ops", RoleAdmin, time.Hour)
	assert.Error(t, err)
}
