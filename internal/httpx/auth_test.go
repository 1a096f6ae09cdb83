package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/moviecategories/internal/auth/token"
	"github.com/dmitrijs2005/moviecategories/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingValidator struct {
	inner TokenValidator
	calls int
}

func (v *countingValidator) Validate(s string) (*token.Claims, error) {
	v.calls++
	return v.inner.Validate(s)
}

func newGateRouter(v TokenValidator, seen *string) *gin.Engine {
	r := gin.New()
	r.Use(BearerAuth(v, logging.NopLogger{}))
	r.GET("/protected", func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if ok {
			*seen = claims.UserID
		}
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBearerAuth_MissingOrMalformedHeader(t *testing.T) {
	codec := token.NewCodec([]byte("secret"), "iss", "aud", time.Hour)

	for _, header := range []string{"", "Bearer", "Bearer   ", "Basic abc", "token-without-scheme"} {
		v := &countingValidator{inner: codec}
		var seen string

		w := doGet(newGateRouter(v, &seen), header)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Equal(t, 0, v.calls, "codec must not be called for header %q", header)
		assert.Empty(t, seen)
	}
}

func TestBearerAuth_ValidToken(t *testing.T) {
	codec := token.NewCodec([]byte("secret"), "iss", "aud", time.Hour)
	tok, _, err := codec.Issue("alice@example.com", 42)
	require.NoError(t, err)

	var seen string
	w := doGet(newGateRouter(codec, &seen), "Bearer "+tok)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", seen)
}

func TestBearerAuth_RejectionsAreGeneric(t *testing.T) {
	gate := token.NewCodec([]byte("secret"), "iss", "aud", time.Hour)

	expired := token.NewCodec([]byte("secret"), "iss", "aud", -time.Minute)
	expiredTok, _, err := expired.Issue("alice@example.com", 1)
	require.NoError(t, err)

	foreign := token.NewCodec([]byte("other"), "iss", "aud", time.Hour)
	foreignTok, _, err := foreign.Issue("alice@example.com", 1)
	require.NoError(t, err)

	var bodies []string
	for _, tok := range []string{expiredTok, foreignTok, "garbage"} {
		var seen string
		w := doGet(newGateRouter(gate, &seen), "Bearer "+tok)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, seen)
		bodies = append(bodies, w.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer  abc ", "abc", true},
		{"Bearer", "", false},
		{"Token abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, got, tt.header)
	}
}
