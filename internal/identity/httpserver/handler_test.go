package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/moviecategories/internal/common"
	"github.com/dmitrijs2005/moviecategories/internal/httpx"
	"github.com/dmitrijs2005/moviecategories/internal/identity/services"
	"github.com/dmitrijs2005/moviecategories/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUserService struct {
	registerID  int64
	registerErr error
	issued      *services.IssuedToken
	issueErr    error

	gotEmail, gotPassword string
}

func (f *fakeUserService) Register(ctx context.Context, email, password string) (int64, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.registerID, f.registerErr
}

func (f *fakeUserService) IssueToken(ctx context.Context, email, password string) (*services.IssuedToken, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.issued, f.issueErr
}

func post(t *testing.T, us UserService, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	s := NewHTTPServer(":0", logging.NopLogger{}, us, true)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) httpx.ErrorResponse {
	t.Helper()
	var resp httpx.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestCreateUser_OK(t *testing.T) {
	us := &fakeUserService{registerID: 1}

	w := post(t, us, "/Users", `{"email":"alice@example.com","password":"pw1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Body.String())
	assert.Equal(t, "alice@example.com", us.gotEmail)
	assert.Equal(t, "pw1", us.gotPassword)
}

func TestCreateUser_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields map[string][]string
	}{
		{
			name: "empty body object",
			body: `{}`,
			fields: map[string][]string{
				"email":    {"Email is required."},
				"password": {"Password is required."},
			},
		},
		{
			name:   "blank password",
			body:   `{"email":"alice@example.com","password":"   "}`,
			fields: map[string][]string{"password": {"Password is required."}},
		},
		{
			name:   "bad email",
			body:   `{"email":"alice","password":"pw1"}`,
			fields: map[string][]string{"email": {"Invalid email format."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			us := &fakeUserService{}
			w := post(t, us, "/Users", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := envelope(t, w)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.fields, resp.Errors)
			assert.Empty(t, us.gotEmail, "service must not be called")
		})
	}
}

func TestCreateUser_Conflict(t *testing.T) {
	us := &fakeUserService{registerErr: common.Conflict("Email already in use.")}

	w := post(t, us, "/Users", `{"email":"alice@example.com","password":"pw1"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := envelope(t, w)
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, "Email already in use.", resp.Message)
}

func TestCreateToken_OK(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	us := &fakeUserService{issued: &services.IssuedToken{Token: "tok", ExpireTime: exp}}

	w := post(t, us, "/token", `{"email":"alice@example.com","password":"pw1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Token      string    `json:"token"`
		ExpireTime time.Time `json:"expireTime"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "tok", body.Token)
	assert.True(t, exp.Equal(body.ExpireTime))
}

func TestCreateToken_Unauthorized(t *testing.T) {
	us := &fakeUserService{issueErr: common.Unauthorized("Wrong User or Password")}

	w := post(t, us, "/token", `{"email":"bob@example.com","password":"pw1"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Wrong User or Password", envelope(t, w).Message)
}

func TestCreateToken_InternalErrorIsGeneric(t *testing.T) {
	us := &fakeUserService{issueErr: errors.New("signing key is not configured")}

	s := NewHTTPServer(":0", logging.NopLogger{}, us, false)
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(`{"email":"a@example.com","password":"p"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := envelope(t, w)
	assert.Equal(t, "An unexpected error occurred.", resp.Message)
	assert.Empty(t, resp.Detailed)
}
