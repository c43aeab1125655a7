package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskward/taskward-server/internal/api/http/middleware"
	"github.com/taskward/taskward-server/internal/model"
	"github.com/taskward/taskward-server/internal/testutil"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &authServiceMock{}
	userID := uuid.New()
	svc.On("Register", mock.Anything, model.RegisterParams{
		Name:     "Ana",
		Email:    "ana@mail.com",
		Password: "secret1",
	}).Return(model.User{ID: userID, Name: "Ana", Email: "ana@mail.com", PasswordHash: "$2a$10$digest"}, nil)

	h := NewAuth(svc, testutil.MakeNoopLogger())

	body := `{"name":"Ana","email":"ana@mail.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string `json:"message"`
		User    struct {
			ID    uuid.UUID `json:"id"`
			Name  string    `json:"name"`
			Email string    `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "user created", resp.Message)
	assert.Equal(t, userID, resp.User.ID)

	// The password hash must never leak into the response.
	assert.NotContains(t, rec.Body.String(), "digest")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_BadBody(t *testing.T) {
	h := NewAuth(&authServiceMock{}, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body middleware.ErrorResponseBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, model.CodeValidation, body.Code)
}

func TestAuthHandler_Register_ServiceError(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Register", mock.Anything, mock.Anything).Return(model.User{}, model.NewDuplicateEmailError())

	h := NewAuth(svc, testutil.MakeNoopLogger())

	body := `{"name":"Ana","email":"taken@mail.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody middleware.ErrorResponseBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errBody))
	assert.Equal(t, model.CodeDuplicateEmail, errBody.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Login", mock.Anything, "ana@mail.com", "secret1").Return("session-token", nil)

	h := NewAuth(svc, testutil.MakeNoopLogger())

	body := `{"email":"ana@mail.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "session-token", resp.Token)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.SessionCookieName, cookie.Name)
	assert.Equal(t, "session-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Login", mock.Anything, "ana@mail.com", "wrong").Return("", model.NewInvalidCredentialsError())

	h := NewAuth(svc, testutil.MakeNoopLogger())

	body := `{"email":"ana@mail.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	var errBody middleware.ErrorResponseBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errBody))
	assert.Equal(t, model.CodeInvalidCredentials, errBody.Code)
}
