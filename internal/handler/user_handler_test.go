package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "profilesvc/internal/errors"
	"profilesvc/internal/model"
	"profilesvc/internal/validation"
)

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id int64) (*model.User, *model.Profile, error) {
	args := m.Called(ctx, id)
	var user *model.User
	if u := args.Get(0); u != nil {
		user = u.(*model.User)
	}
	var profile *model.Profile
	if p := args.Get(1); p != nil {
		profile = p.(*model.Profile)
	}
	return user, profile, args.Error(2)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	return e
}

// serve runs h through Echo's error handler so the response matches what a
// client sees.
func serve(e *echo.Echo, h echo.HandlerFunc, req *http.Request, names, values []string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if names != nil {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestUserHandler_Register(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(*MockUserService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			setupMock: func(m *MockUserService) {
				m.On("Register", mock.Anything, &model.User{FullName: "Ada", Email: "ada@x.com", Password: "p", Phone: "555"}).
					Return(&model.User{ID: 1, FullName: "Ada", Email: "ada@x.com", Password: "p", Phone: "555"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"first_name":"Ada","email":"ada@x.com","password":"p","phone":"555"}`,
		},
		{
			name: "email conflict",
			setupMock: func(m *MockUserService) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, apperrors.ErrEmailAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"detail":"Email already exists","code":"EMAIL_ALREADY_EXISTS"}`,
		},
		{
			name: "phone conflict",
			setupMock: func(m *MockUserService) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, apperrors.ErrPhoneAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"detail":"Phone already exists","code":"PHONE_ALREADY_EXISTS"}`,
		},
		{
			name: "store failure",
			setupMock: func(m *MockUserService) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: refused"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"Internal Server Error","code":"INTERNAL_ERROR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			tt.setupMock(svc)
			h := NewUserHandler(svc)

			req := jsonRequest(http.MethodPost, "/register/", `{"first_name":"Ada","email":"ada@x.com","password":"p","phone":"555"}`)
			rec := serve(newEcho(), h.Register, req, nil, nil)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_Register_InvalidBodySkipsService(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)

	req := jsonRequest(http.MethodPost, "/register/", `{"email":"ada@x.com"}`)
	rec := serve(newEcho(), h.Register, req, nil, nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body validation.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	fields := make([]string, 0, len(body.Detail))
	for _, d := range body.Detail {
		fields = append(fields, d.Loc[1])
	}
	assert.ElementsMatch(t, []string{"first_name", "password", "phone"}, fields)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_GetUser(t *testing.T) {
	picture := "ada.png"

	tests := []struct {
		name         string
		param        string
		setupMock    func(*MockUserService)
		expectedCode int
		expectedBody string
	}{
		{
			name:  "with profile",
			param: "1",
			setupMock: func(m *MockUserService) {
				m.On("GetUser", mock.Anything, int64(1)).Return(
					&model.User{ID: 1, FullName: "Ada", Email: "ada@x.com", Password: "p", Phone: "555"},
					&model.Profile{ID: 1, UserID: 1, ProfilePicture: &picture},
					nil,
				)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"first_name":"Ada","email":"ada@x.com","phone":"555","profile_picture":"ada.png"}`,
		},
		{
			name:  "without profile",
			param: "1",
			setupMock: func(m *MockUserService) {
				m.On("GetUser", mock.Anything, int64(1)).Return(
					&model.User{ID: 1, FullName: "Ada", Email: "ada@x.com", Phone: "555"}, nil, nil,
				)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"first_name":"Ada","email":"ada@x.com","phone":"555","profile_picture":null}`,
		},
		{
			name:  "not found",
			param: "2",
			setupMock: func(m *MockUserService) {
				m.On("GetUser", mock.Anything, int64(2)).Return(nil, nil, apperrors.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"User not found","code":"USER_NOT_FOUND"}`,
		},
		{
			name:         "non-integer id",
			param:        "abc",
			setupMock:    func(m *MockUserService) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":[{"loc":["path","user_id"],"msg":"value is not a valid integer","type":"type_error.integer"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			tt.setupMock(svc)
			h := NewUserHandler(svc)

			req := httptest.NewRequest(http.MethodGet, "/user/"+tt.param, nil)
			rec := serve(newEcho(), h.GetUser, req, []string{"user_id"}, []string{tt.param})

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
