package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/lightbnb-gateway/internal/models"
	"github.com/sbilibin2017/lightbnb-gateway/internal/services"
	"github.com/sbilibin2017/lightbnb-gateway/internal/sqlerr"
)

func TestRegisterUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newUser := models.NewUser{Name: "john", Email: "john@example.com", Password: "secret"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserRegisterer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"name":"john","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), newUser).
					Return(&models.User{ID: 1, Name: "john", Email: "john@example.com", Password: "secret"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":1,"name":"john","email":"john@example.com"}`,
		},
		{
			name: "email already exists",
			body: `{"name":"john","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), newUser).
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Email already exists"}`,
		},
		{
			name: "database unavailable",
			body: `{"name":"john","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), newUser).
					Return(nil, sqlerr.Classify("users.save", sql.ErrConnDone))
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"error":"Database unavailable"}`,
		},
		{
			name: "internal server error",
			body: `{"name":"john","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), newUser).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name:         "invalid json",
			body:         `{invalid-json}`,
			mockSetup:    func(m *MockUserRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
		{
			name:         "missing password",
			body:         `{"name":"john","email":"john@example.com"}`,
			mockSetup:    func(m *MockUserRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"password is required"}`,
		},
		{
			name:         "malformed email",
			body:         `{"name":"john","email":"not-an-email","password":"secret"}`,
			mockSetup:    func(m *MockUserRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"email must be a valid email address"}`,
		},
		{
			name:         "empty body",
			body:         `{}`,
			mockSetup:    func(m *MockUserRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"name is required; email is required; password is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			NewRegisterUserHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockUserGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "found",
			id:   "7",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetByID(gomock.Any(), int64(7)).
					Return(&models.User{ID: 7, Name: "Ann", Email: "ann@example.com", Password: "pw"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":7,"name":"Ann","email":"ann@example.com"}`,
		},
		{
			name: "not found",
			id:   "8",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetByID(gomock.Any(), int64(8)).
					Return(nil, sqlerr.Classify("users.get_by_id", sql.ErrNoRows))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Not found"}`,
		},
		{
			name:         "invalid id",
			id:           "abc",
			mockSetup:    func(m *MockUserGetter) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserGetter(ctrl)
			tt.mockSetup(mockSvc)

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+tt.id, nil), "id", tt.id)
			w := httptest.NewRecorder()

			NewGetUserHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestFindUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("found by email", func(t *testing.T) {
		mockSvc := NewMockUserGetter(ctrl)
		mockSvc.EXPECT().GetByEmail(gomock.Any(), "Ann@Example.com").
			Return(&models.User{ID: 7, Name: "Ann", Email: "ann@example.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users?email=Ann@Example.com", nil)
		w := httptest.NewRecorder()
		NewFindUserHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var user models.User
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.Equal(t, int64(7), user.ID)
		assert.Empty(t, user.Password)
	})

	t.Run("missing email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		w := httptest.NewRecorder()
		NewFindUserHandler(NewMockUserGetter(ctrl)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Email is required"}`, w.Body.String())
	})
}
