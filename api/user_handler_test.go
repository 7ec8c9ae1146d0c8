package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/padel-booking-backend/api"
	mock_api "github.com/hanksha/padel-booking-backend/api/mocks"
	"github.com/hanksha/padel-booking-backend/auth"
	"github.com/hanksha/padel-booking-backend/user"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func passThrough(c *gin.Context) { c.Next() }

func setupUserRouter(t *testing.T, principal auth.Principal) (*gin.Engine, *gomock.Controller, *mock_api.MockUserService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockUserService(ctrl)
	handler := api.NewUserHandler(mockService)
	handler.RegisterAuth(router.Group("/api/v1/auth"), passThrough)
	handler.Register(router.Group("/api/v1/users"), setPrincipalInContext(principal))

	return router, ctrl, mockService
}

func TestSignUp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupUserRouter(t, player)
		defer ctrl.Finish()

		registration := user.Registration{Name: "Ana", Email: "ana@padel.test", Password: "secret-pass"}
		created := user.User{ID: 7, Name: "Ana", Email: "ana@padel.test", PasswordHash: "hash", Role: auth.RoleUser}
		body, _ := json.Marshal(registration)

		mockService.EXPECT().Register(gomock.Any(), registration).Return(created, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBuffer(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.NotContains(t, w.Body.String(), "hash")
		assert.Contains(t, w.Body.String(), `"role":"user"`)
	})

	t.Run("email taken", func(t *testing.T) {
		router, ctrl, mockService := setupUserRouter(t, player)
		defer ctrl.Finish()

		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(user.User{}, user.ErrEmailTaken).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBufferString(`{"name":"Ana","email":"ana@padel.test","password":"secret-pass"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"email already registered"}`, w.Body.String())
	})

	t.Run("invalid user", func(t *testing.T) {
		router, ctrl, mockService := setupUserRouter(t, player)
		defer ctrl.Finish()

		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(user.User{}, user.ErrInvalidUser).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBufferString(`{"name":"Ana","email":"ana","password":"x"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})
}

func TestLogIn(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupUserRouter(t, player)
		defer ctrl.Finish()

		session := user.Session{Token: "signed", User: user.User{ID: 7, Email: "ana@padel.test", Role: auth.RoleUser}}
		sessionJson, _ := json.MarshalIndent(session, "", "    ")
		mockService.EXPECT().Login(gomock.Any(), "ana@padel.test", "secret-pass").Return(session, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBufferString(`{"email":"ana@padel.test","password":"secret-pass"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(sessionJson), w.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		router, ctrl, mockService := setupUserRouter(t, player)
		defer ctrl.Finish()

		mockService.EXPECT().Login(gomock.Any(), "ana@padel.test", "wrong").Return(user.Session{}, user.ErrInvalidCredentials).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBufferString(`{"email":"ana@padel.test","password":"wrong"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"invalid credentials"}`, w.Body.String())
	})
}

func TestMe(t *testing.T) {
	router, ctrl, mockService := setupUserRouter(t, player)
	defer ctrl.Finish()

	found := user.User{ID: 7, Name: "Ana", Email: "ana@padel.test", Role: auth.RoleUser}
	foundJson, _ := json.MarshalIndent(found, "", "    ")
	mockService.EXPECT().GetUserByID(gomock.Any(), int64(7)).Return(found, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/users/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, string(foundJson), w.Body.String())
}

func TestListUsers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupUserRouter(t, admin)
		defer ctrl.Finish()

		users := []user.User{{ID: 1}, {ID: 7}}
		usersJson, _ := json.MarshalIndent(users, "", "    ")
		mockService.EXPECT().GetUsers(gomock.Any()).Return(users, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(usersJson), w.Body.String())
	})

	t.Run("not admin", func(t *testing.T) {
		router, ctrl, mockService := setupUserRouter(t, player)
		defer ctrl.Finish()

		mockService.EXPECT().GetUsers(gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})
}

func TestSetRole(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupUserRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().SetUserRole(gomock.Any(), int64(7), auth.RoleAdministrator).Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/users/7/role", bytes.NewBufferString(`{"role":"administrator"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"role updated"}`, w.Body.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		router, ctrl, mockService := setupUserRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().SetUserRole(gomock.Any(), int64(9), auth.RoleUser).Return(user.ErrUserNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/users/9/role", bytes.NewBufferString(`{"role":"user"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	router, ctrl, mockService := setupUserRouter(t, admin)
	defer ctrl.Finish()

	mockService.EXPECT().DeleteUser(gomock.Any(), int64(7)).Return(nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/v1/users/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"message":"user deleted"}`, w.Body.String())
}
