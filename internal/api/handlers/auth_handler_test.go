package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/api/middleware"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/application"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/config"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/user"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/repository"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/repository/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *mock.MockUserRepo) {
	t.Helper()

	config.JwtSecret = "handler-test-secret"
	config.Issuer = "test"
	middleware.Init()

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{User: mockUser}
	h := NewAuthHandler(application.NewAuthService(repos))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.GET("/profile", middleware.JWTAuthMiddleware(), h.Profile)
	return r, mockUser
}

func TestRegisterHandler_Success(t *testing.T) {
	r, mockUser := setupAuthRouter(t)

	mockUser.EXPECT().FindByEmail("new@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 3
		return nil
	})

	b, _ := json.Marshal(map[string]any{
		"email":    "new@test.com",
		"password": "123456",
		"name":     "New Client",
		"role":     "client",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])

	usr := body["user"].(map[string]any)
	assert.Equal(t, "new@test.com", usr["email"])
	_, hasHash := usr["passwordHash"]
	assert.False(t, hasHash)
}

func TestRegisterHandler_RejectsAdminRole(t *testing.T) {
	r, _ := setupAuthRouter(t)

	b, _ := json.Marshal(map[string]any{
		"email":    "evil@test.com",
		"password": "123456",
		"name":     "Evil",
		"role":     "admin",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterHandler_AgentNeedsLicense(t *testing.T) {
	r, _ := setupAuthRouter(t)

	b, _ := json.Marshal(map[string]any{
		"email":    "agent@test.com",
		"password": "123456",
		"name":     "Agent",
		"role":     "agent",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "license number")
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	r, mockUser := setupAuthRouter(t)

	mockUser.EXPECT().FindByEmailAndRole("nobody@test.com", user.RoleClient).
		Return(user.User{}, gorm.ErrRecordNotFound)

	b, _ := json.Marshal(map[string]any{
		"email":    "nobody@test.com",
		"password": "123456",
		"role":     "client",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestLoginHandler_Deactivated(t *testing.T) {
	r, mockUser := setupAuthRouter(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().FindByEmailAndRole("off@test.com", user.RoleAgent).
		Return(user.User{ID: 5, Email: "off@test.com", Role: user.RoleAgent, PasswordHash: string(hashed), IsActive: false}, nil)

	b, _ := json.Marshal(map[string]any{
		"email":    "off@test.com",
		"password": "123456",
		"role":     "agent",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProfileHandler(t *testing.T) {
	r, mockUser := setupAuthRouter(t)

	mockUser.EXPECT().FindByID(uint(7)).Return(user.User{
		ID: 7, Email: "me@test.com", Role: user.RoleAgent, Name: "Me",
		LicenseNumber: "LIC-7", Brokerage: "Realty Co", IsActive: true,
	}, nil)

	token, _ := middleware.GenerateToken(7, user.RoleAgent)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		User user.UserView `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "LIC-7", body.User.LicenseNumber)
}
