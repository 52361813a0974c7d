package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dormhub/internal/httpapi/models"
	"dormhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(email, password string, universityID *int64) (*models.User, error) {
	args := m.Called(email, password, universityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(email, password string) (string, *models.User, error) {
	args := m.Called(email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func guardedRouter(authService service.AuthService, extra ...gin.HandlerFunc) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	reached := false
	handlers := append([]gin.HandlerFunc{AuthRequired(authService)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{
			"userID":  c.GetString("userID"),
			"isAdmin": c.GetBool("isAdmin"),
		})
	})
	router.GET("/protected", handlers...)
	return router, &reached
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router, reached := guardedRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
	mockAuthService.AssertNotCalled(t, "ValidateToken", mock.Anything)
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router, reached := guardedRouter(mockAuthService)

	// Malformed, tampered, and expired all land here with the same answer
	mockAuthService.On("ValidateToken", "bad-token").Return(nil, service.ErrInvalidToken)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set(TokenHeader, "bad-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestAuthRequired_SetsIdentity(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router, reached := guardedRouter(mockAuthService)

	mockAuthService.On("ValidateToken", "good-token").Return(&service.Claims{
		UserID:  "user-1",
		Email:   "alice@example.com",
		IsAdmin: true,
	}, nil)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set(TokenHeader, "good-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAdminOnly_NonAdminForbidden(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router, reached := guardedRouter(mockAuthService, AdminOnly())

	mockAuthService.On("ValidateToken", "user-token").Return(&service.Claims{
		UserID:  "user-2",
		Email:   "bob@example.com",
		IsAdmin: false,
	}, nil)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set(TokenHeader, "user-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// Authenticated but not authorized; the handler never runs
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *reached)
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router, reached := guardedRouter(mockAuthService, AdminOnly())

	mockAuthService.On("ValidateToken", "admin-token").Return(&service.Claims{
		UserID:  "user-1",
		Email:   "alice@example.com",
		IsAdmin: true,
	}, nil)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set(TokenHeader, "admin-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}
