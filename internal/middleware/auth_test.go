package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"fixnow/internal/domain"
	jwtsvc "fixnow/internal/pkg/jwt"
)

type stubUserLoader struct {
	user *domain.User
}

func (s *stubUserLoader) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func protectedRouter(jwtService *jwtsvc.Service, users UserLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(jwtService, users))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64("user_id"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)
	token, _ := jwtService.GenerateToken(42, "client")

	users := &stubUserLoader{user: &domain.User{ID: 42, Name: "John", Role: domain.RoleUser}}
	router := protectedRouter(jwtService, users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestAuth_InvalidToken(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)
	router := protectedRouter(jwtService, &stubUserLoader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAuth_NoHeader(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)
	router := protectedRouter(jwtService, &stubUserLoader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongScheme(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)
	router := protectedRouter(jwtService, &stubUserLoader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// A token for an account that has since been deleted must not pass.
func TestAuth_DeletedUser(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)
	token, _ := jwtService.GenerateToken(42, "client")

	router := protectedRouter(jwtService, &stubUserLoader{user: nil})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User no longer exists")
}

func TestAuth_ExpiredToken(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", -time.Minute)
	token, _ := jwtService.GenerateToken(42, "client")

	users := &stubUserLoader{user: &domain.User{ID: 42, Role: domain.RoleUser}}
	router := protectedRouter(jwtService, users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(role string) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) { c.Set("role", role) }, AdminOnly())
		r.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("admin passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter("admin").ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("client is forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter("client").ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
