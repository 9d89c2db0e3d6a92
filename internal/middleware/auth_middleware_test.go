package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JuanS3/globant-data-eng/internal/pkg/auth"
)

func newAuthTestRouter(t *testing.T, enabled bool) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "globant-data-eng-test",
	})

	router := gin.New()
	middleware := NewAuthMiddleware(jwtService, enabled)
	router.POST("/protected", middleware.JWTAuth(), func(c *gin.Context) {
		clientID := c.GetString("clientId")
		c.JSON(http.StatusOK, gin.H{"clientId": clientID})
	})

	return router, jwtService
}

func TestJWTAuthDisabledPassesThrough(t *testing.T) {
	router, _ := newAuthTestRouter(t, false)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
}

func TestJWTAuthMissingToken(t *testing.T) {
	router, _ := newAuthTestRouter(t, true)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestJWTAuthValidBearerToken(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, true)

	token, _, err := jwtService.GenerateToken("api-client")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}
}

func TestJWTAuthRawTokenWithoutBearerPrefix(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, true)

	token, _, err := jwtService.GenerateToken("api-client")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, _ := newAuthTestRouter(t, true)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestJWTAuthTokenSignedWithWrongSecret(t *testing.T) {
	router, _ := newAuthTestRouter(t, true)

	otherService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "a-different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "globant-data-eng-test",
	})
	token, _, err := otherService.GenerateToken("api-client")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestJWTAuthTokenFromQueryParameter(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, true)

	token, _, err := jwtService.GenerateToken("api-client")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/protected?token="+token, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}
}
