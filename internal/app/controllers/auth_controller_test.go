package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
)

type stubAuthService struct {
	issueTokenFn func(ctx context.Context, apiKey string) (*dto.TokenResponse, error)
}

func (s stubAuthService) IssueToken(ctx context.Context, apiKey string) (*dto.TokenResponse, error) {
	if s.issueTokenFn == nil {
		return &dto.TokenResponse{}, nil
	}
	return s.issueTokenFn(ctx, apiKey)
}

func newAuthRouter(service stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAuthController(service)
	router.POST("/auth/token", controller.IssueToken)
	return router
}

func TestIssueToken(t *testing.T) {
	router := newAuthRouter(stubAuthService{
		issueTokenFn: func(ctx context.Context, apiKey string) (*dto.TokenResponse, error) {
			if apiKey != "super-secret-key" {
				t.Fatalf("unexpected api key: %s", apiKey)
			}
			return &dto.TokenResponse{
				AccessToken: "signed.jwt.token",
				TokenType:   "Bearer",
				ExpiresIn:   3600,
			}, nil
		},
	})

	body := bytes.NewBufferString(`{"apiKey":"super-secret-key"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/token", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}

	var response struct {
		Data dto.TokenResponse `json:"data"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if response.Data.AccessToken != "signed.jwt.token" || response.Data.TokenType != "Bearer" {
		t.Fatalf("unexpected token response: %+v", response.Data)
	}
}

func TestIssueTokenInvalidKey(t *testing.T) {
	router := newAuthRouter(stubAuthService{
		issueTokenFn: func(ctx context.Context, apiKey string) (*dto.TokenResponse, error) {
			return nil, apperrors.ErrInvalidCredentials
		},
	})

	body := bytes.NewBufferString(`{"apiKey":"wrong-key"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/token", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestIssueTokenMissingKey(t *testing.T) {
	router := newAuthRouter(stubAuthService{})

	body := bytes.NewBufferString(`{}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/token", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}
