// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/app/services"
	"github.com/JuanS3/globant-data-eng/internal/middleware"
)

// AuthController handles token issuing for API clients
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// IssueToken exchanges an API key for an access token
// @Summary Issue an access token
// @Description Exchanges the configured API key for a bearer token used on mutating endpoints
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "API key"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token issued successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid API key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/token [post]
func (c *AuthController) IssueToken(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid token request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, err := c.authService.IssueToken(ctx, req.APIKey)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(token))
}
