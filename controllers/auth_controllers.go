package controllers

import (
	"rentmag/dto"
	"rentmag/response"
	"rentmag/services"
	"rentmag/validator"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles POST /auth/register.
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := validator.ValidateRegister(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	user, token, err := ctrl.authService.Register(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.AuthResponse{User: user, Token: token})
}

// Login handles POST /auth/login.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	user, token, err := ctrl.authService.Login(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.AuthResponse{User: user, Token: token})
}

// Profile handles GET /auth/profile.
func (ctrl *AuthController) Profile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	user, err := ctrl.authService.Profile(userID.(uint))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, user)
}
