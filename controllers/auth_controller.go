package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hranalyzer/services"
	"hranalyzer/utils"
)

type AuthController struct {
	credentials *services.CredentialStore
	jwtService  *services.JWTService
	logger      *utils.Logger
}

func NewAuthController(credentials *services.CredentialStore, jwtService *services.JWTService) *AuthController {
	return &AuthController{
		credentials: credentials,
		jwtService:  jwtService,
		logger:      utils.NewLogger("auth"),
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    string `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

// Login checks the submitted credentials against the store and issues a
// bearer token on success. A failed check is an inline message, not an
// error; no session state is created.
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid request data: " + err.Error(),
		})
		return
	}

	if !c.credentials.Check(req.Username, req.Password) {
		ctx.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Invalid username or password",
		})
		return
	}

	token, err := c.jwtService.GenerateToken(req.Username)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to generate authentication token",
		})
		return
	}

	c.logger.Info("Login successful", gin.H{"user": req.Username})
	ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    req.Username,
		Token:   token,
	})
}
