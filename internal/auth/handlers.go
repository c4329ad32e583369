package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthController handles the registration and login endpoints.
type AuthController struct {
	service *Service
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *Service) *AuthController {
	return &AuthController{service: service}
}

// RegisterRoutes registers the unauthenticated auth routes on the router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/register", ac.Register)
	router.POST("/api/login", ac.Login)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"is_admin"`
}

// Register handles POST /api/register.
func (ac *AuthController) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, err := ac.service.Register(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		case errors.Is(err, ErrEmailRequired), errors.Is(err, ErrPasswordRequired),
			errors.Is(err, ErrEmailInvalid), errors.Is(err, ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Internal error (register): %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login handles POST /api/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, token, err := ac.service.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			log.Printf("Internal error (login): %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token:   token,
		IsAdmin: user.IsAdmin,
	})
}
