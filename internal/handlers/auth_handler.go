package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/idenegocios/barbershop-directory/internal/config"
	"github.com/idenegocios/barbershop-directory/internal/httperr"
	"github.com/idenegocios/barbershop-directory/internal/middleware"
)

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Login emite o token administrativo. As credenciais vêm do ambiente
// (ADMIN_EMAIL + ADMIN_PASSWORD_HASH); não existe cadastro de usuários.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição")
		return
	}

	if h.config.AdminEmail == "" || h.config.AdminPasswordHash == "" {
		httperr.Unauthorized(c, "admin_login_disabled", "Login administrativo não configurado")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != strings.ToLower(h.config.AdminEmail) {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(h.config.AdminPasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
		return
	}

	token, err := h.generateToken(email)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro interno do servidor")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  email,
		"role": middleware.RoleAdmin,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
