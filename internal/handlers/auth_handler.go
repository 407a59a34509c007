package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/barbearia-cta/agenda-api/internal/config"
	domain "github.com/barbearia-cta/agenda-api/internal/domain/booking"
	"github.com/barbearia-cta/agenda-api/internal/httperr"
	"github.com/barbearia-cta/agenda-api/internal/httpresp"
	"github.com/barbearia-cta/agenda-api/internal/models"
)

type AuthHandler struct {
	repo   domain.Repository
	config *config.Config
}

func NewAuthHandler(repo domain.Repository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{repo: repo, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Usuário e senha são obrigatórios.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	user := models.User{
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		PasswordHash: string(hashed),
	}

	if err := h.repo.CreateUser(c.Request.Context(), &user); err != nil {
		if httperr.IsBusiness(err, httperr.CodeUsernameTaken) {
			httperr.Conflict(c, "Este nome de usuário já está em uso.")
			return
		}
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.Created(c, gin.H{"id": user.ID})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Usuário e senha são obrigatórios.")
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := h.repo.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		httperr.Unauthorized(c, "Credenciais inválidas.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Credenciais inválidas.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.OK(c, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
