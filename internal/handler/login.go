// internal/handler/login.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"parking-portal/internal/auth"
	"parking-portal/internal/config"
	"parking-portal/internal/storage"
)

type LoginHandler struct {
	tokens      *auth.TokenService
	contractors storage.ContractorStorage
	cfg         config.Config
}

func NewLoginHandler(tokens *auth.TokenService, contractors storage.ContractorStorage, cfg config.Config) *LoginHandler {
	return &LoginHandler{tokens: tokens, contractors: contractors, cfg: cfg}
}

type contractorLoginRequest struct {
	Name       string `json:"name" validate:"required,notblank"`
	PhoneLast4 string `json:"phone_last4" validate:"required,len=4,numeric"`
}

// ContractorLogin authenticates a contractor by display name plus the
// last four digits of their registered phone number.
func (h *LoginHandler) ContractorLogin(c *gin.Context) {
	var req contractorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := h.contractors.FindContractorByLogin(c.Request.Context(), req.Name, req.PhoneLast4)
	if err != nil {
		slog.Warn("contractor login failed", "name", req.Name)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.tokens.GenerateToken(contractor.ID.String(), auth.RoleContractor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type ownerLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *LoginHandler) OwnerLogin(c *gin.Context) {
	var req ownerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email != h.cfg.OwnerEmail ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.OwnerPasswordHash), []byte(req.Password)) != nil {
		slog.Warn("owner login failed", "email", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.tokens.GenerateToken(req.Email, auth.RoleOwner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
