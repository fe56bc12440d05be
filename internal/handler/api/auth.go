package api

import (
	"net/http"

	reqdto "tripbook-reservations/internal/handler/dto/request"
	resdto "tripbook-reservations/internal/handler/dto/response"
	"tripbook-reservations/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthHandler issues bearer tokens for a known user id. There is no user
// store in this service; identity lives upstream and this endpoint exists for
// development and service-to-service use.
type AuthHandler struct {
	tokens *jwt.Service
}

func NewAuthHandler(tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req reqdto.IssueTokenRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.tokens.GenerateToken(req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
