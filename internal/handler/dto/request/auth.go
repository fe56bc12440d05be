package request

import (
	"github.com/google/uuid"
)

type IssueTokenRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}
