package api

import (
	"net/http"

	reqdto "tripbook-reservations/internal/handler/dto/request"
	resdto "tripbook-reservations/internal/handler/dto/response"
	"tripbook-reservations/internal/handler/middleware"
	"tripbook-reservations/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the interactive booking session: one in-progress
// aggregate per orchestrator, built up item by item and then confirmed.
type SessionHandler struct {
	orchestrator usecase.Orchestrator
}

func NewSessionHandler(orchestrator usecase.Orchestrator) *SessionHandler {
	return &SessionHandler{
		orchestrator: orchestrator,
	}
}

func (h *SessionHandler) StartSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	res, err := h.orchestrator.StartSession(c.Request.Context(), userID)
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

func (h *SessionHandler) ResumeSession(c *gin.Context) {
	var req reqdto.ResumeSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.orchestrator.ResumeSession(c.Request.Context(), req.ReservationID)
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *SessionHandler) CurrentSession(c *gin.Context) {
	res := h.orchestrator.CurrentReservation()
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No reservation session in progress",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *SessionHandler) AbandonSession(c *gin.Context) {
	h.orchestrator.ClearSession()
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) AddHotel(c *gin.Context) {
	var req reqdto.AddHotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.orchestrator.AddHotel(c.Request.Context(), req.ToParams())
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *SessionHandler) AddTransport(c *gin.Context) {
	var req reqdto.AddTransportRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.orchestrator.AddTransport(c.Request.Context(), req.ToParams())
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *SessionHandler) AddActivity(c *gin.Context) {
	var req reqdto.AddActivityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.orchestrator.AddActivity(c.Request.Context(), req.ToParams())
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *SessionHandler) ProceedToConfirmation(c *gin.Context) {
	res, err := h.orchestrator.ProceedToConfirmation(c.Request.Context())
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *SessionHandler) ConfirmAndBook(c *gin.Context) {
	res, err := h.orchestrator.ConfirmAndBook(c.Request.Context())
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *SessionHandler) ConfirmModification(c *gin.Context) {
	res, err := h.orchestrator.ConfirmModification(c.Request.Context())
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}
