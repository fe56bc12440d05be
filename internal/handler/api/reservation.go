package api

import (
	"errors"
	"net/http"

	resdto "tripbook-reservations/internal/handler/dto/response"
	"tripbook-reservations/internal/handler/middleware"
	"tripbook-reservations/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	orchestrator usecase.Orchestrator
}

func NewReservationHandler(orchestrator usecase.Orchestrator) *ReservationHandler {
	return &ReservationHandler{
		orchestrator: orchestrator,
	}
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.orchestrator.GetReservationDetails(c.Request.Context(), id)
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	list, err := h.orchestrator.ListUserReservations(c.Request.Context(), userID)
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservations(list))
}

func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.orchestrator.CancelReservation(c.Request.Context(), id); err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) StartModification(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.orchestrator.StartModificationSession(c.Request.Context(), id)
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// respondOrchestratorError maps usecase sentinels to HTTP status codes.
// Provider and gateway failures surface as 502 so clients can distinguish
// upstream trouble from their own bad requests.
func respondOrchestratorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrSessionConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A reservation session is already active",
		})
	case errors.Is(err, usecase.ErrNoActiveSession):
		c.JSON(http.StatusConflict, gin.H{
			"error": "No reservation session in progress",
		})
	case errors.Is(err, usecase.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date range",
		})
	case errors.Is(err, usecase.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Reservation validation failed",
		})
	case errors.Is(err, usecase.ErrItemUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Item unavailable or price could not be fetched",
		})
	case errors.Is(err, usecase.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, usecase.ErrReservationCancelled):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation is already cancelled",
		})
	case errors.Is(err, usecase.ErrBookingFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Provider booking failed",
		})
	case errors.Is(err, usecase.ErrGatewaySubmitFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Reservation gateway rejected the submission",
		})
	case errors.Is(err, usecase.ErrGatewayCancelFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Reservation gateway rejected the cancellation",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
