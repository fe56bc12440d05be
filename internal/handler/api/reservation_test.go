//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tripbook-reservations/internal/domain/reservation"
	"tripbook-reservations/internal/handler/api"
	"tripbook-reservations/internal/usecase"
	"tripbook-reservations/tests/common/builder"
	usecasemock "tripbook-reservations/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockOrchestrator *usecasemock.MockOrchestrator
	handler          *api.ReservationHandler
	userID           uuid.UUID
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrchestrator = usecasemock.NewMockOrchestrator(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockOrchestrator)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.GET("/reservations", authMiddleware, s.handler.GetUserReservations)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.GetReservation)
	s.router.DELETE("/reservations/:id", authMiddleware, s.handler.CancelReservation)
	s.router.POST("/reservations/:id/modify", authMiddleware, s.handler.StartModification)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReservationHandlerTestSuite) do(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	res := builder.NewReservationBuilder().BuildConfirmed()

	s.Run("success", func() {
		s.mockOrchestrator.EXPECT().
			GetReservationDetails(gomock.Any(), res.ID()).
			Return(res, nil)

		w := s.do(http.MethodGet, "/reservations/"+res.ID().String())
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), res.ID().String())
		s.Contains(w.Body.String(), `"status":"confirmed"`)
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockOrchestrator.EXPECT().
			GetReservationDetails(gomock.Any(), id).
			Return(nil, usecase.ErrReservationNotFound)

		w := s.do(http.MethodGet, "/reservations/"+id.String())
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("malformed id", func() {
		w := s.do(http.MethodGet, "/reservations/not-a-uuid")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unauthenticated", func() {
		req := httptest.NewRequest(http.MethodGet, "/reservations/"+uuid.New().String(), nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	draft := builder.NewReservationBuilder().WithUserID(s.userID).Build()
	confirmed := builder.NewReservationBuilder().WithUserID(s.userID).BuildConfirmed()

	s.mockOrchestrator.EXPECT().
		ListUserReservations(gomock.Any(), s.userID).
		Return([]*reservation.Reservation{draft, confirmed}, nil)

	w := s.do(http.MethodGet, "/reservations")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), draft.ID().String())
	s.Contains(w.Body.String(), confirmed.ID().String())
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	s.Run("success", func() {
		id := uuid.New()
		s.mockOrchestrator.EXPECT().CancelReservation(gomock.Any(), id).Return(nil)

		w := s.do(http.MethodDelete, "/reservations/"+id.String())
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("gateway refused", func() {
		id := uuid.New()
		s.mockOrchestrator.EXPECT().
			CancelReservation(gomock.Any(), id).
			Return(usecase.ErrGatewayCancelFailed)

		w := s.do(http.MethodDelete, "/reservations/"+id.String())
		s.Equal(http.StatusBadGateway, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestStartModification() {
	s.Run("success", func() {
		res := builder.NewReservationBuilder().Build()
		s.mockOrchestrator.EXPECT().
			StartModificationSession(gomock.Any(), res.ID()).
			Return(res, nil)

		w := s.do(http.MethodPost, "/reservations/"+res.ID().String()+"/modify")
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"status":"in_progress"`)
	})

	s.Run("already cancelled", func() {
		id := uuid.New()
		s.mockOrchestrator.EXPECT().
			StartModificationSession(gomock.Any(), id).
			Return(nil, usecase.ErrReservationCancelled)

		w := s.do(http.MethodPost, "/reservations/"+id.String()+"/modify")
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("session conflict", func() {
		id := uuid.New()
		s.mockOrchestrator.EXPECT().
			StartModificationSession(gomock.Any(), id).
			Return(nil, usecase.ErrSessionConflict)

		w := s.do(http.MethodPost, "/reservations/"+id.String()+"/modify")
		s.Equal(http.StatusConflict, w.Code)
	})
}
