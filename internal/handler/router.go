package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripbook-reservations/internal/handler/api"
	"tripbook-reservations/internal/handler/middleware"
	"tripbook-reservations/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	authHandler *api.AuthHandler,
	sessionHandler *api.SessionHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, sessionHandler, reservationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	sessionHandler *api.SessionHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/token", Handler: authHandler.IssueToken},
			})
		}

		session := apiGroup.Group("/session")
		session.Use(authMiddleware.RequireAuth())
		{
			addRoutes(session, []route{
				{Method: http.MethodPost, Path: "", Handler: sessionHandler.StartSession},
				{Method: http.MethodPost, Path: "/resume", Handler: sessionHandler.ResumeSession},
				{Method: http.MethodGet, Path: "", Handler: sessionHandler.CurrentSession},
				{Method: http.MethodDelete, Path: "", Handler: sessionHandler.AbandonSession},
				{Method: http.MethodPut, Path: "/hotel", Handler: sessionHandler.AddHotel},
				{Method: http.MethodPost, Path: "/transports", Handler: sessionHandler.AddTransport},
				{Method: http.MethodPost, Path: "/activities", Handler: sessionHandler.AddActivity},
				{Method: http.MethodPost, Path: "/proceed", Handler: sessionHandler.ProceedToConfirmation},
				{Method: http.MethodPost, Path: "/confirm", Handler: sessionHandler.ConfirmAndBook},
				{Method: http.MethodPost, Path: "/confirm-modification", Handler: sessionHandler.ConfirmModification},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.GetUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.CancelReservation},
				{Method: http.MethodPost, Path: "/:id/modify", Handler: reservationHandler.StartModification},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
