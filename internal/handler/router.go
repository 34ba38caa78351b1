package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sejour/internal/domain/user"
	"sejour/internal/handler/api"
	"sejour/internal/handler/middleware"
	"sejour/internal/pkg/config"
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
	reservationHandler *api.ReservationHandler,
	paymentHandler *api.PaymentHandler,
	reviewHandler *api.ReviewHandler,
	propertyHandler *api.PropertyHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, paymentHandler, reviewHandler, propertyHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	reservationHandler *api.ReservationHandler,
	paymentHandler *api.PaymentHandler,
	reviewHandler *api.ReviewHandler,
	propertyHandler *api.PropertyHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		properties := apiGroup.Group("/properties")
		{
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "", Handler: propertyHandler.ListProperties},
				{Method: http.MethodGet, Path: "/:id", Handler: propertyHandler.GetProperty},
			})
		}

		agencies := apiGroup.Group("/agencies")
		{
			addRoutes(agencies, []route{
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.GetAgencyReviews},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.GetUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			// Gateway webhook authenticates by reference, not by user token
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/verify", Handler: paymentHandler.VerifyPayment},
			})

			authRequired := payments.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: paymentHandler.PayReservation},
				{Method: http.MethodGet, Path: "", Handler: paymentHandler.GetUserPayments},
				{Method: http.MethodGet, Path: "/:id", Handler: paymentHandler.GetPayment},
				{Method: http.MethodPost, Path: "/:id/refund", Handler: paymentHandler.RefundPayment},
				{Method: http.MethodGet, Path: "/reservation/:reservationId", Handler: paymentHandler.GetPaymentByReservation},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			// Only clients review agencies; agency accounts get 403
			addRoutes(reviews, []route{
				{
					Method:  http.MethodPost,
					Path:    "",
					Handler: reviewHandler.SubmitReview,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleClient)},
				},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
