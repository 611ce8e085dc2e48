package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/reelify/reelify-backend/internal/config"
	"github.com/reelify/reelify-backend/internal/handler"
	"github.com/reelify/reelify-backend/internal/middleware"
	"github.com/reelify/reelify-backend/internal/model"
	"github.com/reelify/reelify-backend/internal/response"
	"github.com/reelify/reelify-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Class      *handler.ClassHandler
	Selection  *handler.SelectionHandler
	Enrollment *handler.EnrollmentHandler
	Payment    *handler.PaymentHandler
	WS         *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	userService *service.UserService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	requireJWT := middleware.RequireJWT(authService)
	requireAdmin := middleware.RequireRole(userService, model.RoleAdmin)
	requireInstructor := middleware.RequireRole(userService, model.RoleInstructor, model.RoleAdmin)

	// ─── 1. Public (No Auth) ───────────────────────────────────────────
	router.POST("/jwt", handlers.Auth.IssueToken)
	router.PUT("/users/:email", handlers.User.UpsertUser)
	router.GET("/users/:email", handlers.User.GetUser)
	router.GET("/instructors", handlers.User.ListInstructors)
	router.GET("/instructors/popular", handlers.User.ListPopularInstructors(cfg.PopularLimit))
	router.GET("/classes", handlers.Class.ListApproved)
	router.GET("/classes/popular", handlers.Class.ListPopular)
	router.GET("/classes/:id", handlers.Class.GetClass)

	// ─── 2. Identity-scoped (JWT + Owner Match) ────────────────────────
	router.GET("/users/admin/:email", requireJWT, middleware.RequireOwner("email"), handlers.User.CheckAdmin)
	router.GET("/users/instructor/:email", requireJWT, middleware.RequireOwner("email"), handlers.User.CheckInstructor)
	router.GET("/selected/:email", requireJWT, middleware.RequireOwner("email"), handlers.Selection.ListSelections)
	router.GET("/enrolled/:email", requireJWT, middleware.RequireOwner("email"), handlers.Enrollment.ListEnrollments)
	router.GET("/classes/mine/:email", requireJWT, middleware.RequireOwner("email"), handlers.Class.ListMine)

	// ─── 3. Student Checkout (JWT; body email checked in handler) ──────
	router.POST("/selected", requireJWT, handlers.Selection.SelectClass)
	router.DELETE("/selected/:id", requireJWT, handlers.Selection.CancelSelection)
	router.POST("/create-payment-intent", requireJWT, handlers.Payment.CreatePaymentIntent)
	router.POST("/payments", requireJWT, handlers.Enrollment.Checkout)

	// ─── 4. Instructor ─────────────────────────────────────────────────
	router.POST("/classes", requireJWT, requireInstructor, handlers.Class.SubmitClass)

	// ─── 5. Admin (JWT + Role) ─────────────────────────────────────────
	// Approval and role elevation are admin-only; the legacy open
	// variants of these endpoints are intentionally not kept.
	router.PATCH("/classes/approved/:id", requireJWT, requireAdmin, handlers.Class.ApproveClass)
	router.PATCH("/classes/denied/:id", requireJWT, requireAdmin, handlers.Class.DenyClass)
	router.PUT("/classes/feedback/:id", requireJWT, requireAdmin, handlers.Class.SetFeedback)
	router.PATCH("/users/admin/:email", requireJWT, requireAdmin, handlers.User.GrantAdmin)
	router.PATCH("/users/instructor/:email", requireJWT, requireAdmin, handlers.User.GrantInstructor)

	// ─── 6. WebSocket (token query param) ──────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(requireJWT)
	{
		ws.GET("/classes/:id/seats", handlers.WS.ClassSeatsStream)
	}

	return router
}
