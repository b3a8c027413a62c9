package routes

import (
	"time"

	"reservations-backend/internal/api/handlers"
	"reservations-backend/internal/api/middleware"
	"reservations-backend/internal/auth"
	"reservations-backend/internal/config"
	"reservations-backend/internal/repository"
	"reservations-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	calendarService := service.NewCalendarService(calendarRepo, organizationRepo, reservationRepo, validator)
	reservationService := service.NewReservationService(reservationRepo, calendarRepo, organizationRepo, validator)

	// Initialize auth services
	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour
	authService := auth.NewAuthService(userRepo, validator, cfg.JWTSecret, tokenTTL)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	reservationHandler := handlers.NewReservationHandler(reservationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth routes
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	// Current user route
	router.GET("/me", authMiddleware.RequireAuth(), authHandler.GetMe)

	// Organization routes
	organizations := router.Group("/organization")
	organizations.Use(authMiddleware.RequireAuth())
	{
		organizations.POST("", organizationHandler.CreateOrganization)
		organizations.POST("/search", organizationHandler.SearchOrganizations)
		organizations.GET("/:orgId", organizationHandler.GetOrganization)
		organizations.PUT("/:orgId", organizationHandler.UpdateOrganization)
		organizations.DELETE("/:orgId", organizationHandler.DeleteOrganization)
	}

	// Tenant-scoped routes
	tenant := router.Group("/:orgId")
	tenant.Use(authMiddleware.RequireAuth())
	{
		calendars := tenant.Group("/calendar")
		{
			calendars.POST("", calendarHandler.CreateCalendar)
			calendars.POST("/search", calendarHandler.SearchCalendars)
			calendars.GET("/:calendarId", calendarHandler.GetCalendar)
			calendars.PUT("/:calendarId", calendarHandler.UpdateCalendar)
			calendars.DELETE("/:calendarId", calendarHandler.DeleteCalendar)

			reservations := calendars.Group("/:calendarId/reservation")
			{
				reservations.POST("", reservationHandler.CreateReservation)
				reservations.POST("/search", reservationHandler.SearchReservations)
				reservations.GET("/:reservationId", reservationHandler.GetReservation)
				reservations.PUT("/:reservationId", reservationHandler.UpdateReservation)
				reservations.DELETE("/:reservationId", reservationHandler.DeleteReservation)
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
