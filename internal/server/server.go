// Package server wires services and handlers into the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"twofold/internal/handlers"
	"twofold/internal/middleware"
	"twofold/internal/services"
	"twofold/internal/session"
)

// Options configures the router.
type Options struct {
	Auth       handlers.AuthSettings
	CORSOrigin string
	// Swagger mounts /swagger/*any when set.
	Swagger bool
}

// Services groups the service layer the handlers depend on.
type Services struct {
	Users       services.UserServicer
	Investments services.InvestmentServicer
	Savings     services.SavingsServicer
	Quotes      services.QuoteServicer
	Dashboard   services.DashboardServicer
	Audit       services.AuditServicer
}

// NewServices builds the database-backed service layer.
func NewServices(db *gorm.DB) Services {
	investments := services.NewInvestmentService(db)
	savings := services.NewSavingsService(db, services.NewSavingsReader(db))
	return Services{
		Users:       services.NewUserService(db),
		Investments: investments,
		Savings:     savings,
		Quotes:      services.NewQuoteService(db),
		Dashboard:   services.NewDashboardService(investments, savings),
		Audit:       services.NewAuditService(db),
	}
}

// NewRouter returns the gin engine serving /api/health and /api/v1.
func NewRouter(gate *session.Gate, svc Services, opts Options) *gin.Engine {
	authHandler := handlers.NewAuthHandler(gate, svc.Users, svc.Audit, opts.Auth)
	userHandler := handlers.NewUserHandler(svc.Users)
	investmentHandler := handlers.NewInvestmentHandler(svc.Investments, svc.Audit)
	savingsHandler := handlers.NewSavingsHandler(svc.Savings, svc.Audit)
	quoteHandler := handlers.NewQuoteHandler(svc.Quotes)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.CORSOrigin))
	router.NoRoute(middleware.NotFound())

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(opts.Auth.Secret))

	protected.GET("/session", authHandler.GetSession)
	protected.GET("/users", userHandler.ListUsers)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	investments := protected.Group("/investments")
	investments.GET("", investmentHandler.ListInvestments)
	investments.POST("", investmentHandler.AddInvestment)
	investments.GET("/stats", investmentHandler.GetStats)
	investments.GET("/timeline", investmentHandler.GetTimeline)
	investments.GET("/:id", investmentHandler.GetInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	savings := protected.Group("/savings")
	savings.GET("/monthly", savingsHandler.GetMonthly)
	savings.PUT("/monthly", savingsHandler.UpsertMonthly)
	savings.GET("/yearly", savingsHandler.GetYearly)
	savings.GET("/comparison", savingsHandler.GetComparison)

	quotes := protected.Group("/quotes")
	quotes.GET("/today", quoteHandler.GetToday)
	quotes.POST("/today/like", quoteHandler.Like)

	return router
}
