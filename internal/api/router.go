package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/financeflow/finance-api/internal/api/handler"
	"github.com/financeflow/finance-api/internal/api/middleware"
	"github.com/financeflow/finance-api/internal/core/ports"
	"github.com/financeflow/finance-api/internal/core/service"
	"github.com/financeflow/finance-api/internal/infrastructure/config"
	mongodb "github.com/financeflow/finance-api/internal/infrastructure/db/mongo"
	healthhandlers "github.com/financeflow/finance-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// db may be nil when the store was unreachable at startup; the repositories
// then stay nil and every store-backed route answers 503 while the process
// keeps serving health probes and logout.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(echoprometheus.NewMiddleware("financeflow"))
	e.Use(middleware.Sessions(middleware.NewStore(cfg.SecretKey, cfg.CookieSecure)))

	// --- Dependencies ---
	var users ports.UserRepository
	var invoices, transactions ports.RecordRepository
	if db != nil {
		users = mongodb.NewUserRepository(db)
		invoices = mongodb.NewRecordRepository(db, "invoices")
		transactions = mongodb.NewRecordRepository(db, "transactions")
	}

	authHandler := handler.NewAuthHandler(service.NewAuthService(users))
	adminHandler := handler.NewAdminHandler(service.NewAdminService(users))
	invoiceHandler := handler.NewRecordHandler(service.NewRecordService(invoices), "invoices", "Invoice")
	transactionHandler := handler.NewRecordHandler(service.NewRecordService(transactions), "transactions", "Transaction")

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, middleware.RequireLogin())

	// --- Admin routes ---
	admin := e.Group("/api/admin", middleware.RequireAdmin(users))
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/approve", adminHandler.Approve)
	admin.PUT("/users/:id/reject", adminHandler.Reject)
	admin.PUT("/users/:id/role", adminHandler.UpdateRole)
	admin.DELETE("/users/:id", adminHandler.Delete)

	// --- Record routes ---
	inv := e.Group("/api/invoices", middleware.RequireApproved(users))
	inv.GET("", invoiceHandler.List)
	inv.POST("", invoiceHandler.Create)
	inv.PUT("/:id", invoiceHandler.Update)
	inv.DELETE("/:id", invoiceHandler.Delete)

	tx := e.Group("/api/transactions", middleware.RequireApproved(users))
	tx.GET("", transactionHandler.List)
	tx.POST("", transactionHandler.Create)
	tx.PUT("/:id", transactionHandler.Update)
	tx.DELETE("/:id", transactionHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
