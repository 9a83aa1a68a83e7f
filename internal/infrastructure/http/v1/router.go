// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	appctx "ferreo/internal/core/context"
	"ferreo/internal/core/numerator"
	"ferreo/internal/domain/auth"
	"ferreo/internal/domain/catalogs/customer"
	"ferreo/internal/domain/catalogs/product"
	"ferreo/internal/domain/catalogs/supplier"
	"ferreo/internal/domain/documents/invoice"
	"ferreo/internal/domain/documents/payment"
	"ferreo/internal/domain/documents/purchase"
	"ferreo/internal/domain/reports"
	"ferreo/internal/infrastructure/http/v1/handlers"
	"ferreo/internal/infrastructure/http/v1/middleware"
	"ferreo/internal/infrastructure/storage/postgres"
	"ferreo/internal/infrastructure/storage/postgres/auth_repo"
	"ferreo/internal/infrastructure/storage/postgres/catalog_repo"
	"ferreo/internal/infrastructure/storage/postgres/document_repo"
	"ferreo/internal/infrastructure/storage/postgres/register_repo"
	"ferreo/internal/infrastructure/storage/postgres/report_repo"
	"ferreo/pkg/logger"
)

// RouterConfig holds the router's shared dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (health checks).
	Pool *postgres.Pool

	// TxManager runs repository calls inside context transactions.
	TxManager *postgres.TxManager

	// Logger for request logging.
	Logger *logger.Logger

	// JWTValidator for token validation.
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints.
	AuthService *auth.Service

	// Numbers mints document numbers.
	Numbers numerator.Generator

	// Codes mints catalog codes.
	Codes numerator.CodeGenerator

	// Audit records document history. Optional.
	Audit *postgres.AuditService
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	apiV1 := router.Group("/api/v1")
	{
		registerAuthRoutes(apiV1, cfg)

		// Back-office endpoints: any authenticated staff role.
		backOffice := apiV1.Group("")
		backOffice.Use(middleware.Auth(cfg.JWTValidator))
		backOffice.Use(middleware.RequireRole(appctx.RoleAdmin, appctx.RoleOperator))

		registerCatalogRoutes(backOffice, cfg)
		registerDocumentRoutes(backOffice, cfg)
		registerStockRoutes(backOffice, cfg)
		registerReportRoutes(backOffice, cfg)

		registerPortalRoutes(apiV1, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	userRepo := auth_repo.NewUserRepo(cfg.TxManager)
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService, userRepo)

	authGroup := rg.Group("/auth")
	authGroup.POST("/login", authHandler.Login)

	protected := rg.Group("/auth")
	protected.Use(middleware.Auth(cfg.JWTValidator))
	protected.GET("/me", authHandler.Me)
	protected.POST("/change-password", authHandler.ChangePassword)

	adminOnly := protected.Group("/users")
	adminOnly.Use(middleware.RequireRole(appctx.RoleAdmin))
	adminOnly.GET("", authHandler.ListUsers)
	adminOnly.POST("", authHandler.CreateUser)
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	// --- CUSTOMERS ---
	{
		repo := catalog_repo.NewCustomerRepo(cfg.TxManager)
		service := customer.NewService(repo, cfg.Codes, cfg.TxManager)
		handler := handlers.NewCustomerHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/customers"), handler)
	}

	// --- SUPPLIERS ---
	{
		repo := catalog_repo.NewSupplierRepo(cfg.TxManager)
		service := supplier.NewService(repo, cfg.Codes, cfg.TxManager)
		handler := handlers.NewSupplierHandler(baseHandler, service)
		group := catalogs.Group("/suppliers")
		RegisterCatalogRoutes(group, handler)
		group.POST("/:id/access-code", middleware.RequireRole(appctx.RoleAdmin), handler.SetAccessCode)
	}

	// --- PRODUCTS ---
	{
		repo := catalog_repo.NewProductRepo(cfg.TxManager)
		service := product.NewService(repo, cfg.Codes, cfg.TxManager)
		handler := handlers.NewProductHandler(baseHandler, service)
		group := catalogs.Group("/products")
		RegisterCatalogRoutes(group, handler)
		group.GET("/barcode/:barcode", handler.GetByBarcode)
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docsGroup := rg.Group("/documents")
	baseHandler := handlers.NewBaseHandler()

	customerRepo := catalog_repo.NewCustomerRepo(cfg.TxManager)
	supplierRepo := catalog_repo.NewSupplierRepo(cfg.TxManager)
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	stockRepo := register_repo.NewStockRepo(cfg.TxManager)
	invoiceRepo := document_repo.NewInvoiceRepo(cfg.TxManager)

	// --- INVOICES ---
	{
		service := invoice.NewService(invoiceRepo, customerRepo, productRepo, stockRepo, cfg.Numbers, cfg.TxManager)
		handler := handlers.NewInvoiceHandler(baseHandler, service, cfg.Audit)

		group := docsGroup.Group("/invoices")
		group.GET("", handler.List)
		group.POST("", handler.Create)
		group.GET("/:id", handler.Get)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}

	// --- PAYMENTS ---
	{
		repo := document_repo.NewPaymentRepo(cfg.TxManager)
		service := payment.NewService(repo, invoiceRepo, customerRepo, cfg.Numbers, cfg.TxManager)
		handler := handlers.NewPaymentHandler(baseHandler, service, cfg.Audit)

		group := docsGroup.Group("/payments")
		group.GET("", handler.List)
		group.POST("", handler.Create)
		group.GET("/:id", handler.Get)
		group.GET("/:id/receipt", handler.Receipt)
		group.GET("/credit/:customerId", handler.CreditBalance)
	}

	// --- PURCHASE INVOICES ---
	{
		repo := document_repo.NewPurchaseRepo(cfg.TxManager)
		service := purchase.NewService(repo, supplierRepo, productRepo, stockRepo, cfg.Codes, cfg.TxManager)
		handler := handlers.NewPurchaseHandler(baseHandler, service, cfg.Audit)

		group := docsGroup.Group("/purchase-invoices")
		group.GET("", handler.List)
		group.POST("", handler.Create)
		group.GET("/:id", handler.Get)
		group.DELETE("/:id", middleware.RequireRole(appctx.RoleAdmin), handler.Delete)
	}
}

// registerStockRoutes registers the stock movement journal.
func registerStockRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()
	stockRepo := register_repo.NewStockRepo(cfg.TxManager)
	handler := handlers.NewStockHandler(baseHandler, stockRepo)

	rg.GET("/stock/movements/:productId", handler.Movements)
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()
	statementRepo := report_repo.NewStatementRepo(cfg.TxManager)
	customerRepo := catalog_repo.NewCustomerRepo(cfg.TxManager)
	service := reports.NewService(statementRepo, customerRepo)
	handler := handlers.NewReportsHandler(baseHandler, service)

	rg.GET("/reports/customer-statement/:customerId", handler.CustomerStatement)
}

// registerPortalRoutes registers the supplier self-service portal.
// Portal sessions carry the supplier role and see only their own data.
func registerPortalRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	portal := rg.Group("/portal")

	if cfg.AuthService != nil {
		userRepo := auth_repo.NewUserRepo(cfg.TxManager)
		authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService, userRepo)
		portal.POST("/login", authHandler.PortalLogin)
	}

	supplierRepo := catalog_repo.NewSupplierRepo(cfg.TxManager)
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	stockRepo := register_repo.NewStockRepo(cfg.TxManager)
	purchaseRepo := document_repo.NewPurchaseRepo(cfg.TxManager)
	service := purchase.NewService(purchaseRepo, supplierRepo, productRepo, stockRepo, cfg.Codes, cfg.TxManager)
	handler := handlers.NewPurchaseHandler(baseHandler, service, cfg.Audit)

	protected := portal.Group("")
	protected.Use(middleware.Auth(cfg.JWTValidator))
	protected.Use(middleware.RequireSupplier())
	protected.GET("/purchase-invoices", handler.ListForPortal)
}
