// Package server assembles the HTTP stack: services over the injected
// storage handle, their handlers, middleware and the /api/v1 routes.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pocketledger/internal/handlers"
	"pocketledger/internal/middleware"
	"pocketledger/internal/services"
)

// NewRouter builds the gin engine serving the ledger stored in db.
func NewRouter(db *gorm.DB) *gin.Engine {
	// Initialize services
	walletService := services.NewWalletService(db)
	categoryService := services.NewCategoryService(db)
	bucketService := services.NewSavingsBucketService(db)
	transactionService := services.NewTransactionService(db)
	transferService := services.NewTransferService(db)
	balanceService := services.NewBalanceService(db)
	budgetService := services.NewBudgetService(db)

	// Initialize handlers
	walletHandler := handlers.NewWalletHandler(walletService, balanceService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, balanceService)
	bucketHandler := handlers.NewSavingsBucketHandler(bucketService, balanceService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, walletService, categoryService, bucketService)
	transferHandler := handlers.NewTransferHandler(transferService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, balanceService)
	reportHandler := handlers.NewReportHandler(balanceService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	wallets := v1.Group("/wallets")
	wallets.POST("", walletHandler.CreateWallet)
	wallets.GET("", walletHandler.GetWallets)
	wallets.GET("/:id", walletHandler.GetWalletByID)
	wallets.PUT("/:id", walletHandler.UpdateWallet)
	wallets.DELETE("/:id", walletHandler.DeleteWallet)
	wallets.GET("/:id/balance", walletHandler.GetWalletBalance)

	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)
	categories.GET("/:id/spent", categoryHandler.GetCategorySpent)

	buckets := v1.Group("/savings-buckets")
	buckets.POST("", bucketHandler.CreateSavingsBucket)
	buckets.GET("", bucketHandler.GetSavingsBuckets)
	buckets.GET("/:id", bucketHandler.GetSavingsBucketByID)
	buckets.PUT("/:id", bucketHandler.UpdateSavingsBucket)
	buckets.DELETE("/:id", bucketHandler.DeleteSavingsBucket)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/export.xlsx", transactionHandler.ExportTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PATCH("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	transfers := v1.Group("/transfers")
	transfers.POST("", transferHandler.CreateTransfer)
	transfers.GET("/:id", transferHandler.GetTransfer)
	transfers.DELETE("/:id", transferHandler.DeleteTransfer)

	budgets := v1.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.POST("", budgetHandler.SetBudget)
	budgets.POST("/copy", budgetHandler.CopyBudgets)
	budgets.GET("/:id", budgetHandler.GetBudgetByID)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	reports := v1.Group("/reports")
	reports.GET("/net-worth", reportHandler.GetNetWorth)
	reports.GET("/totals", reportHandler.GetTotals)
	reports.GET("/spending", reportHandler.GetSpending)
	reports.GET("/dashboard", reportHandler.GetDashboard)

	return router
}
