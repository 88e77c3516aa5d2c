package routes

import (
	"granja-app/config"
	"granja-app/controllers"
	"granja-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/reports", middleware.AuthMiddleware)
	reportController := controllers.NewReportController(db)

	api.Get("/balance", reportController.GetBalance)
	api.Get("/movements", reportController.GetMovements)
	api.Get("/movements/by-category", reportController.GetMovementsByCategory)
	api.Get("/movements/export", reportController.ExportMovements)
	api.Get("/production/daily", reportController.GetDailyProduction)
	api.Get("/sales/daily", reportController.GetDailySales)
	api.Get("/customers/top", reportController.GetTopCustomers)
	api.Get("/production-vs-sales", reportController.GetProductionVsSales)
	api.Get("/cost-per-egg", reportController.GetCostPerEgg)
	api.Get("/stock/statistics", reportController.GetStockStatistics)
}
