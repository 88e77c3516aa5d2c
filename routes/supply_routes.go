package routes

import (
	"granja-app/config"
	"granja-app/controllers"
	"granja-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSupplyRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/supplies", middleware.AuthMiddleware)
	supplyController := controllers.NewSupplyController(db)

	api.Post("/", supplyController.CreatePurchase)
	api.Get("/", supplyController.GetPurchases)
	api.Get("/by-category", supplyController.GetPurchasesByCategory)
	api.Get("/stock", supplyController.GetStockList)
	api.Get("/stock/low", supplyController.GetLowStock)
	api.Put("/stock/:id/minimum", supplyController.SetMinQuantity)
	api.Post("/stock/:id/consumption", supplyController.CreateConsumption)
	api.Get("/movements", supplyController.GetMovements)
}
