package routes

import (
	"granja-app/config"
	"granja-app/controllers"
	"granja-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStockRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/stock", middleware.AuthMiddleware)
	stockController := controllers.NewStockController(db)

	api.Get("/", stockController.GetStock)
	api.Post("/adjustments", stockController.CreateAdjustment)
	api.Get("/adjustments", stockController.GetAdjustments)
}
