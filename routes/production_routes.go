package routes

import (
	"granja-app/config"
	"granja-app/controllers"
	"granja-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProductionRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/production", middleware.AuthMiddleware)
	productionController := controllers.NewProductionController(db)

	api.Post("/", productionController.CreateProduction)
	api.Get("/", productionController.GetProduction)
	api.Get("/totals", productionController.GetTotals)
}
