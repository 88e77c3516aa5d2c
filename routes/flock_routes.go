package routes

import (
	"granja-app/config"
	"granja-app/controllers"
	"granja-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupFlockRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/flock", middleware.AuthMiddleware)
	flockController := controllers.NewFlockController(db)

	api.Post("/population", flockController.CreatePopulation)
	api.Get("/population", flockController.GetCurrentPopulation)
	api.Get("/population/history", flockController.GetPopulationHistory)
	api.Post("/consumption", flockController.CreateConsumption)
	api.Get("/consumption", flockController.GetConsumptionHistory)
}
