package routes

import (
	"granja-app/config"
	"granja-app/controllers"
	"granja-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPriceRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/prices", middleware.AuthMiddleware)
	priceController := controllers.NewPriceController(db)

	api.Get("/active", priceController.GetActivePrice)
	api.Post("/", priceController.CreatePrice)
	api.Get("/history", priceController.GetHistory)
}
