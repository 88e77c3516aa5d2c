package routes

import (
	"granja-app/config"
	"granja-app/controllers"
	"granja-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)

	apiAuth := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	apiAuth.Get("/logout", authController.Logout)
	apiAuth.Get("/isLoggedIn", authController.IsLoggedIn)
}
