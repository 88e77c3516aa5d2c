package routes

import (
	"granja-app/config"
	"granja-app/controllers"
	"granja-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCustomerRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/customers", middleware.AuthMiddleware)
	customerController := controllers.NewCustomerController(db)

	api.Get("/", customerController.GetAllCustomers)
	api.Post("/", customerController.CreateCustomer)
	api.Get("/:id", customerController.GetCustomerByID)
	api.Put("/:id", customerController.UpdateCustomer)
	api.Delete("/:id", customerController.DeactivateCustomer)
	api.Get("/:id/orders", customerController.GetCustomerOrders)
}
