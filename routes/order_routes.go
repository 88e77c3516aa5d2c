package routes

import (
	"granja-app/config"
	"granja-app/controllers"
	"granja-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOrderRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/orders", middleware.AuthMiddleware)
	orderController := controllers.NewOrderController(db)

	api.Post("/", orderController.CreateOrder)
	api.Get("/", orderController.GetOrders)
	api.Get("/pending", orderController.GetPendingOrders)
	api.Get("/sales", orderController.GetSalesHistory)
	api.Get("/:id", orderController.GetOrderByID)
	api.Put("/:id", orderController.UpdateOrder)
	api.Put("/:id/cancel", orderController.CancelOrder)
	api.Post("/:id/dispatch", orderController.CreateDispatch)
}
