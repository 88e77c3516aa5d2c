package routes

import (
	"granja-app/config"
	"granja-app/controllers"
	"granja-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWorkerRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/workers", middleware.AuthMiddleware)
	workerController := controllers.NewWorkerController(db)

	api.Get("/", workerController.GetAllWorkers)
	api.Post("/", workerController.CreateWorker)
	api.Post("/payments", workerController.CreatePayment)
	api.Get("/payments", workerController.GetPayments)
	api.Get("/:id", workerController.GetWorkerByID)
	api.Put("/:id", workerController.UpdateWorker)
	api.Get("/:id/payments", workerController.GetWorkerPayments)
}
