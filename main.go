package main

import (
	"fmt"
	"log"

	"granja-app/config"
	"granja-app/controllers/idgen"
	"granja-app/database"
	"granja-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	db, err := database.OpenConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupProductionRoutes(app, db)
	routes.SetupStockRoutes(app, db)
	routes.SetupFlockRoutes(app, db)
	routes.SetupPriceRoutes(app, db)
	routes.SetupCustomerRoutes(app, db)
	routes.SetupWorkerRoutes(app, db)
	routes.SetupOrderRoutes(app, db)
	routes.SetupSupplyRoutes(app, db)
	routes.SetupReportRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
