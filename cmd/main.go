package main

import (
	"Cost-Calculator/cmd/config"
	migration "Cost-Calculator/cmd/database/migrate"
	"Cost-Calculator/internal/utils"
	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	log.Fatal(app.Listen(":" + utils.GetConfig("APP_PORT")))
}
