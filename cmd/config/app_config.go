package config

import (
	"Cost-Calculator/internal/api/handlers"
	"Cost-Calculator/internal/api/routes"
	"Cost-Calculator/internal/middleware"
	"Cost-Calculator/internal/utils"
	"Cost-Calculator/internal/utils/mailing"
	"Cost-Calculator/internal/utils/storage"
	"Cost-Calculator/pkg/catalog"
	"Cost-Calculator/pkg/importer"
	"Cost-Calculator/pkg/margin"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
	"os"
	"time"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         10 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Seoul",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	catalogRepository := catalog.NewCatalogRepository(db)

	// Service
	catalogService := catalog.NewCatalogService(catalogRepository, validator)
	marginService := margin.NewMarginService(catalogService, nil)
	importService := importer.NewImportService(catalogService, s3, importNotifier())

	// Handler
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	calcHandler := handlers.NewCalcHandler(marginService, validator)
	importHandler := handlers.NewImportHandler(importService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		CatalogHandler: catalogHandler,
		CalcHandler:    calcHandler,
		ImportHandler:  importHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

func importNotifier() importer.Notifier {
	to := utils.GetConfig("IMPORT_NOTIFY_EMAIL")
	if to == "" {
		return nil
	}
	return func(subject, body string) error {
		return mailing.SendMail(to, subject, body)
	}
}
