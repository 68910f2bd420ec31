package routes

import (
	"Cost-Calculator/internal/api/handlers"
	"Cost-Calculator/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	CatalogHandler handlers.CatalogHandler
	CalcHandler    handlers.CalcHandler
	ImportHandler  handlers.ImportHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Catalog()
	c.Calculator()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Catalog() {
	api := c.App.Group("/api/v1")
	// admin data routes
	{
		api.Get("/data", c.CatalogHandler.GetCatalog)
		api.Post("/data", c.CatalogHandler.PostAction)
		api.Get("/menus", c.CatalogHandler.ListMenus)
		api.Post("/import", c.ImportHandler.ImportWorkbook)
	}
}

func (c *Config) Calculator() {
	calc := c.App.Group("/api/v1")
	calc.Get("/option-groups", c.CalcHandler.GetOptionGroups)
	calc.Post("/calculate", c.CalcHandler.Calculate)
	calc.Post("/calculate/defaults", c.CalcHandler.DefaultSelection)
}
