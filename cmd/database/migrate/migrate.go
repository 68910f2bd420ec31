package migration

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/entities"
	"Cost-Calculator/pkg/catalog"
	"context"
	"fmt"
	"gorm.io/gorm"
	"log"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []struct {
		name  string
		model interface{}
	}{
		{"ingredient", &entities.Ingredient{}},
		{"menu", &entities.Menu{}},
		{"recipe", &entities.Recipe{}},
		{"option", &entities.Option{}},
		{"option menu map", &entities.OptionMenuMap{}},
		{"platform", &entities.Platform{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Printf("Error migrating %s database: %v", m.name, err)
			return err
		}
	}

	err := catalog.NewCatalogRepository(db).SeedPlatforms(
		context.Background(),
		catalog.PlatformEntities(domain.DefaultPlatforms()),
	)
	if err != nil {
		log.Printf("Error seeding platforms: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
