package catalog

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/entities"
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 500

type (
	CatalogRepository interface {
		ListIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		ListMenus(ctx context.Context) ([]*entities.Menu, error)
		ListRecipes(ctx context.Context) ([]*entities.Recipe, error)
		ListOptions(ctx context.Context) ([]*entities.Option, error)
		ListOptionMenuMaps(ctx context.Context) ([]*entities.OptionMenuMap, error)
		ListPlatforms(ctx context.Context) ([]*entities.Platform, error)

		ReplaceIngredients(ctx context.Context, ingredients []*entities.Ingredient) error
		ReplaceMenus(ctx context.Context, menus []*entities.Menu, recipes []*entities.Recipe) error
		ReplaceOptions(ctx context.Context, options []*entities.Option) error
		ReplaceOptionMenuMaps(ctx context.Context, mappings []*entities.OptionMenuMap) error
		UpdatePlatformFees(ctx context.Context, platforms []*entities.Platform) error
		ReplaceAll(ctx context.Context, ingredients []*entities.Ingredient, menus []*entities.Menu, recipes []*entities.Recipe, options []*entities.Option) error

		SeedPlatforms(ctx context.Context, platforms []*entities.Platform) error
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

const listOrder = "sort_order asc, created_at asc"

func (r *catalogRepository) ListIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *catalogRepository) ListMenus(ctx context.Context) ([]*entities.Menu, error) {
	var menus []*entities.Menu
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *catalogRepository) ListRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *catalogRepository) ListOptions(ctx context.Context) ([]*entities.Option, error) {
	var options []*entities.Option
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *catalogRepository) ListOptionMenuMaps(ctx context.Context) ([]*entities.OptionMenuMap, error) {
	var mappings []*entities.OptionMenuMap
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *catalogRepository) ListPlatforms(ctx context.Context) ([]*entities.Platform, error) {
	var platforms []*entities.Platform
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&platforms).Error; err != nil {
		return nil, err
	}
	return platforms, nil
}

func (r *catalogRepository) ReplaceIngredients(ctx context.Context, ingredients []*entities.Ingredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.Ingredient{}).Error; err != nil {
			return err
		}
		return insert(tx, ingredients)
	})
}

// ReplaceMenus swaps menus and recipes together and drops mappings of vanished menus.
func (r *catalogRepository) ReplaceMenus(ctx context.Context, menus []*entities.Menu, recipes []*entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.Recipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&entities.Menu{}).Error; err != nil {
			return err
		}
		if err := insert(tx, menus); err != nil {
			return err
		}
		if err := insert(tx, recipes); err != nil {
			return err
		}
		return pruneMappings(tx, "menu_id", menuIDs(menus))
	})
}

// ReplaceOptions swaps the option catalog and drops mappings of vanished options.
func (r *catalogRepository) ReplaceOptions(ctx context.Context, options []*entities.Option) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.Option{}).Error; err != nil {
			return err
		}
		if err := insert(tx, options); err != nil {
			return err
		}
		return pruneMappings(tx, "option_id", optionIDs(options))
	})
}

func (r *catalogRepository) ReplaceOptionMenuMaps(ctx context.Context, mappings []*entities.OptionMenuMap) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.OptionMenuMap{}).Error; err != nil {
			return err
		}
		return insert(tx, mappings)
	})
}

// UpdatePlatformFees only touches fee columns; every row must name an existing platform.
func (r *catalogRepository) UpdatePlatformFees(ctx context.Context, platforms []*entities.Platform) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range platforms {
			res := tx.Model(&entities.Platform{}).
				Where("id = ?", p.ID).
				Updates(map[string]interface{}{
					"platform_fee_rate": p.PlatformFeeRate,
					"card_fee_rate":     p.CardFeeRate,
					"delivery_fee":      p.DeliveryFee,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return domain.ErrPlatformNotFound
			}
		}
		return nil
	})
}

func (r *catalogRepository) ReplaceAll(
	ctx context.Context,
	ingredients []*entities.Ingredient,
	menus []*entities.Menu,
	recipes []*entities.Recipe,
	options []*entities.Option,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name string
			run  func() error
		}{
			{"delete recipes", func() error { return tx.Where("1 = 1").Delete(&entities.Recipe{}).Error }},
			{"delete options", func() error { return tx.Where("1 = 1").Delete(&entities.Option{}).Error }},
			{"delete ingredients", func() error { return tx.Where("1 = 1").Delete(&entities.Ingredient{}).Error }},
			{"delete menus", func() error { return tx.Where("1 = 1").Delete(&entities.Menu{}).Error }},
			{"insert ingredients", func() error { return insert(tx, ingredients) }},
			{"insert menus", func() error { return insert(tx, menus) }},
			{"insert recipes", func() error { return insert(tx, recipes) }},
			{"insert options", func() error { return insert(tx, options) }},
			{"prune menu mappings", func() error { return pruneMappings(tx, "menu_id", menuIDs(menus)) }},
			{"prune option mappings", func() error { return pruneMappings(tx, "option_id", optionIDs(options)) }},
		}

		for _, step := range steps {
			if err := step.run(); err != nil {
				return &domain.ReplaceStepError{Step: step.name, Err: err}
			}
		}
		return nil
	})
}

func (r *catalogRepository) SeedPlatforms(ctx context.Context, platforms []*entities.Platform) error {
	if len(platforms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&platforms).Error
}

func insert[T any](tx *gorm.DB, rows []*T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, batchSize).Error
}

func pruneMappings(tx *gorm.DB, column string, keep []uuid.UUID) error {
	q := tx.Model(&entities.OptionMenuMap{})
	if len(keep) == 0 {
		return q.Where("1 = 1").Delete(&entities.OptionMenuMap{}).Error
	}
	return q.Where(column+" NOT IN ?", keep).Delete(&entities.OptionMenuMap{}).Error
}

func menuIDs(menus []*entities.Menu) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(menus))
	for _, m := range menus {
		ids = append(ids, m.ID)
	}
	return ids
}

func optionIDs(options []*entities.Option) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(options))
	for _, o := range options {
		ids = append(ids, o.ID)
	}
	return ids
}
