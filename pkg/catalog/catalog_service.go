package catalog

import (
	"Cost-Calculator/domain"
	"context"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
)

type (
	CatalogService interface {
		GetCatalog(ctx context.Context) (domain.Catalog, error)
		ListMenus(ctx context.Context, req domain.MenuListRequest) (domain.MenuListResponse, error)

		SaveIngredients(ctx context.Context, req domain.SaveIngredientsRequest) error
		SaveMenus(ctx context.Context, req domain.SaveMenusRequest) error
		SaveOptions(ctx context.Context, req domain.SaveOptionsRequest) error
		SaveOptionMenuMap(ctx context.Context, req domain.SaveOptionMenuMapRequest) error
		SavePlatforms(ctx context.Context, req domain.SavePlatformsRequest) error
		ReplaceAll(ctx context.Context, req domain.ReplaceAllRequest) error
	}

	catalogService struct {
		catalogRepository CatalogRepository
		validator         *validator.Validate
	}
)

func NewCatalogService(catalogRepository CatalogRepository, validator *validator.Validate) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		validator:         validator,
	}
}

func (s *catalogService) GetCatalog(ctx context.Context) (domain.Catalog, error) {
	ingredients, err := s.catalogRepository.ListIngredients(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	menus, err := s.catalogRepository.ListMenus(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	recipes, err := s.catalogRepository.ListRecipes(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	options, err := s.catalogRepository.ListOptions(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	platforms, err := s.catalogRepository.ListPlatforms(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	mappings, err := s.catalogRepository.ListOptionMenuMaps(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}

	return domain.Catalog{
		Ingredients:   toIngredients(ingredients),
		Menus:         toMenus(menus),
		Recipes:       toRecipes(recipes),
		Options:       toOptions(options),
		Platforms:     toPlatforms(platforms),
		OptionMenuMap: toMappings(mappings),
	}, nil
}

func (s *catalogService) ListMenus(ctx context.Context, req domain.MenuListRequest) (domain.MenuListResponse, error) {
	catalog, err := s.GetCatalog(ctx)
	if err != nil {
		return domain.MenuListResponse{}, err
	}
	return FilterMenus(catalog, req.Category, req.Search), nil
}

func (s *catalogService) SaveIngredients(ctx context.Context, req domain.SaveIngredientsRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}
	ingredients, err := ingredientEntities(req.Ingredients)
	if err != nil {
		return err
	}
	if err := s.catalogRepository.ReplaceIngredients(ctx, ingredients); err != nil {
		log.Errorf("replace ingredients: %v", err)
		return err
	}
	log.Infof("saved %d ingredients", len(ingredients))
	return nil
}

func (s *catalogService) SaveMenus(ctx context.Context, req domain.SaveMenusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}
	menus, err := menuEntities(req.Menus)
	if err != nil {
		return err
	}
	recipes, err := recipeEntities(req.Recipes, menus)
	if err != nil {
		return err
	}
	if err := s.catalogRepository.ReplaceMenus(ctx, menus, recipes); err != nil {
		log.Errorf("replace menus: %v", err)
		return err
	}
	log.Infof("saved %d menus with %d recipe lines", len(menus), len(recipes))
	return nil
}

func (s *catalogService) SaveOptions(ctx context.Context, req domain.SaveOptionsRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}
	options, err := optionEntities(req.Options)
	if err != nil {
		return err
	}
	if err := s.catalogRepository.ReplaceOptions(ctx, options); err != nil {
		log.Errorf("replace options: %v", err)
		return err
	}
	log.Infof("saved %d options", len(options))
	return nil
}

func (s *catalogService) SaveOptionMenuMap(ctx context.Context, req domain.SaveOptionMenuMapRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	options, err := s.catalogRepository.ListOptions(ctx)
	if err != nil {
		return err
	}
	menus, err := s.catalogRepository.ListMenus(ctx)
	if err != nil {
		return err
	}

	mappings, err := mappingEntities(req.Mappings, options, menus)
	if err != nil {
		return err
	}
	if err := s.catalogRepository.ReplaceOptionMenuMaps(ctx, mappings); err != nil {
		log.Errorf("replace option menu map: %v", err)
		return err
	}
	log.Infof("saved %d option menu mappings", len(mappings))
	return nil
}

func (s *catalogService) SavePlatforms(ctx context.Context, req domain.SavePlatformsRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}
	if err := s.catalogRepository.UpdatePlatformFees(ctx, platformEntities(req.Platforms)); err != nil {
		log.Errorf("update platform fees: %v", err)
		return err
	}
	return nil
}

func (s *catalogService) ReplaceAll(ctx context.Context, req domain.ReplaceAllRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	ingredients, err := ingredientEntities(req.Ingredients)
	if err != nil {
		return err
	}
	menus, err := menuEntities(req.Menus)
	if err != nil {
		return err
	}
	recipes, err := recipeEntities(req.Recipes, menus)
	if err != nil {
		return err
	}
	options, err := optionEntities(req.Options)
	if err != nil {
		return err
	}

	if err := s.catalogRepository.ReplaceAll(ctx, ingredients, menus, recipes, options); err != nil {
		log.Errorf("replace catalog: %v", err)
		return err
	}
	log.Infof(
		"replaced catalog: %d ingredients, %d menus, %d recipe lines, %d options",
		len(ingredients), len(menus), len(recipes), len(options),
	)
	return nil
}
