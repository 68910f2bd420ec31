package handlers

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/internal/api/presenters"
	"Cost-Calculator/pkg/catalog"
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetCatalog(c *fiber.Ctx) error
		PostAction(c *fiber.Ctx) error
		ListMenus(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) GetCatalog(c *fiber.Ctx) error {
	res, err := h.catalogService.GetCatalog(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCatalog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}

func (h *catalogHandler) ListMenus(c *fiber.Ctx) error {
	req := new(domain.MenuListRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.catalogService.ListMenus(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenus)
}

type catalogAction struct {
	request     func() interface{}
	run         func(ctx context.Context, s catalog.CatalogService, req interface{}) error
	successText string
	failText    string
}

var catalogActions = map[string]catalogAction{
	domain.ActionUpsertAll: {
		request: func() interface{} { return new(domain.ReplaceAllRequest) },
		run: func(ctx context.Context, s catalog.CatalogService, req interface{}) error {
			return s.ReplaceAll(ctx, *req.(*domain.ReplaceAllRequest))
		},
		successText: domain.MessageSuccessReplaceAll,
		failText:    domain.MessageFailedReplaceAll,
	},
	domain.ActionSaveIngredients: {
		request: func() interface{} { return new(domain.SaveIngredientsRequest) },
		run: func(ctx context.Context, s catalog.CatalogService, req interface{}) error {
			return s.SaveIngredients(ctx, *req.(*domain.SaveIngredientsRequest))
		},
		successText: domain.MessageSuccessSaveIngredients,
		failText:    domain.MessageFailedSaveIngredients,
	},
	domain.ActionSaveMenus: {
		request: func() interface{} { return new(domain.SaveMenusRequest) },
		run: func(ctx context.Context, s catalog.CatalogService, req interface{}) error {
			return s.SaveMenus(ctx, *req.(*domain.SaveMenusRequest))
		},
		successText: domain.MessageSuccessSaveMenus,
		failText:    domain.MessageFailedSaveMenus,
	},
	domain.ActionSaveOptions: {
		request: func() interface{} { return new(domain.SaveOptionsRequest) },
		run: func(ctx context.Context, s catalog.CatalogService, req interface{}) error {
			return s.SaveOptions(ctx, *req.(*domain.SaveOptionsRequest))
		},
		successText: domain.MessageSuccessSaveOptions,
		failText:    domain.MessageFailedSaveOptions,
	},
	domain.ActionSaveOptionMenuMap: {
		request: func() interface{} { return new(domain.SaveOptionMenuMapRequest) },
		run: func(ctx context.Context, s catalog.CatalogService, req interface{}) error {
			return s.SaveOptionMenuMap(ctx, *req.(*domain.SaveOptionMenuMapRequest))
		},
		successText: domain.MessageSuccessSaveOptionMenuMap,
		failText:    domain.MessageFailedSaveOptionMenuMap,
	},
	domain.ActionSavePlatforms: {
		request: func() interface{} { return new(domain.SavePlatformsRequest) },
		run: func(ctx context.Context, s catalog.CatalogService, req interface{}) error {
			return s.SavePlatforms(ctx, *req.(*domain.SavePlatformsRequest))
		},
		successText: domain.MessageSuccessSavePlatforms,
		failText:    domain.MessageFailedSavePlatforms,
	},
}

// PostAction dispatches {action, payload} bodies to the matching bulk save.
func (h *catalogHandler) PostAction(c *fiber.Ctx) error {
	body := new(domain.ActionRequest)
	if err := c.BodyParser(body); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(body); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	action, ok := catalogActions[body.Action]
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageUnknownAction,
			fmt.Errorf("%w: %q", domain.ErrUnknownAction, body.Action))
	}

	req := action.request()
	if len(body.Payload) > 0 {
		if err := json.Unmarshal(body.Payload, req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, action.failText, err)
	}

	if err := action.run(c.Context(), h.catalogService, req); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), action.failText, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, action.successText)
}
