package handlers

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/internal/api/presenters"
	"Cost-Calculator/pkg/margin"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CalcHandler interface {
		Calculate(c *fiber.Ctx) error
		DefaultSelection(c *fiber.Ctx) error
		GetOptionGroups(c *fiber.Ctx) error
	}

	calcHandler struct {
		marginService margin.MarginService
		validator     *validator.Validate
	}
)

func NewCalcHandler(marginService margin.MarginService, validator *validator.Validate) CalcHandler {
	return &calcHandler{
		marginService: marginService,
		validator:     validator,
	}
}

func (h *calcHandler) Calculate(c *fiber.Ctx) error {
	req := new(domain.CalculateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculate, err)
	}

	res, err := h.marginService.Calculate(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCalculate, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCalculate)
}

func (h *calcHandler) DefaultSelection(c *fiber.Ctx) error {
	req := new(domain.CalculateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDefaultSelection, err)
	}

	res, err := h.marginService.DefaultSelection(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDefaultSelection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDefaultSelection)
}

func (h *calcHandler) GetOptionGroups(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.marginService.Groups(), fiber.StatusOK, domain.MessageSuccessGetOptionGroups)
}
