package handlers

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/internal/api/presenters"
	"Cost-Calculator/pkg/importer"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ImportHandler interface {
		ImportWorkbook(c *fiber.Ctx) error
	}

	importHandler struct {
		importService importer.ImportService
		validator     *validator.Validate
	}
)

func NewImportHandler(importService importer.ImportService, validator *validator.Validate) ImportHandler {
	return &importHandler{
		importService: importService,
		validator:     validator,
	}
}

func (h *importHandler) ImportWorkbook(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.ImportRequest{File: file}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImport, err)
	}

	res, err := h.importService.Import(c.Context(), req.File)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedImport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessImport)
}
