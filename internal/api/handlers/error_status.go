package handlers

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/internal/utils/storage"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps service errors onto HTTP status codes. Anything it does not
// recognise is treated as a storage failure.
func statusFor(err error) int {
	var (
		validationErrs validator.ValidationErrors
		formatErr      *domain.ImportFormatError
	)

	switch {
	case errors.As(err, &validationErrs),
		errors.As(err, &formatErr),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrDuplicateID),
		errors.Is(err, domain.ErrRecipeMenuNotFound),
		errors.Is(err, domain.ErrMappingOptionNotFound),
		errors.Is(err, domain.ErrMappingMenuNotFound),
		errors.Is(err, domain.ErrUnknownAction),
		errors.Is(err, domain.ErrInvalidWorkbook),
		errors.Is(err, storage.ErrFileTypeNotAllowed):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrPlatformNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
