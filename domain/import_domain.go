package domain

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
)

var (
	MessageSuccessImport = "workbook imported and saved successfully"
	MessageFailedImport  = "failed to import workbook"

	ErrInvalidWorkbook = errors.New("file is not an .xlsx workbook")
)

// ExpectedSheets lists the sheet names the importer looks for, in display form.
var ExpectedSheets = []string{"Menus(메뉴)", "Ingredients(재료)", "Recipes(레시피)", "Options(옵션)"}

type (
	ImportRequest struct {
		File *multipart.FileHeader `form:"file" validate:"required"`
	}

	ImportResult struct {
		Sheets      []string        `json:"sheets"`
		Ingredients []IngredientRow `json:"ingredients"`
		Menus       []MenuRow       `json:"menus"`
		Recipes     []RecipeRow     `json:"recipes"`
		Options     []OptionRow     `json:"options"`
	}

	ImportSummary struct {
		Sheets      []string `json:"sheets"`
		Ingredients int      `json:"ingredients"`
		Menus       int      `json:"menus"`
		Recipes     int      `json:"recipes"`
		Options     int      `json:"options"`
		ArchiveURL  string   `json:"archive_url,omitempty"`
	}
)

// ImportFormatError reports a workbook with no recognisable data.
type ImportFormatError struct {
	Found    []string
	Expected []string
}

func (e *ImportFormatError) Error() string {
	return fmt.Sprintf(
		"no importable rows found; sheets in workbook: [%s], expected sheets: [%s]",
		strings.Join(e.Found, ", "),
		strings.Join(e.Expected, ", "),
	)
}
