package importer

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/pkg/numeric"
	"fmt"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"io"
	"strings"
)

// sheetSpec locates one sheet: by alias first, then by position when the
// sheet at that position carries a recognisable key column.
type sheetSpec struct {
	aliases  []string
	position int
	keyCols  []string
}

var (
	menuSheet = sheetSpec{
		aliases:  []string{"Menus", "메뉴", "Menu", "메뉴설정"},
		position: 1,
		keyCols:  []string{"menu", "메뉴", "메뉴명", "name", "이름"},
	}
	ingredientSheet = sheetSpec{
		aliases:  []string{"Ingredients", "재료", "단가", "재료단가", "Ingredient"},
		position: 2,
		keyCols:  []string{"name", "재료명", "이름", "재료", "Name"},
	}
	recipeSheet = sheetSpec{
		aliases:  []string{"Recipes", "레시피", "Recipe", "레시피설정"},
		position: 3,
		keyCols:  []string{"menu", "메뉴", "메뉴명"},
	}
	optionSheet = sheetSpec{
		aliases:  []string{"Options", "옵션", "Option", "옵션설정"},
		position: 4,
		keyCols:  []string{"name", "옵션명", "이름", "Name"},
	}
)

var (
	colMenuName   = []string{"menu", "메뉴", "메뉴명", "name", "이름"}
	colCategory   = []string{"category", "카테고리", "분류", "Category"}
	colSize       = []string{"size", "사이즈", "SIZE"}
	colPrice      = []string{"price", "판매가", "가격", "Price"}
	colIngName    = []string{"name", "재료명", "이름", "재료", "Name"}
	colTotalQty   = []string{"totalQty", "총용량", "total_qty", "용량", "TotalQty"}
	colBuyPrice   = []string{"buyPrice", "구매가", "buy_price", "가격", "BuyPrice"}
	colRecipeMenu = []string{"menu", "메뉴", "메뉴명"}
	colRecipeIng  = []string{"ingredient", "재료", "재료명"}
	colQty        = []string{"qty", "수량", "용량", "Qty"}
	colOptName    = []string{"name", "옵션명", "이름", "Name"}
	colGroupID    = []string{"groupId", "그룹", "group_id", "그룹ID", "GroupId"}
	colType       = []string{"type", "타입", "Type"}
	colPriceDelta = []string{"priceDelta", "판매가", "price_delta", "PriceDelta"}
	colCostDelta  = []string{"costDelta", "원가", "cost_delta", "CostDelta"}
	colMaxQty     = []string{"maxQty", "최대수량", "max_qty", "MaxQty"}
	colEnabled    = []string{"enabled", "활성", "사용", "Enabled"}
)

const defaultImportMaxQty = 4

type record map[string]string

// col returns the first non-blank value among keys.
func (r record) col(keys []string) (string, bool) {
	for _, k := range keys {
		if v := strings.TrimSpace(r[k]); v != "" {
			return v, true
		}
	}
	return "", false
}

func (r record) str(keys []string) string {
	v, _ := r.col(keys)
	return v
}

func (r record) num(keys []string, fallback float64) numeric.Number {
	v, ok := r.col(keys)
	if !ok {
		return numeric.Number(fallback)
	}
	return numeric.Number(numeric.ToNumber(v, fallback))
}

// ParseWorkbook reads menus, ingredients, recipes and options out of an xlsx
// workbook. Recipe rows name their menu; the name is resolved against the
// parsed menus, or against existing when the workbook carries no menus.
func ParseWorkbook(r io.Reader, existing []domain.Menu) (domain.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.ImportResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	res := domain.ImportResult{
		Sheets:      sheets,
		Ingredients: []domain.IngredientRow{},
		Menus:       []domain.MenuRow{},
		Recipes:     []domain.RecipeRow{},
		Options:     []domain.OptionRow{},
	}

	res.Menus = parseMenus(readSheet(f, sheets, menuSheet))
	res.Ingredients = parseIngredients(readSheet(f, sheets, ingredientSheet))

	menuIDs := make(map[string]string)
	lookup := res.Menus
	if len(lookup) == 0 {
		for _, m := range existing {
			lookup = append(lookup, domain.MenuRow{ID: m.ID, Name: m.Name})
		}
	}
	for _, m := range lookup {
		if _, ok := menuIDs[m.Name]; !ok {
			menuIDs[m.Name] = m.ID
		}
	}
	res.Recipes = parseRecipes(readSheet(f, sheets, recipeSheet), menuIDs)
	res.Options = parseOptions(readSheet(f, sheets, optionSheet))

	if len(res.Menus) == 0 && len(res.Ingredients) == 0 && len(res.Options) == 0 {
		return res, &domain.ImportFormatError{Found: sheets, Expected: domain.ExpectedSheets}
	}
	return res, nil
}

func findSheet(sheets []string, aliases []string) string {
	norm := func(s string) string {
		return strings.ToLower(strings.Join(strings.Fields(s), ""))
	}
	for _, alias := range aliases {
		for _, name := range sheets {
			if norm(name) == norm(alias) {
				return name
			}
		}
	}
	return ""
}

func readSheet(f *excelize.File, sheets []string, want sheetSpec) []record {
	if name := findSheet(sheets, want.aliases); name != "" {
		if records := sheetRecords(f, name); len(records) > 0 {
			return records
		}
	}

	if want.position > len(sheets) {
		return nil
	}
	records := sheetRecords(f, sheets[want.position-1])
	if len(records) == 0 {
		return nil
	}
	if _, ok := records[0].col(want.keyCols); !ok {
		return nil
	}
	return records
}

// sheetRecords maps each data row onto the header row.
func sheetRecords(f *excelize.File, sheet string) []record {
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(record, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(row) {
				continue
			}
			rec[h] = row[i]
		}
		records = append(records, rec)
	}
	return records
}

func parseSize(v string) (string, bool) {
	size := strings.ToUpper(strings.TrimSpace(v))
	switch domain.Size(size) {
	case domain.SizeS, domain.SizeM, domain.SizeL, domain.SizeP:
		return size, true
	}
	return "", false
}

// parseMenus merges one row per (menu, size) into one menu per name.
func parseMenus(records []record) []domain.MenuRow {
	menus := make([]domain.MenuRow, 0)
	index := make(map[string]int)
	for _, r := range records {
		name := r.str(colMenuName)
		size, ok := parseSize(r.str(colSize))
		if name == "" || !ok {
			continue
		}

		i, seen := index[name]
		if !seen {
			category := r.str(colCategory)
			if !isMenuCategory(category) {
				category = ""
			}
			menus = append(menus, domain.MenuRow{ID: uuid.NewString(), Name: name, Category: category})
			i = len(menus) - 1
			index[name] = i
		}

		price := r.num(colPrice, 0)
		switch domain.Size(size) {
		case domain.SizeS:
			menus[i].PriceS = price
		case domain.SizeM:
			menus[i].PriceM = price
		case domain.SizeL:
			menus[i].PriceL = price
		case domain.SizeP:
			menus[i].PriceP = price
		}
	}
	return menus
}

func isMenuCategory(c string) bool {
	for _, cat := range domain.Categories {
		if cat != domain.CategoryAll && cat == c {
			return true
		}
	}
	return false
}

func parseIngredients(records []record) []domain.IngredientRow {
	out := make([]domain.IngredientRow, 0, len(records))
	for _, r := range records {
		name := r.str(colIngName)
		if name == "" {
			continue
		}
		out = append(out, domain.IngredientRow{
			Name:     name,
			TotalQty: r.num(colTotalQty, 0),
			BuyPrice: r.num(colBuyPrice, 0),
		})
	}
	return out
}

func parseRecipes(records []record, menuIDs map[string]string) []domain.RecipeRow {
	out := make([]domain.RecipeRow, 0, len(records))
	for _, r := range records {
		menuName := r.str(colRecipeMenu)
		size, ok := parseSize(r.str(colSize))
		ingredient := r.str(colRecipeIng)
		if menuName == "" || !ok || ingredient == "" {
			continue
		}
		menuID, found := menuIDs[menuName]
		if !found {
			continue
		}
		out = append(out, domain.RecipeRow{
			MenuID:         menuID,
			Size:           size,
			IngredientName: ingredient,
			Qty:            r.num(colQty, 0),
		})
	}
	return out
}

func parseOptions(records []record) []domain.OptionRow {
	out := make([]domain.OptionRow, 0, len(records))
	for _, r := range records {
		name := r.str(colOptName)
		groupID := r.str(colGroupID)
		if name == "" || groupID == "" {
			continue
		}

		typ := domain.OptionType(strings.ToLower(r.str(colType)))
		switch typ {
		case domain.OptionTypeRadio, domain.OptionTypeCheck, domain.OptionTypeCheckQty:
		default:
			typ = domain.OptionTypeCheck
		}

		enabled := true
		if v, ok := r.col(colEnabled); ok {
			switch strings.ToLower(v) {
			case "false", "0":
				enabled = false
			}
		}

		out = append(out, domain.OptionRow{
			Name:       name,
			GroupID:    groupID,
			Type:       string(typ),
			PriceDelta: r.num(colPriceDelta, 0),
			CostDelta:  r.num(colCostDelta, 0),
			MaxQty:     r.num(colMaxQty, defaultImportMaxQty),
			Enabled:    &enabled,
		})
	}
	return out
}
