package importer

import (
	"Cost-Calculator/domain"
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"testing"
)

type sheet struct {
	name string
	rows [][]interface{}
}

func buildWorkbook(t *testing.T, sheets ...sheet) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			row := row
			require.NoError(t, f.SetSheetRow(s.name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func fullWorkbook(t *testing.T) []byte {
	return buildWorkbook(t,
		sheet{name: "메뉴", rows: [][]interface{}{
			{"메뉴명", "카테고리", "사이즈", "판매가"},
			{"페퍼로니", "피자", "M", 18000},
			{"페퍼로니", "피자", "l", "22,000"},
			{"콜라", "음료", "P", 2000},
			{"없는사이즈", "피자", "XL", 1},
		}},
		sheet{name: "ingredients", rows: [][]interface{}{
			{"name", "totalQty", "buyPrice"},
			{"도우", 1000, "12,000"},
			{"", 1, 1},
			{"모짜렐라", 1000, 15000},
		}},
		sheet{name: "레시피", rows: [][]interface{}{
			{"menu", "size", "ingredient", "qty"},
			{"페퍼로니", "M", "도우", 200},
			{"페퍼로니", "M", "모짜렐라", 140},
			{"하와이안", "M", "도우", 200},
		}},
		sheet{name: "옵션설정", rows: [][]interface{}{
			{"옵션명", "그룹", "타입", "판매가", "원가", "최대수량", "활성"},
			{"치즈추가", "TOPPING", "check", 2000, 800, 1, true},
			{"갈릭소스", "SAUCE_QTY", "CHECK_QTY", 500, 150, nil, nil},
			{"단종엣지", "EDGE", "dropdown", 3000, 1200, 1, false},
			{"그룹없음", "", "check", 1, 1, 1, true},
		}},
	)
}

func TestParseWorkbook(t *testing.T) {
	res, err := ParseWorkbook(bytes.NewReader(fullWorkbook(t)), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"메뉴", "ingredients", "레시피", "옵션설정"}, res.Sheets)

	require.Len(t, res.Menus, 2)
	assert.Equal(t, "페퍼로니", res.Menus[0].Name)
	assert.Equal(t, domain.CategoryPizza, res.Menus[0].Category)
	assert.Equal(t, 18000.0, res.Menus[0].PriceM.Float())
	assert.Equal(t, 22000.0, res.Menus[0].PriceL.Float())
	assert.Equal(t, 2000.0, res.Menus[1].PriceP.Float())
	assert.NotEmpty(t, res.Menus[0].ID)

	require.Len(t, res.Ingredients, 2)
	assert.Equal(t, 12000.0, res.Ingredients[0].BuyPrice.Float())

	require.Len(t, res.Recipes, 2)
	assert.Equal(t, res.Menus[0].ID, res.Recipes[0].MenuID)
	assert.Equal(t, "모짜렐라", res.Recipes[1].IngredientName)

	require.Len(t, res.Options, 3)
	assert.True(t, *res.Options[0].Enabled)
	assert.Equal(t, "check_qty", res.Options[1].Type)
	assert.Equal(t, 4.0, res.Options[1].MaxQty.Float())
	assert.True(t, *res.Options[1].Enabled)
	assert.Equal(t, "check", res.Options[2].Type)
	assert.False(t, *res.Options[2].Enabled)
}

func TestParseWorkbookPositionalFallback(t *testing.T) {
	data := buildWorkbook(t,
		sheet{name: "Sheet1", rows: [][]interface{}{
			{"name", "size", "price"},
			{"불고기", "S", 14000},
		}},
		sheet{name: "Sheet2", rows: [][]interface{}{
			{"재료명", "총용량", "구매가"},
			{"불고기", 1000, 20000},
		}},
		sheet{name: "Sheet3", rows: [][]interface{}{
			{"note"},
			{"ignored"},
		}},
	)

	res, err := ParseWorkbook(bytes.NewReader(data), nil)
	require.NoError(t, err)
	require.Len(t, res.Menus, 1)
	assert.Equal(t, "", res.Menus[0].Category)
	require.Len(t, res.Ingredients, 1)
	assert.Equal(t, 20000.0, res.Ingredients[0].BuyPrice.Float())
	assert.Empty(t, res.Recipes)
	assert.Empty(t, res.Options)
}

func TestParseWorkbookResolvesRecipesAgainstExistingMenus(t *testing.T) {
	data := buildWorkbook(t,
		sheet{name: "Ingredients", rows: [][]interface{}{
			{"재료", "용량", "가격"},
			{"도우", 1000, 12000},
		}},
		sheet{name: "Recipes", rows: [][]interface{}{
			{"메뉴", "사이즈", "재료", "수량"},
			{"페퍼로니", "M", "도우", 210},
		}},
	)
	existing := []domain.Menu{{ID: "7b0e5c1e-7a57-4a65-9d5c-2c1f0f3c9d11", Name: "페퍼로니"}}

	res, err := ParseWorkbook(bytes.NewReader(data), existing)
	require.NoError(t, err)
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, existing[0].ID, res.Recipes[0].MenuID)
}

func TestParseWorkbookWithoutData(t *testing.T) {
	data := buildWorkbook(t,
		sheet{name: "요약", rows: [][]interface{}{{"메모"}, {"hello"}}},
	)

	_, err := ParseWorkbook(bytes.NewReader(data), nil)

	var formatErr *domain.ImportFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, []string{"요약"}, formatErr.Found)
	assert.Equal(t, domain.ExpectedSheets, formatErr.Expected)
	assert.Contains(t, err.Error(), "요약")
}

func TestParseWorkbookRejectsGarbage(t *testing.T) {
	_, err := ParseWorkbook(bytes.NewReader([]byte("menu,size\n")), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidWorkbook)
}

func TestMatchSheetIgnoresCaseAndSpaces(t *testing.T) {
	sheets := []string{"Sheet1", "menu s", "INGREDIENTS"}
	assert.Equal(t, "menu s", findSheet(sheets, menuSheet.aliases))
	assert.Equal(t, "INGREDIENTS", findSheet(sheets, ingredientSheet.aliases))
	assert.Equal(t, "", findSheet(sheets, optionSheet.aliases))
}
