package handlers

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/internal/api/presenters"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubCatalogService struct {
	catalog  domain.Catalog
	menus    domain.MenuListResponse
	lastMenu domain.MenuListRequest
	calls    []string
	err      error
}

func (s *stubCatalogService) GetCatalog(ctx context.Context) (domain.Catalog, error) {
	return s.catalog, s.err
}

func (s *stubCatalogService) ListMenus(ctx context.Context, req domain.MenuListRequest) (domain.MenuListResponse, error) {
	s.lastMenu = req
	return s.menus, s.err
}

func (s *stubCatalogService) SaveIngredients(ctx context.Context, req domain.SaveIngredientsRequest) error {
	s.calls = append(s.calls, domain.ActionSaveIngredients)
	return s.err
}

func (s *stubCatalogService) SaveMenus(ctx context.Context, req domain.SaveMenusRequest) error {
	s.calls = append(s.calls, domain.ActionSaveMenus)
	return s.err
}

func (s *stubCatalogService) SaveOptions(ctx context.Context, req domain.SaveOptionsRequest) error {
	s.calls = append(s.calls, domain.ActionSaveOptions)
	return s.err
}

func (s *stubCatalogService) SaveOptionMenuMap(ctx context.Context, req domain.SaveOptionMenuMapRequest) error {
	s.calls = append(s.calls, domain.ActionSaveOptionMenuMap)
	return s.err
}

func (s *stubCatalogService) SavePlatforms(ctx context.Context, req domain.SavePlatformsRequest) error {
	s.calls = append(s.calls, domain.ActionSavePlatforms)
	return s.err
}

func (s *stubCatalogService) ReplaceAll(ctx context.Context, req domain.ReplaceAllRequest) error {
	s.calls = append(s.calls, domain.ActionUpsertAll)
	return s.err
}

type stubMarginService struct {
	last domain.CalculateRequest
	err  error
}

func (s *stubMarginService) Calculate(ctx context.Context, req domain.CalculateRequest) (domain.CalculateResponse, error) {
	s.last = req
	return domain.CalculateResponse{Breakdown: domain.MarginBreakdown{Profit: 8700, Lines: []domain.OptionLine{}}}, s.err
}

func (s *stubMarginService) DefaultSelection(ctx context.Context, req domain.CalculateRequest) (domain.CalcState, error) {
	s.last = req
	return domain.CalcState{Radio: map[string]string{"DOUGH": "thin"}}, s.err
}

func (s *stubMarginService) Groups() []domain.OptionGroup {
	return domain.DefaultGroups()
}

type stubImportService struct {
	filename string
	err      error
}

func (s *stubImportService) Import(ctx context.Context, file *multipart.FileHeader) (domain.ImportSummary, error) {
	s.filename = file.Filename
	return domain.ImportSummary{Menus: 3}, s.err
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(catalogSvc *stubCatalogService, marginSvc *stubMarginService, importSvc *stubImportService) *fiber.App {
	v := validator.New()
	app := fiber.New()

	catalogH := NewCatalogHandler(catalogSvc, v)
	calcH := NewCalcHandler(marginSvc, v)
	importH := NewImportHandler(importSvc, v)

	app.Get("/api/v1/data", catalogH.GetCatalog)
	app.Post("/api/v1/data", catalogH.PostAction)
	app.Get("/api/v1/menus", catalogH.ListMenus)
	app.Get("/api/v1/option-groups", calcH.GetOptionGroups)
	app.Post("/api/v1/calculate", calcH.Calculate)
	app.Post("/api/v1/calculate/defaults", calcH.DefaultSelection)
	app.Post("/api/v1/import", importH.ImportWorkbook)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return decode(t, app, req)
}

func decode(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestGetCatalog(t *testing.T) {
	catalogSvc := &stubCatalogService{catalog: domain.Catalog{Menus: []domain.Menu{{ID: "m1", Name: "페퍼로니"}}}}
	app := newTestApp(catalogSvc, &stubMarginService{}, &stubImportService{})

	resp, env := doJSON(t, app, http.MethodGet, "/api/v1/data", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Status)

	var got domain.Catalog
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "페퍼로니", got.Menus[0].Name)
}

func TestGetCatalogStoreFailure(t *testing.T) {
	app := newTestApp(&stubCatalogService{err: errors.New("db down")}, &stubMarginService{}, &stubImportService{})

	resp, env := doJSON(t, app, http.MethodGet, "/api/v1/data", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.False(t, env.Status)
	assert.Equal(t, "db down", env.Error)
}

func TestPostActionDispatch(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]interface{}
		status  int
		message string
		calls   []string
	}{
		{
			name: "save ingredients",
			body: map[string]interface{}{
				"action":  "save_ingredients",
				"payload": map[string]interface{}{"ingredients": []map[string]interface{}{{"name": "도우", "total_qty": "1,000", "buy_price": 12000}}},
			},
			status:  fiber.StatusOK,
			message: domain.MessageSuccessSaveIngredients,
			calls:   []string{domain.ActionSaveIngredients},
		},
		{
			name:    "upsert all with empty payload",
			body:    map[string]interface{}{"action": "upsert_all"},
			status:  fiber.StatusOK,
			message: domain.MessageSuccessReplaceAll,
			calls:   []string{domain.ActionUpsertAll},
		},
		{
			name:    "unknown action",
			body:    map[string]interface{}{"action": "drop_everything", "payload": map[string]interface{}{}},
			status:  fiber.StatusBadRequest,
			message: domain.MessageUnknownAction,
		},
		{
			name:    "missing action",
			body:    map[string]interface{}{"payload": map[string]interface{}{}},
			status:  fiber.StatusBadRequest,
			message: domain.MessageFailedBodyRequest,
		},
		{
			name: "invalid payload rows never reach the service",
			body: map[string]interface{}{
				"action":  "save_platforms",
				"payload": map[string]interface{}{"platforms": []map[string]interface{}{{"id": "STORE", "card_fee_rate": 3}}},
			},
			status:  fiber.StatusBadRequest,
			message: domain.MessageFailedSavePlatforms,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalogSvc := &stubCatalogService{}
			app := newTestApp(catalogSvc, &stubMarginService{}, &stubImportService{})

			resp, env := doJSON(t, app, http.MethodPost, "/api/v1/data", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.message, env.Message)
			assert.Equal(t, tt.calls, catalogSvc.calls)
		})
	}
}

func TestPostActionMapsServiceErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrPlatformNotFound, fiber.StatusNotFound},
		{domain.ErrRecipeMenuNotFound, fiber.StatusBadRequest},
		{&domain.ReplaceStepError{Step: "insert menus", Err: errors.New("constraint")}, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		catalogSvc := &stubCatalogService{err: tt.err}
		app := newTestApp(catalogSvc, &stubMarginService{}, &stubImportService{})

		resp, env := doJSON(t, app, http.MethodPost, "/api/v1/data", map[string]interface{}{
			"action":  "save_platforms",
			"payload": map[string]interface{}{"platforms": []map[string]interface{}{{"id": "STORE"}}},
		})
		assert.Equal(t, tt.status, resp.StatusCode, tt.err.Error())
		assert.Equal(t, tt.err.Error(), env.Error)
	}
}

func TestListMenusPassesQuery(t *testing.T) {
	catalogSvc := &stubCatalogService{menus: domain.MenuListResponse{Total: 4, Matched: 1}}
	app := newTestApp(catalogSvc, &stubMarginService{}, &stubImportService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menus?category=%EC%9D%8C%EB%A3%8C&search=%EC%BD%9C", nil)
	resp, env := decode(t, app, req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.MenuListRequest{Category: "음료", Search: "콜"}, catalogSvc.lastMenu)
	assert.True(t, env.Status)
}

func TestCalculate(t *testing.T) {
	marginSvc := &stubMarginService{}
	app := newTestApp(&stubCatalogService{}, marginSvc, &stubImportService{})

	resp, env := doJSON(t, app, http.MethodPost, "/api/v1/calculate", map[string]interface{}{
		"menu_id":     "m1",
		"platformKey": "STORE",
		"size":        "M",
		"coupon":      "1,000",
		"checked":     map[string]bool{"cheese": true},
		"qty":         map[string]interface{}{"garlic": "2"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.MessageSuccessCalculate, env.Message)
	assert.Equal(t, 1000.0, marginSvc.last.Coupon.Float())
	assert.Equal(t, 2.0, marginSvc.last.Qty["garlic"].Float())

	var got domain.CalculateResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 8700.0, got.Breakdown.Profit)
}

func TestCalculateValidation(t *testing.T) {
	app := newTestApp(&stubCatalogService{}, &stubMarginService{}, &stubImportService{})

	resp, env := doJSON(t, app, http.MethodPost, "/api/v1/calculate", map[string]interface{}{"size": "XL"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, domain.MessageFailedCalculate, env.Message)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/calculate", map[string]interface{}{"coupon": -5})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDefaultSelectionAndGroups(t *testing.T) {
	app := newTestApp(&stubCatalogService{}, &stubMarginService{}, &stubImportService{})

	resp, env := doJSON(t, app, http.MethodPost, "/api/v1/calculate/defaults", map[string]interface{}{"menu_id": "m1"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var state domain.CalcState
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Equal(t, "thin", state.Radio["DOUGH"])

	resp, env = doJSON(t, app, http.MethodGet, "/api/v1/option-groups", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var groups []domain.OptionGroup
	require.NoError(t, json.Unmarshal(env.Data, &groups))
	assert.Equal(t, domain.DefaultGroups(), groups)
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestImportWorkbook(t *testing.T) {
	importSvc := &stubImportService{}
	app := newTestApp(&stubCatalogService{}, &stubMarginService{}, importSvc)

	resp, env := decode(t, app, multipartRequest(t, "file", "menu.xlsx", []byte("PK")))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "menu.xlsx", importSvc.filename)
	assert.Equal(t, domain.MessageSuccessImport, env.Message)
}

func TestImportWorkbookErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		app := newTestApp(&stubCatalogService{}, &stubMarginService{}, &stubImportService{})
		resp, env := decode(t, app, multipartRequest(t, "", "", nil))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, domain.MessageFailedBodyRequest, env.Message)
	})

	t.Run("format error", func(t *testing.T) {
		importSvc := &stubImportService{err: &domain.ImportFormatError{Found: []string{"Sheet1"}, Expected: domain.ExpectedSheets}}
		app := newTestApp(&stubCatalogService{}, &stubMarginService{}, importSvc)
		resp, env := decode(t, app, multipartRequest(t, "file", "menu.xlsx", []byte("PK")))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, env.Error, "Sheet1")
	})
}

func TestResponseEnvelopeOmitsEmptyFields(t *testing.T) {
	raw, err := json.Marshal(presenters.Response{Status: true, Message: "ok"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":true,"message":"ok"}`, string(raw))
}
