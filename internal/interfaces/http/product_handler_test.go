package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakeryhub/bakeryhub-api/internal/application/factory"
	"github.com/bakeryhub/bakeryhub-api/internal/application/usecase"
	"github.com/bakeryhub/bakeryhub-api/internal/domain"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/entity"
	apphttp "github.com/bakeryhub/bakeryhub-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (solo los puertos que tocan estos handlers)
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	byID map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *memProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.ProductName == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) ListActive() ([]*entity.Product, error) {
	out := []*entity.Product{}
	for _, p := range r.byID {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

type memBatchRepo struct {
	byBatchNo map[string]*entity.Batch
}

func newMemBatchRepo() *memBatchRepo {
	return &memBatchRepo{byBatchNo: map[string]*entity.Batch{}}
}

func (r *memBatchRepo) Create(b *entity.Batch) error {
	if _, ok := r.byBatchNo[b.BatchNo]; ok {
		return domain.ErrDuplicate
	}
	cp := *b
	r.byBatchNo[b.BatchNo] = &cp
	return nil
}

func (r *memBatchRepo) GetByBatchNo(batchNo string) (*entity.Batch, error) {
	return r.byBatchNo[batchNo], nil
}

// buildHandlersApp monta los handlers de productos y lotes sin middleware de
// auth: aquí se prueba la validación de entrada, no la autorización.
func buildHandlersApp(products *memProductRepo) *fiber.App {
	app := fiber.New()
	productHandler := apphttp.NewProductHandler(usecase.NewProductUseCase(products))
	factoryHandler := apphttp.NewFactoryHandler(
		factory.NewBatchUseCase(newMemBatchRepo(), products),
		nil, // stats no se usa en estos tests
	)
	app.Get("/api/products", productHandler.List)
	app.Post("/api/products", productHandler.Create)
	app.Post("/api/factory/create-batch", factoryHandler.CreateBatch)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func validProductBody() map[string]any {
	return map[string]any{
		"product_name":     "Pan campesino",
		"description":      "Hogaza rústica",
		"category":         "Panes",
		"base_price":       420.00,
		"shelf_life_days":  4,
		"measurement_type": "PCS",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/products
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_Retorna201ConProducto(t *testing.T) {
	app := buildHandlersApp(newMemProductRepo())
	resp := postJSON(t, app, "/api/products", validProductBody())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
		Product struct {
			ID       string `json:"id"`
			IsActive bool   `json:"is_active"`
		} `json:"product"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Product created successfully", body.Message)
	assert.NotEmpty(t, body.Product.ID)
	assert.True(t, body.Product.IsActive)
}

func TestProductCreate_PrecioCero_Retorna400(t *testing.T) {
	app := buildHandlersApp(newMemProductRepo())
	body := validProductBody()
	body["base_price"] = 0
	resp := postJSON(t, app, "/api/products", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "base_price")
}

func TestProductCreate_ShelfLifeCero_Retorna400(t *testing.T) {
	app := buildHandlersApp(newMemProductRepo())
	body := validProductBody()
	body["shelf_life_days"] = 0
	resp := postJSON(t, app, "/api/products", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "shelf_life_days")
}

func TestProductCreate_UnidadInvalida_Retorna400(t *testing.T) {
	app := buildHandlersApp(newMemProductRepo())
	body := validProductBody()
	body["measurement_type"] = "DOZEN"
	resp := postJSON(t, app, "/api/products", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductCreate_NombreDuplicado_Retorna409(t *testing.T) {
	app := buildHandlersApp(newMemProductRepo())

	resp := postJSON(t, app, "/api/products", validProductBody())
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/products", validProductBody())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "DUPLICATE")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/products
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_DevuelveArregloJSON(t *testing.T) {
	app := buildHandlersApp(newMemProductRepo())

	resp := postJSON(t, app, "/api/products", validProductBody())
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer listResp.Body.Close()

	assert.Equal(t, http.StatusOK, listResp.StatusCode)

	var list []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Pan campesino", list[0]["product_name"])
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/factory/create-batch
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBatch_ProductoInexistente_Retorna404(t *testing.T) {
	app := buildHandlersApp(newMemProductRepo())

	resp := postJSON(t, app, "/api/factory/create-batch", map[string]any{
		"product_id":        "no-existe",
		"batch_no":          "B-001",
		"quantity_produced": 10,
		"manufactured_date": "2026-08-30",
		"expiry_date":       "2026-09-02",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "PRODUCT_NOT_FOUND")
}

func TestCreateBatch_CantidadCero_Retorna400(t *testing.T) {
	products := newMemProductRepo()
	app := buildHandlersApp(products)

	resp := postJSON(t, app, "/api/products", validProductBody())
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var productID string
	for id := range products.byID {
		productID = id
	}

	batchResp := postJSON(t, app, "/api/factory/create-batch", map[string]any{
		"product_id":        productID,
		"batch_no":          "B-001",
		"quantity_produced": 0,
		"manufactured_date": "2026-08-30",
		"expiry_date":       "2026-09-02",
	})
	defer batchResp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, batchResp.StatusCode)
	raw, _ := io.ReadAll(batchResp.Body)
	assert.Contains(t, string(raw), "quantity_produced")
}
