package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xangel0s/CalidaLanding/internal/application/usecase"
	"github.com/Xangel0s/CalidaLanding/internal/domain/entity"
	apphttp "github.com/Xangel0s/CalidaLanding/internal/interfaces/http"
	"github.com/Xangel0s/CalidaLanding/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeCatalog sustituye el almacén JSON en los tests del boundary.
type fakeCatalog struct {
	items []entity.Product
}

func (f *fakeCatalog) Products() []entity.Product { return f.items }

// fakeReloader simula la recarga administrativa, con fallo opcional.
type fakeReloader struct {
	err    error
	called bool
}

func (f *fakeReloader) Reload() error {
	f.called = true
	return f.err
}

func producto(slug, categoria, brand string, precio float64) entity.Product {
	return entity.Product{
		Slug:        slug,
		Title:       "Producto " + slug,
		Categoria:   categoria,
		Brand:       brand,
		PriceOnline: decimal.NewFromFloat(precio),
		HasPrice:    true,
		Visible:     true,
	}
}

// buildTestApp construye una app Fiber con el router del catálogo sobre un
// catálogo fijo.
func buildTestApp(items []entity.Product, reloader *fakeReloader) *fiber.App {
	app := fiber.New()
	if reloader == nil {
		reloader = &fakeReloader{}
	}
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC: usecase.NewCatalogUseCase(&fakeCatalog{items: items}),
		Reloader:  reloader,
		Log:       logger.Nop(),
	})
	return app
}

// doGet lanza una petición GET y decodifica el sobre de respuesta.
func doGet(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func catalogoDePrueba() []entity.Product {
	a := producto("cocina-surge", "cocinas", "Surge", 899.9)
	a.Destacado = true
	b := producto("terma-rotoplas", "termas", "Rotoplas", 1249)
	c := producto("terma-bosch", "termas", "Bosch", 1599)
	return []entity.Product{a, b, c}
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/products
// ──────────────────────────────────────────────────────────────────────────────

func TestListProducts_SobreYPaginacion(t *testing.T) {
	app := buildTestApp(catalogoDePrueba(), nil)

	status, body := doGet(t, app, "/api/products")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	products := data["products"].([]any)
	assert.Len(t, products, 3)

	pagination := data["pagination"].(map[string]any)
	assert.EqualValues(t, 1, pagination["page"])
	assert.EqualValues(t, 20, pagination["per_page"], "per_page por defecto es 20")
	assert.EqualValues(t, 3, pagination["total"])
	assert.EqualValues(t, 1, pagination["pages"])
}

func TestListProducts_FiltroYEco(t *testing.T) {
	app := buildTestApp(catalogoDePrueba(), nil)

	status, body := doGet(t, app, "/api/products?categoria=termas&per_page=1&page=2")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]any)
	products := data["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "terma-bosch", products[0].(map[string]any)["slug"],
		"página 2 con per_page=1 sobre las 2 termas en orden de carga")

	filters := data["filters"].(map[string]any)
	assert.Equal(t, "termas", filters["categoria"], "los filtros reconocidos se devuelven como eco")

	pagination := data["pagination"].(map[string]any)
	assert.EqualValues(t, 2, pagination["total"])
	assert.EqualValues(t, 2, pagination["pages"])
}

func TestListProducts_PrecioMalformadoRetorna400(t *testing.T) {
	app := buildTestApp(catalogoDePrueba(), nil)

	status, body := doGet(t, app, "/api/products?min_price=abc")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "min_price",
		"el filtro numérico malformado no se ignora en silencio")
}

func TestListProducts_ParametrosDesconocidosSeIgnoran(t *testing.T) {
	app := buildTestApp(catalogoDePrueba(), nil)

	status, body := doGet(t, app, "/api/products?color=rojo")
	assert.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Len(t, data["products"].([]any), 3)
	assert.Empty(t, data["filters"].(map[string]any))
}

func TestListProducts_PrecioOmitidoEnProductoSinPrecio(t *testing.T) {
	sinPrecio := entity.Product{Slug: "kit", Title: "Kit", Visible: true}
	app := buildTestApp([]entity.Product{sinPrecio}, nil)

	_, body := doGet(t, app, "/api/products")
	p := body["data"].(map[string]any)["products"].([]any)[0].(map[string]any)
	_, present := p["price_online"]
	assert.False(t, present, "price_online ausente en el documento no aparece en la respuesta")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/products/:slug
// ──────────────────────────────────────────────────────────────────────────────

func TestDetail_Encontrado(t *testing.T) {
	app := buildTestApp(catalogoDePrueba(), nil)

	status, body := doGet(t, app, "/api/products/terma-rotoplas")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "terma-rotoplas", data["slug"])
	assert.EqualValues(t, 1249, data["price_online"])
}

func TestDetail_NoEncontradoRetorna404(t *testing.T) {
	app := buildTestApp(catalogoDePrueba(), nil)

	status, body := doGet(t, app, "/api/products/no-existe")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Producto no encontrado", body["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/search
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_SinQueryRetorna400(t *testing.T) {
	app := buildTestApp(catalogoDePrueba(), nil)

	status, body := doGet(t, app, "/api/search")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, `Query parameter "q" is required`, body["error"])
}

func TestSearch_DevuelveResultadosYConteo(t *testing.T) {
	app := buildTestApp(catalogoDePrueba(), nil)

	status, body := doGet(t, app, "/api/search?q=TERMA")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, "TERMA", data["query"])
	assert.EqualValues(t, 2, data["count"])
	assert.Len(t, data["results"].([]any), 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/categories, /api/brands, /api/stats
// ──────────────────────────────────────────────────────────────────────────────

func TestCategories_ListaOrdenada(t *testing.T) {
	app := buildTestApp(catalogoDePrueba(), nil)

	status, body := doGet(t, app, "/api/categories")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"cocinas", "termas"}, body["data"])
}

func TestBrands_ListaOrdenada(t *testing.T) {
	app := buildTestApp(catalogoDePrueba(), nil)

	_, body := doGet(t, app, "/api/brands")
	assert.Equal(t, []any{"Bosch", "Rotoplas", "Surge"}, body["data"])
}

func TestStats_EstructuraCompleta(t *testing.T) {
	app := buildTestApp(catalogoDePrueba(), nil)

	status, body := doGet(t, app, "/api/stats")
	assert.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]any)
	assert.EqualValues(t, 3, data["total_products"])
	assert.EqualValues(t, 3, data["visible_products"])
	assert.EqualValues(t, 1, data["destacados"])
	assert.EqualValues(t, 0, data["mas_vendidos"])
	assert.EqualValues(t, 2, data["categories"])
	assert.EqualValues(t, 3, data["brands"])

	priceRange := data["price_range"].(map[string]any)
	assert.EqualValues(t, 899.9, priceRange["min"])
	assert.EqualValues(t, 1599, priceRange["max"])
}

func TestStats_CatalogoVacio(t *testing.T) {
	app := buildTestApp(nil, nil)

	_, body := doGet(t, app, "/api/stats")
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 0, data["total_products"])
	priceRange := data["price_range"].(map[string]any)
	assert.EqualValues(t, 0, priceRange["min"])
	assert.EqualValues(t, 0, priceRange["max"])
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/admin/reload y consola de pruebas
// ──────────────────────────────────────────────────────────────────────────────

func TestReload_Exitoso(t *testing.T) {
	reloader := &fakeReloader{}
	app := buildTestApp(catalogoDePrueba(), reloader)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/reload", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, reloader.called)
}

func TestReload_FallidoRetorna500(t *testing.T) {
	reloader := &fakeReloader{err: errors.New("documento roto")}
	app := buildTestApp(catalogoDePrueba(), reloader)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/reload", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body["error"], "documento roto",
		"el detalle interno no se filtra al cliente")
}

func TestAdminConsole_SirveHTML(t *testing.T) {
	app := buildTestApp(catalogoDePrueba(), nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/test", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
