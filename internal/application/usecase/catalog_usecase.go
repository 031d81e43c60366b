package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Xangel0s/CalidaLanding/internal/application/dto"
	"github.com/Xangel0s/CalidaLanding/internal/domain"
	"github.com/Xangel0s/CalidaLanding/internal/domain/catalog"
	"github.com/Xangel0s/CalidaLanding/internal/domain/entity"
	"github.com/Xangel0s/CalidaLanding/internal/domain/repository"
)

// CatalogUseCase es el motor de consultas del catálogo: aplica filtros,
// búsqueda por texto, paginación y agregados sobre el snapshot en memoria.
// No tiene estado propio más allá del almacén de solo lectura inyectado;
// todas las operaciones son lecturas sin efectos y seguras en concurrencia.
type CatalogUseCase struct {
	catalog repository.CatalogReader
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalog repository.CatalogReader) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// List aplica los filtros al catálogo completo (en el orden de carga, sin
// reordenar) y devuelve la página pedida. Una página fuera de rango produce
// un slice vacío, no un error. pages = ceil(total/perPage), 0 si total es 0.
func (uc *CatalogUseCase) List(criteria catalog.Criteria, filters map[string]string, page, perPage int) (*dto.ProductListData, error) {
	if page < 1 || perPage < 1 {
		return nil, domain.ErrInvalidInput
	}

	pred := criteria.Predicate()
	filtered := make([]entity.Product, 0)
	for _, p := range uc.catalog.Products() {
		if pred(p) {
			filtered = append(filtered, p)
		}
	}

	total := len(filtered)
	pages := 0
	if total > 0 {
		pages = (total + perPage - 1) / perPage
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]dto.ProductResponse, 0, end-start)
	for _, p := range filtered[start:end] {
		items = append(items, toProductResponse(p))
	}

	if filters == nil {
		filters = map[string]string{}
	}
	return &dto.ProductListData{
		Products: items,
		Pagination: dto.Pagination{
			Page:    page,
			PerPage: perPage,
			Total:   total,
			Pages:   pages,
		},
		Filters: filters,
	}, nil
}

// GetBySlug busca un producto por su slug con un recorrido lineal; si dos
// productos compartieran slug (precondición de datos, no se valida) gana el
// primero en el orden de carga.
func (uc *CatalogUseCase) GetBySlug(slug string) (*dto.ProductResponse, error) {
	for _, p := range uc.catalog.Products() {
		if p.Slug == slug {
			out := toProductResponse(p)
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Search aplica la búsqueda por texto libre sobre el catálogo completo, en
// orden de carga y sin paginar. Una consulta vacía es un error del cliente.
func (uc *CatalogUseCase) Search(query string) (*dto.SearchData, error) {
	if query == "" {
		return nil, domain.ErrMissingQuery
	}

	match := catalog.SearchPredicate(query)
	results := make([]dto.ProductResponse, 0)
	for _, p := range uc.catalog.Products() {
		if match(p) {
			results = append(results, toProductResponse(p))
		}
	}
	return &dto.SearchData{
		Query:   query,
		Results: results,
		Count:   len(results),
	}, nil
}

// Stats calcula los agregados sobre el catálogo completo sin filtrar. El
// rango de precios considera solo productos con price_online presente y
// mayor que cero; sin ninguno, el rango queda en {0, 0}.
func (uc *CatalogUseCase) Stats() *dto.StatsData {
	products := uc.catalog.Products()

	stats := &dto.StatsData{TotalProducts: len(products)}
	categories := make(map[string]struct{})
	brands := make(map[string]struct{})

	var min, max decimal.Decimal
	havePrice := false

	for _, p := range products {
		if p.Visible {
			stats.VisibleProducts++
		}
		if p.Destacado {
			stats.Destacados++
		}
		if p.MasVendido {
			stats.MasVendidos++
		}
		if p.Categoria != "" {
			categories[p.Categoria] = struct{}{}
		}
		if p.Brand != "" {
			brands[p.Brand] = struct{}{}
		}
		if p.HasPrice && p.PriceOnline.IsPositive() {
			if !havePrice {
				min, max = p.PriceOnline, p.PriceOnline
				havePrice = true
				continue
			}
			if p.PriceOnline.LessThan(min) {
				min = p.PriceOnline
			}
			if p.PriceOnline.GreaterThan(max) {
				max = p.PriceOnline
			}
		}
	}

	stats.Categories = len(categories)
	stats.Brands = len(brands)
	stats.PriceRange = dto.PriceRange{Min: min, Max: max}
	return stats
}

// Categories devuelve las categorías distintas (sensible a mayúsculas) en
// orden lexicográfico ascendente, excluyendo valores vacíos.
func (uc *CatalogUseCase) Categories() []string {
	return distinctField(uc.catalog.Products(), func(p entity.Product) string { return p.Categoria })
}

// Brands devuelve las marcas distintas con la misma regla que Categories.
func (uc *CatalogUseCase) Brands() []string {
	return distinctField(uc.catalog.Products(), func(p entity.Product) string { return p.Brand })
}

func distinctField(products []entity.Product, field func(entity.Product) string) []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		if v := field(p); v != "" {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	out := dto.ProductResponse{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Brand:       p.Brand,
		Categoria:   p.Categoria,
		Visible:     p.Visible,
		Destacado:   p.Destacado,
		MasVendido:  p.MasVendido,
		Image:       p.Image,
	}
	if p.HasPrice {
		price := p.PriceOnline
		out.PriceOnline = &price
	}
	return out
}
