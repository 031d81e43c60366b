package dto

import "github.com/shopspring/decimal"

func init() {
	// price_online viaja como número JSON, no como string entrecomillado;
	// los consumidores del catálogo esperan esa forma.
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductResponse salida de un producto del catálogo. price_online se omite
// cuando el documento fuente no lo traía.
type ProductResponse struct {
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Brand       string           `json:"brand,omitempty"`
	Categoria   string           `json:"categoria,omitempty"`
	PriceOnline *decimal.Decimal `json:"price_online,omitempty"`
	Visible     bool             `json:"visible"`
	Destacado   bool             `json:"destacado"`
	MasVendido  bool             `json:"mas_vendido"`
	Image       string           `json:"image,omitempty"`
}

// ProductListData cuerpo de data en GET /api/products: página de productos,
// metadatos de paginación y eco de los filtros reconocidos.
type ProductListData struct {
	Products   []ProductResponse `json:"products"`
	Pagination Pagination        `json:"pagination"`
	Filters    map[string]string `json:"filters"`
}

// SearchData cuerpo de data en GET /api/search.
type SearchData struct {
	Query   string            `json:"query"`
	Results []ProductResponse `json:"results"`
	Count   int               `json:"count"`
}

// PriceRange rango de precios observado sobre los productos con precio.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// StatsData cuerpo de data en GET /api/stats: agregados sobre el catálogo
// completo sin filtrar.
type StatsData struct {
	TotalProducts   int        `json:"total_products"`
	VisibleProducts int        `json:"visible_products"`
	Destacados      int        `json:"destacados"`
	MasVendidos     int        `json:"mas_vendidos"`
	Categories      int        `json:"categories"`
	Brands          int        `json:"brands"`
	PriceRange      PriceRange `json:"price_range"`
}
