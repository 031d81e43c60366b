package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Xangel0s/CalidaLanding/internal/domain"
	"github.com/Xangel0s/CalidaLanding/internal/domain/entity"
)

// Criteria es el conjunto tipado de filtros reconocidos para un listado.
// Se construye una sola vez a partir de los parámetros crudos de la petición
// (ParseCriteria) para que el evaluador nunca manipule strings sin validar.
type Criteria struct {
	Categoria  string           // igualdad exacta sin distinguir mayúsculas; vacío = sin restricción
	Brand      string           // igualdad exacta sin distinguir mayúsculas; vacío = sin restricción
	MinPrice   *decimal.Decimal // cota inferior inclusiva sobre price_online
	MaxPrice   *decimal.Decimal // cota superior inclusiva sobre price_online
	Destacado  bool             // true = solo productos destacados
	MasVendido bool             // true = solo productos más vendidos
	Visible    *bool            // tri-estado: nil = sin restricción, si no igualdad exacta
}

// ParseCriteria convierte los parámetros crudos de la petición en Criteria.
// Las claves no reconocidas se ignoran; un valor no numérico en min_price o
// max_price es un error del cliente (domain.ErrInvalidPriceFilter).
func ParseCriteria(raw map[string]string) (Criteria, error) {
	var c Criteria

	c.Categoria = raw["categoria"]
	c.Brand = raw["brand"]

	if v := raw["min_price"]; v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Criteria{}, fmt.Errorf("%w: min_price=%q", domain.ErrInvalidPriceFilter, v)
		}
		c.MinPrice = &d
	}
	if v := raw["max_price"]; v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Criteria{}, fmt.Errorf("%w: max_price=%q", domain.ErrInvalidPriceFilter, v)
		}
		c.MaxPrice = &d
	}

	// Para destacado y mas_vendido cualquier valor no vacío activa el filtro.
	c.Destacado = raw["destacado"] != ""
	c.MasVendido = raw["mas_vendido"] != ""

	// visible distingue ausencia de presencia: presente compara igualdad
	// exacta contra el campo del producto (cualquier valor distinto de
	// "true" cuenta como false).
	if v := raw["visible"]; v != "" {
		b := strings.EqualFold(v, "true")
		c.Visible = &b
	}

	return c, nil
}

// IsZero indica si no hay ningún filtro activo.
func (c Criteria) IsZero() bool {
	return c.Categoria == "" && c.Brand == "" &&
		c.MinPrice == nil && c.MaxPrice == nil &&
		!c.Destacado && !c.MasVendido && c.Visible == nil
}

// Predicate construye el test booleano que decide si un producto pasa todos
// los filtros activos (conjunción). Sin filtros activos todo producto pasa.
func (c Criteria) Predicate() func(entity.Product) bool {
	return func(p entity.Product) bool {
		if c.Categoria != "" && !strings.EqualFold(p.Categoria, c.Categoria) {
			return false
		}
		if c.Brand != "" && !strings.EqualFold(p.Brand, c.Brand) {
			return false
		}
		if c.MinPrice != nil && p.PriceForRange().LessThan(*c.MinPrice) {
			return false
		}
		if c.MaxPrice != nil && p.PriceForRange().GreaterThan(*c.MaxPrice) {
			return false
		}
		if c.Destacado && !p.Destacado {
			return false
		}
		if c.MasVendido && !p.MasVendido {
			return false
		}
		if c.Visible != nil && p.Visible != *c.Visible {
			return false
		}
		return true
	}
}
