package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo Credicálidda.
// El catálogo se carga una sola vez al arranque y es de solo lectura
// durante la vida del proceso; los valores por defecto de los campos
// opcionales se resuelven en el momento de la carga, no en cada acceso.
type Product struct {
	Slug        string          // identificador único y estable (precondición de datos, no se valida unicidad)
	Title       string
	Description string
	Brand       string
	Categoria   string          // clasificación gruesa; se compara sin distinguir mayúsculas
	PriceOnline decimal.Decimal // precio de venta online; cero cuando HasPrice es false
	HasPrice    bool            // true si el documento fuente traía price_online
	Visible     bool            // por defecto true si el campo no viene en el documento
	Destacado   bool            // por defecto false
	MasVendido  bool            // por defecto false
	Image       string          // URL o ruta de imagen; el núcleo no la valida
}

// PriceForRange devuelve el precio a usar en comparaciones de rango:
// los productos sin precio comparan como 0.
func (p Product) PriceForRange() decimal.Decimal {
	if !p.HasPrice {
		return decimal.Zero
	}
	return p.PriceOnline
}
