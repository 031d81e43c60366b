package repository

import "github.com/Xangel0s/CalidaLanding/internal/domain/entity"

// CatalogReader define el puerto de lectura del catálogo (DIP).
// La colección devuelta es un snapshot inmutable: el motor de consultas la
// recorre sin bloqueos porque ningún camino de código la muta.
type CatalogReader interface {
	Products() []entity.Product
}

// CatalogReloader permite recargar el catálogo desde su documento fuente.
// La implementación debe cambiar el snapshot de forma atómica (todo o nada)
// para que los lectores concurrentes nunca vean un catálogo parcial.
type CatalogReloader interface {
	Reload() error
}
