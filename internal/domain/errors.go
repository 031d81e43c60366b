package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Las condiciones esperadas (no encontrado, parámetro faltante) se modelan
// como sentinelas y se traducen a códigos HTTP en la capa de interfaces.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidPriceFilter = errors.New("filtro de precio inválido")
	ErrMissingQuery       = errors.New("parámetro de búsqueda requerido")
)
