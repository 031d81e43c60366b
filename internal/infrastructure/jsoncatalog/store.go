// Package jsoncatalog implementa el almacén de catálogo sobre un documento
// JSON con forma {"items": [...]}. El documento se parsea una sola vez y el
// resultado se mantiene residente en memoria como snapshot inmutable.
package jsoncatalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/Xangel0s/CalidaLanding/internal/domain/entity"
	"github.com/Xangel0s/CalidaLanding/pkg/logger"
)

// rawProduct es el espejo del documento fuente: los campos opcionales van
// como punteros para distinguir ausencia de valor cero, y se normalizan una
// sola vez en la carga.
type rawProduct struct {
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Brand       string           `json:"brand"`
	Categoria   string           `json:"categoria"`
	PriceOnline *decimal.Decimal `json:"price_online"`
	Visible     *bool            `json:"visible"`
	Destacado   *bool            `json:"destacado"`
	MasVendido  *bool            `json:"mas_vendido"`
	Image       string           `json:"image"`
}

type document struct {
	Items []rawProduct `json:"items"`
}

// Store mantiene el catálogo en memoria. El snapshot se publica con un
// puntero atómico: las lecturas concurrentes no necesitan bloqueo y una
// recarga cambia la colección completa de una vez.
type Store struct {
	path     string
	log      *logger.Logger
	snapshot atomic.Pointer[[]entity.Product]
}

// New carga el catálogo desde path. Si la lectura o el parseo fallan, el
// servicio sigue operativo con un catálogo vacío: la condición se registra
// pero no se propaga (disponibilidad sobre corrección).
func New(path string, log *logger.Logger) *Store {
	s := &Store{path: path, log: log}

	items, err := loadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).
			Msg("error cargando catálogo; se continúa con catálogo vacío")
		items = []entity.Product{}
	} else {
		log.Info().Int("productos", len(items)).Str("path", path).
			Msg("catálogo cargado")
	}
	s.snapshot.Store(&items)
	return s
}

// Products devuelve el snapshot vigente. El slice es compartido y de solo
// lectura; los llamadores no deben mutarlo.
func (s *Store) Products() []entity.Product {
	return *s.snapshot.Load()
}

// Reload vuelve a leer el documento fuente y publica el nuevo snapshot de
// forma atómica. A diferencia de la carga inicial, una recarga fallida sí
// devuelve el error (es una acción administrativa explícita) y conserva el
// snapshot anterior intacto.
func (s *Store) Reload() error {
	items, err := loadFile(s.path)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).
			Msg("recarga de catálogo fallida; se conserva el snapshot anterior")
		return err
	}
	s.snapshot.Store(&items)
	s.log.Info().Int("productos", len(items)).Msg("catálogo recargado")
	return nil
}

func loadFile(path string) ([]entity.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer catálogo: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsear catálogo: %w", err)
	}
	items := make([]entity.Product, 0, len(doc.Items))
	for _, r := range doc.Items {
		items = append(items, normalize(r))
	}
	return items, nil
}

// normalize resuelve los valores por defecto del documento: visible true,
// destacado y mas_vendido false, precio ausente marcado con HasPrice.
func normalize(r rawProduct) entity.Product {
	p := entity.Product{
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Brand:       r.Brand,
		Categoria:   r.Categoria,
		Image:       r.Image,
		Visible:     true,
	}
	if r.PriceOnline != nil {
		p.PriceOnline = *r.PriceOnline
		p.HasPrice = true
	}
	if r.Visible != nil {
		p.Visible = *r.Visible
	}
	if r.Destacado != nil {
		p.Destacado = *r.Destacado
	}
	if r.MasVendido != nil {
		p.MasVendido = *r.MasVendido
	}
	return p
}
