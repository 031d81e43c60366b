package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Xangel0s/CalidaLanding/internal/application/dto"
	"github.com/Xangel0s/CalidaLanding/internal/application/usecase"
	"github.com/Xangel0s/CalidaLanding/internal/domain"
	"github.com/Xangel0s/CalidaLanding/internal/domain/catalog"
	"github.com/Xangel0s/CalidaLanding/pkg/logger"
)

// filterKeys claves de filtro reconocidas en /api/products; cualquier otro
// parámetro se ignora sin error.
var filterKeys = []string{
	"categoria", "brand", "min_price", "max_price",
	"destacado", "mas_vendido", "visible",
}

// CatalogHandler maneja las peticiones HTTP del catálogo (solo lectura).
type CatalogHandler struct {
	uc  *usecase.CatalogUseCase
	log *logger.Logger
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar productos con filtros y paginación
// @Tags         products
// @Produce      json
// @Param        categoria    query  string  false  "Categoría (igualdad sin mayúsculas)"
// @Param        brand        query  string  false  "Marca (igualdad sin mayúsculas)"
// @Param        min_price    query  number  false  "Precio mínimo inclusivo"
// @Param        max_price    query  number  false  "Precio máximo inclusivo"
// @Param        destacado    query  string  false  "Solo destacados (cualquier valor)"
// @Param        mas_vendido  query  string  false  "Solo más vendidos (cualquier valor)"
// @Param        visible      query  bool    false  "Visibilidad exacta"
// @Param        page         query  int     false  "Página"              default(1)
// @Param        per_page     query  int     false  "Tamaño de página"    default(20)
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	raw := make(map[string]string)
	for _, k := range filterKeys {
		if v := c.Query(k); v != "" {
			raw[k] = v
		}
	}

	criteria, err := catalog.ParseCriteria(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	}

	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 20)
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	out, err := h.uc.List(criteria, raw, page, perPage)
	if err != nil {
		return h.internal(c, err, "listado de productos")
	}
	return c.JSON(dto.OK(out))
}

// Detail godoc
// @Summary      Obtener producto por slug
// @Tags         products
// @Produce      json
// @Param        slug  path  string  true  "Slug del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/products/{slug} [get]
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Producto no encontrado"))
		}
		return h.internal(c, err, "detalle de producto")
	}
	return c.JSON(dto.OK(out))
}

// Search godoc
// @Summary      Buscar productos por texto libre
// @Tags         products
// @Produce      json
// @Param        q  query  string  true  "Texto a buscar"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/search [get]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"))
	if err != nil {
		if errors.Is(err, domain.ErrMissingQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(`Query parameter "q" is required`))
		}
		return h.internal(c, err, "búsqueda de productos")
	}
	return c.JSON(dto.OK(out))
}

// Categories godoc
// @Summary      Listar categorías distintas ordenadas
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.uc.Categories()))
}

// Brands godoc
// @Summary      Listar marcas distintas ordenadas
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/brands [get]
func (h *CatalogHandler) Brands(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.uc.Brands()))
}

// Stats godoc
// @Summary      Estadísticas agregadas del catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/stats [get]
func (h *CatalogHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.uc.Stats()))
}

// internal registra el error con detalle y responde un fallo opaco.
func (h *CatalogHandler) internal(c *fiber.Ctx, err error, op string) error {
	h.log.Error().Err(err).Str("operacion", op).Str("path", c.Path()).
		Msg("error interno atendiendo la petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error interno"))
}
