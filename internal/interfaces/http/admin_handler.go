package http

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"

	"github.com/Xangel0s/CalidaLanding/internal/application/dto"
	"github.com/Xangel0s/CalidaLanding/internal/domain/repository"
	"github.com/Xangel0s/CalidaLanding/pkg/logger"
)

//go:embed admin.html
var adminConsoleHTML string

// AdminHandler expone el panel de pruebas del catálogo y la recarga
// administrativa del snapshot.
type AdminHandler struct {
	reloader repository.CatalogReloader
	log      *logger.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(reloader repository.CatalogReloader, log *logger.Logger) *AdminHandler {
	return &AdminHandler{reloader: reloader, log: log}
}

// TestConsole sirve la consola HTML que ejercita los endpoints del catálogo.
// GET /admin/test
func (h *AdminHandler) TestConsole(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(adminConsoleHTML)
}

// Reload godoc
// @Summary      Recargar el catálogo desde el documento fuente
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /api/admin/reload [post]
func (h *AdminHandler) Reload(c *fiber.Ctx) error {
	if err := h.reloader.Reload(); err != nil {
		h.log.Error().Err(err).Msg("recarga del catálogo fallida")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("no se pudo recargar el catálogo"))
	}
	return c.JSON(dto.OK(fiber.Map{"reloaded": true}))
}
