package catalog

import (
	"strings"

	"github.com/Xangel0s/CalidaLanding/internal/domain/entity"
)

// SearchPredicate construye el test de búsqueda por texto libre: un producto
// coincide si la consulta en minúsculas es subcadena de su título,
// descripción, marca o slug (en ese orden, con corte temprano). La
// comparación pliega mayúsculas pero no acentos: "cam" no coincide con
// "Cámara".
func SearchPredicate(query string) func(entity.Product) bool {
	q := strings.ToLower(query)
	return func(p entity.Product) bool {
		return strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Slug), q)
	}
}
