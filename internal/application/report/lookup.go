package report

import (
	"strings"

	"github.com/jhoicas/presupuesto-engine/internal/domain"
	"github.com/jhoicas/presupuesto-engine/internal/domain/entity"
)

// FindDocument localiza un documento por número dentro del conjunto ya
// traído por el colaborador de fetch. Match exacto case-insensitive; gana la
// primera coincidencia. Sin coincidencia devuelve domain.ErrDocumentNotFound,
// nunca un pánico.
func FindDocument(docs []entity.Document, docNumber string) (*entity.Document, error) {
	for i := range docs {
		if strings.EqualFold(docs[i].DocNumber, docNumber) {
			return &docs[i], nil
		}
	}
	return nil, domain.ErrDocumentNotFound
}
