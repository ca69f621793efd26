package logistics

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/presupuesto-engine/internal/domain/entity"
)

// Etiquetas de categoría reservadas por el motor.
const (
	// DefaultCategory se asigna cuando el producto no trae "Product Line"
	// o la trae en blanco.
	DefaultCategory = "Sin categoría"
	// UnlinkedCategory categoría sintética para líneas sin producto
	// resoluble (política passthrough).
	UnlinkedCategory = "Sin vincular"
)

// AttributeKeys nombres con los que el catálogo etiqueta las propiedades
// físicas. Son nombres de display del upstream, por eso viajan como
// configuración y no como constantes.
type AttributeKeys struct {
	NetWeight    string
	Width        string
	Height       string
	Depth        string
	CategoryLine string // atributo no numérico: aporta la etiqueta de categoría
}

// DefaultAttributeKeys nombres observados en los catálogos de Holded en español.
func DefaultAttributeKeys() AttributeKeys {
	return AttributeKeys{
		NetWeight:    "Peso Neto",
		Width:        "Ancho",
		Height:       "Alto",
		Depth:        "Fondo",
		CategoryLine: "Product Line",
	}
}

// ResolvedAttributes propiedades físicas tipadas extraídas de la lista de
// atributos de un producto. Campo nulo = el atributo no venía o no parseó.
type ResolvedAttributes struct {
	NetWeightKg decimal.NullDecimal
	WidthCm     decimal.NullDecimal
	HeightCm    decimal.NullDecimal
	DepthCm     decimal.NullDecimal
	Category    string // DefaultCategory cuando falta o viene en blanco
}

// ResolveAttributes recorre los pares nombre/valor y arma el registro tipado.
// El match es por nombre exacto contra el juego configurado. Los valores que
// no parsean como número se descartan en silencio: el upstream los tipa de
// forma inconsistente y eso no es un error. Ante nombres repetidos gana la
// última aparición.
func ResolveAttributes(attrs []entity.ProductAttribute, keys AttributeKeys) ResolvedAttributes {
	out := ResolvedAttributes{Category: DefaultCategory}
	for _, a := range attrs {
		if a.Name == keys.CategoryLine {
			if label := strings.TrimSpace(a.Value); label != "" {
				out.Category = label
			}
			continue
		}
		v, err := decimal.NewFromString(strings.TrimSpace(a.Value))
		if err != nil {
			continue
		}
		switch a.Name {
		case keys.NetWeight:
			out.NetWeightKg = known(v)
		case keys.Width:
			out.WidthCm = known(v)
		case keys.Height:
			out.HeightCm = known(v)
		case keys.Depth:
			out.DepthCm = known(v)
		}
	}
	return out
}

// known envuelve un decimal presente en su forma nullable.
func known(v decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: v, Valid: true}
}
