package logistics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/presupuesto-engine/internal/domain/entity"
)

// UnresolvedPolicy qué hacer con una línea cuyo producto no se puede resolver
// contra el catálogo (sin referencia, o referencia ausente del catálogo).
type UnresolvedPolicy string

const (
	// UnresolvedPassthrough conserva la línea con SKU y nombre vacíos,
	// stock 0 y la categoría sintética UnlinkedCategory.
	UnresolvedPassthrough UnresolvedPolicy = "passthrough"
	// UnresolvedOmit descarta la línea.
	UnresolvedOmit UnresolvedPolicy = "omit"
)

// EnricherConfig parámetros del cruce línea-catálogo.
type EnricherConfig struct {
	UnresolvedPolicy UnresolvedPolicy
	Keys             AttributeKeys
}

// DefaultEnricherConfig política passthrough con los nombres de atributo de Holded.
func DefaultEnricherConfig() EnricherConfig {
	return EnricherConfig{
		UnresolvedPolicy: UnresolvedPassthrough,
		Keys:             DefaultAttributeKeys(),
	}
}

// CatalogIndex catálogo indexado por identificador de producto.
type CatalogIndex map[string]*entity.CatalogEntry

// BuildCatalogIndex indexa el catálogo. Entradas sin identificador se
// ignoran; ante identificadores repetidos gana la última entrada, igual que
// en el upstream.
func BuildCatalogIndex(catalog []entity.CatalogEntry) CatalogIndex {
	idx := make(CatalogIndex, len(catalog))
	for i := range catalog {
		if catalog[i].ID == "" {
			continue
		}
		idx[catalog[i].ID] = &catalog[i]
	}
	return idx
}

// EnrichLine cruza una línea del documento con el catálogo y produce cero o
// una línea resuelta. ok es false solo cuando la política omite la línea.
//
// Precedencia del peso neto: atributo del catálogo, luego peso de la línea,
// luego peso a nivel de catálogo. Cada dimensión cae del atributo al campo
// de la línea. El volumen exige las tres dimensiones; no se imputan valores.
func EnrichLine(item entity.LineItem, index CatalogIndex, cfg EnricherConfig) (line *entity.ResolvedLine, ok bool) {
	key := item.ProductRef
	if key == "" {
		key = item.SecondaryID
	}

	var prod *entity.CatalogEntry
	if key != "" {
		prod = index[key]
	}
	if prod == nil {
		if cfg.UnresolvedPolicy == UnresolvedOmit {
			return nil, false
		}
		// Sin entrada de catálogo no hay atributos: solo quedan los datos
		// de la propia línea. Sin SKU tampoco hay cifra de stock con
		// autoridad, así que nunca se marca faltante.
		unlinked := &entity.ResolvedLine{
			Units:         item.Units,
			NetWeightKg:   item.Weight,
			TotalWeightKg: totalWeight(item.Weight, item.Units),
			VolumeM3:      volumeM3(item.WidthCm, item.HeightCm, item.DepthCm),
			Category:      UnlinkedCategory,
		}
		return unlinked, true
	}

	attrs := ResolveAttributes(prod.Attributes, cfg.Keys)
	net := firstKnown(attrs.NetWeightKg, item.Weight, prod.Weight)

	line = &entity.ResolvedLine{
		ProductName:    prod.Name,
		SKU:            prod.SKU,
		Units:          item.Units,
		NetWeightKg:    net,
		TotalWeightKg:  totalWeight(net, item.Units),
		VolumeM3:       volumeM3(firstKnown(attrs.WidthCm, item.WidthCm), firstKnown(attrs.HeightCm, item.HeightCm), firstKnown(attrs.DepthCm, item.DepthCm)),
		StockAvailable: prod.StockAvailable,
		Category:       attrs.Category,
	}

	if prod.SKU != "" && item.Units.Valid && prod.StockAvailable.LessThan(item.Units.Decimal) {
		line.IsShortage = true
		line.ShortfallUnits = known(prod.StockAvailable.Sub(item.Units.Decimal).Abs())
	}
	return line, true
}

// totalWeight peso total de la línea: neto × unidades redondeado a 3
// decimales. Nulo si falta cualquiera de los dos operandos.
func totalWeight(net, units decimal.NullDecimal) decimal.NullDecimal {
	if !net.Valid || !units.Valid {
		return decimal.NullDecimal{}
	}
	return known(net.Decimal.Mul(units.Decimal).Round(3))
}

// volumeM3 volumen en m³ a partir de dimensiones en cm, redondeado a 5
// decimales. Exige las tres dimensiones (AND estricto).
func volumeM3(w, h, d decimal.NullDecimal) decimal.NullDecimal {
	if !w.Valid || !h.Valid || !d.Valid {
		return decimal.NullDecimal{}
	}
	cm3 := w.Decimal.Mul(h.Decimal).Mul(d.Decimal)
	return known(cm3.Div(cmCubicPerM3).Round(5))
}

var cmCubicPerM3 = decimal.NewFromInt(1_000_000)

// firstKnown devuelve el primer valor no nulo, respetando el orden de
// prioridad del caller.
func firstKnown(vals ...decimal.NullDecimal) decimal.NullDecimal {
	for _, v := range vals {
		if v.Valid {
			return v
		}
	}
	return decimal.NullDecimal{}
}
