package logistics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/presupuesto-engine/internal/domain/entity"
)

// Escalas de redondeo de las columnas de subtotal. Las unidades son
// conceptualmente enteras pero admiten fracciones en envíos parciales.
const (
	unitsScale     = 1
	weightScale    = 2
	volumeScale    = 5
	shortfallScale = 0
)

// GroupByCategory particiona las líneas resueltas en grupos de categoría y
// calcula el subtotal de cada grupo y el total general.
//
// Los grupos se crean en orden de primera aparición y nunca se reordenan.
// Dentro de cada grupo las líneas se ordenan por SKU ascendente (SKU vacío
// primero) con orden estable. El total general suma los subtotales ya
// redondeados, no las líneas crudas, con las mismas escalas por columna.
func GroupByCategory(lines []entity.ResolvedLine) ([]entity.CategoryGroup, entity.Subtotal) {
	var groups []entity.CategoryGroup
	byLabel := make(map[string]int)

	for _, line := range lines {
		idx, seen := byLabel[line.Category]
		if !seen {
			idx = len(groups)
			byLabel[line.Category] = idx
			groups = append(groups, entity.CategoryGroup{Label: line.Category})
		}
		groups[idx].Lines = append(groups[idx].Lines, line)
	}

	for i := range groups {
		g := &groups[i]
		sort.SliceStable(g.Lines, func(a, b int) bool {
			return g.Lines[a].SKU < g.Lines[b].SKU
		})
		g.Subtotal = roundedSubtotal(subtotalColumns(g.Lines))
	}

	grand := roundedSubtotal(grandTotalColumns(groups))
	return groups, grand
}

// columns acumula los aportes por columna antes de la suma null-aware.
type columns struct {
	units, weight, volume, shortfall []decimal.NullDecimal
}

func subtotalColumns(lines []entity.ResolvedLine) columns {
	var c columns
	for _, l := range lines {
		c.units = append(c.units, l.Units)
		c.weight = append(c.weight, l.TotalWeightKg)
		c.volume = append(c.volume, l.VolumeM3)
		c.shortfall = append(c.shortfall, l.ShortfallUnits)
	}
	return c
}

func grandTotalColumns(groups []entity.CategoryGroup) columns {
	var c columns
	for _, g := range groups {
		c.units = append(c.units, g.Subtotal.Units)
		c.weight = append(c.weight, g.Subtotal.TotalWeightKg)
		c.volume = append(c.volume, g.Subtotal.VolumeM3)
		c.shortfall = append(c.shortfall, g.Subtotal.ShortfallUnits)
	}
	return c
}

func roundedSubtotal(c columns) entity.Subtotal {
	return entity.Subtotal{
		Units:          RoundNull(SumNull(c.units...), unitsScale),
		TotalWeightKg:  RoundNull(SumNull(c.weight...), weightScale),
		VolumeM3:       RoundNull(SumNull(c.volume...), volumeScale),
		ShortfallUnits: RoundNull(SumNull(c.shortfall...), shortfallScale),
	}
}
