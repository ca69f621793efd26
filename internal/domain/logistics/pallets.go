package logistics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/presupuesto-engine/internal/domain"
	"github.com/jhoicas/presupuesto-engine/internal/domain/entity"
)

// PalletConfig capacidades por palet. Viajan como configuración: el kilaje
// útil varía según la flota (se han usado valores entre 1300 y 1400 kg).
type PalletConfig struct {
	WeightCapacityKg decimal.Decimal
	VolumeCapacityM3 decimal.Decimal
}

// DefaultPalletConfig 1400 kg y 2 m³ por palet.
func DefaultPalletConfig() PalletConfig {
	return PalletConfig{
		WeightCapacityKg: decimal.NewFromInt(1400),
		VolumeCapacityM3: decimal.NewFromInt(2),
	}
}

// Validate ambas capacidades deben ser positivas.
func (c PalletConfig) Validate() error {
	if !c.WeightCapacityKg.IsPositive() {
		return fmt.Errorf("%w: capacidad de peso por palet debe ser > 0", domain.ErrInvalidConfig)
	}
	if !c.VolumeCapacityM3.IsPositive() {
		return fmt.Errorf("%w: capacidad de volumen por palet debe ser > 0", domain.ErrInvalidConfig)
	}
	return nil
}

// EstimatePallets deriva la estimación de palets de los totales generales.
// Los totales nulos cuentan como cero para los ratios, pero un documento con
// al menos una línea resuelta siempre requiere 1 palet como mínimo: el piso
// lo garantiza esta función, el corte por reporte vacío ocurre antes, en el
// caso de uso.
func EstimatePallets(grand entity.Subtotal, cfg PalletConfig) entity.PalletSummary {
	weight := orZero(grand.TotalWeightKg)
	volume := orZero(grand.VolumeM3)

	byWeight := weight.Div(cfg.WeightCapacityKg)
	byVolume := volume.Div(cfg.VolumeCapacityM3)

	needed := decimal.Max(byWeight, byVolume).Ceil().IntPart()
	if needed < 1 {
		needed = 1
	}

	return entity.PalletSummary{
		TotalUnits:      grand.Units,
		TotalWeightKg:   grand.TotalWeightKg,
		TotalVolumeM3:   grand.VolumeM3,
		PalletsByWeight: byWeight.Round(3),
		PalletsByVolume: byVolume.Round(3),
		PalletsNeeded:   needed,
	}
}

func orZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}
