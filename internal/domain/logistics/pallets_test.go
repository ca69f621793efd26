package logistics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/presupuesto-engine/internal/domain"
	"github.com/jhoicas/presupuesto-engine/internal/domain/entity"
	"github.com/jhoicas/presupuesto-engine/internal/domain/logistics"
)

// Escenario D: 15 kg contra 1400 kg por palet.
func TestEstimatePallets_RatiosRedondeadosATres(t *testing.T) {
	grand := entity.Subtotal{TotalWeightKg: ndec("15")}

	got := logistics.EstimatePallets(grand, logistics.DefaultPalletConfig())

	requireEqualDec(t, "0.011", got.PalletsByWeight, "15/1400 redondeado a 3")
	requireEqualDec(t, "0", got.PalletsByVolume, "sin volumen el ratio es 0")
	assert.EqualValues(t, 1, got.PalletsNeeded, "piso de 1 palet")
}

func TestEstimatePallets_GanaElRatioMayor(t *testing.T) {
	grand := entity.Subtotal{
		TotalWeightKg: ndec("1400"), // exactamente 1 palet por peso
		VolumeM3:      ndec("6.2"),  // 3.1 palets por volumen
	}

	got := logistics.EstimatePallets(grand, logistics.DefaultPalletConfig())

	requireEqualDec(t, "1", got.PalletsByWeight, "ratio por peso")
	requireEqualDec(t, "3.1", got.PalletsByVolume, "ratio por volumen")
	assert.EqualValues(t, 4, got.PalletsNeeded, "techo del máximo: ceil(3.1)")
}

func TestEstimatePallets_TotalesNulosCuentanComoCero(t *testing.T) {
	got := logistics.EstimatePallets(entity.Subtotal{}, logistics.DefaultPalletConfig())

	requireEqualDec(t, "0", got.PalletsByWeight, "ratio por peso")
	requireEqualDec(t, "0", got.PalletsByVolume, "ratio por volumen")
	assert.EqualValues(t, 1, got.PalletsNeeded,
		"un documento con líneas pero sin pesos sigue necesitando 1 palet")
	assert.False(t, got.TotalWeightKg.Valid, "el resumen conserva la nulidad de los totales")
}

func TestEstimatePallets_CapacidadConfigurable(t *testing.T) {
	grand := entity.Subtotal{TotalWeightKg: ndec("2600")}
	cfg := logistics.PalletConfig{
		WeightCapacityKg: dec("1300"),
		VolumeCapacityM3: dec("2"),
	}

	got := logistics.EstimatePallets(grand, cfg)

	requireEqualDec(t, "2", got.PalletsByWeight, "2600/1300")
	assert.EqualValues(t, 2, got.PalletsNeeded)
}

func TestPalletConfig_Validate(t *testing.T) {
	require.NoError(t, logistics.DefaultPalletConfig().Validate())

	bad := logistics.PalletConfig{WeightCapacityKg: dec("0"), VolumeCapacityM3: dec("2")}
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
