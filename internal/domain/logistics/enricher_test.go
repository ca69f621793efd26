package logistics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/presupuesto-engine/internal/domain/entity"
	"github.com/jhoicas/presupuesto-engine/internal/domain/logistics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures: el catálogo mínimo de los escenarios de referencia
// ──────────────────────────────────────────────────────────────────────────────

func catalogP1() []entity.CatalogEntry {
	return []entity.CatalogEntry{{
		ID:             "P1",
		Name:           "Caja plegable 60x40",
		SKU:            "S1",
		StockAvailable: dec("10"),
		Attributes: []entity.ProductAttribute{
			attr("Peso Neto", "2.5"),
			attr("Product Line", "Boxes"),
		},
	}}
}

func enrich(t *testing.T, item entity.LineItem, catalog []entity.CatalogEntry) *entity.ResolvedLine {
	t.Helper()
	line, ok := logistics.EnrichLine(item, logistics.BuildCatalogIndex(catalog), logistics.DefaultEnricherConfig())
	require.True(t, ok, "la línea no debía omitirse")
	require.NotNil(t, line)
	return line
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de referencia
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: línea con stock suficiente.
func TestEnrichLine_StockSuficiente(t *testing.T) {
	line := enrich(t, entity.LineItem{ProductRef: "P1", Units: ndec("4")}, catalogP1())

	assert.Equal(t, "S1", line.SKU)
	assert.Equal(t, "Caja plegable 60x40", line.ProductName)
	requireKnown(t, line.NetWeightKg, "2.5", "peso neto del atributo")
	requireKnown(t, line.TotalWeightKg, "10", "peso total = 2.5 × 4")
	assert.Equal(t, "Boxes", line.Category)
	assert.False(t, line.IsShortage, "stock 10 cubre 4 unidades")
	assert.False(t, line.ShortfallUnits.Valid, "sin faltante no hay cifra de faltante")
}

// Escenario B: las unidades exceden el stock.
func TestEnrichLine_StockInsuficiente(t *testing.T) {
	line := enrich(t, entity.LineItem{ProductRef: "P1", Units: ndec("20")}, catalogP1())

	assert.True(t, line.IsShortage)
	requireKnown(t, line.ShortfallUnits, "10", "faltante = |10 − 20|")
}

// Escenario C: las tres dimensiones resuelven -> volumen en m³.
func TestEnrichLine_VolumenConTresDimensiones(t *testing.T) {
	catalog := []entity.CatalogEntry{{
		ID:  "P2",
		SKU: "S2",
		Attributes: []entity.ProductAttribute{
			attr("Ancho", "10"),
			attr("Alto", "20"),
			attr("Fondo", "5"),
		},
	}}

	line := enrich(t, entity.LineItem{ProductRef: "P2", Units: ndec("1")}, catalog)

	// 10 × 20 × 5 cm³ = 1000 cm³ = 0.001 m³
	requireKnown(t, line.VolumeM3, "0.001", "volumen")
}

func TestEnrichLine_VolumenNuloSiFaltaUnaDimension(t *testing.T) {
	catalog := []entity.CatalogEntry{{
		ID: "P2",
		Attributes: []entity.ProductAttribute{
			attr("Ancho", "10"),
			attr("Alto", "20"),
			// sin Fondo: el motor no imputa dimensiones
		},
	}}

	line := enrich(t, entity.LineItem{ProductRef: "P2", Units: ndec("1")}, catalog)

	assert.False(t, line.VolumeM3.Valid, "AND estricto sobre las tres dimensiones")
}

// ──────────────────────────────────────────────────────────────────────────────
// Leyes de propagación de nulos
// ──────────────────────────────────────────────────────────────────────────────

func TestEnrichLine_PesoTotalNuloSiFaltanUnidades(t *testing.T) {
	line := enrich(t, entity.LineItem{ProductRef: "P1"}, catalogP1())
	assert.False(t, line.TotalWeightKg.Valid, "neto × nulo = nulo")
}

func TestEnrichLine_PesoTotalNuloSiFaltaPesoNeto(t *testing.T) {
	catalog := []entity.CatalogEntry{{ID: "P3", SKU: "S3", StockAvailable: dec("100")}}
	line := enrich(t, entity.LineItem{ProductRef: "P3", Units: ndec("4")}, catalog)
	assert.False(t, line.NetWeightKg.Valid)
	assert.False(t, line.TotalWeightKg.Valid, "nulo × unidades = nulo")
}

func TestEnrichLine_PesoTotalRedondeadoATresDecimales(t *testing.T) {
	catalog := []entity.CatalogEntry{{
		ID:         "P4",
		SKU:        "S4",
		Attributes: []entity.ProductAttribute{attr("Peso Neto", "0.3333")},
	}}
	line := enrich(t, entity.LineItem{ProductRef: "P4", Units: ndec("2")}, catalog)
	requireKnown(t, line.TotalWeightKg, "0.667", "0.6666 redondea a 3 decimales")
}

// ──────────────────────────────────────────────────────────────────────────────
// Precedencia de respaldos
// ──────────────────────────────────────────────────────────────────────────────

func TestEnrichLine_PesoNetoCaeAlDeLaLinea(t *testing.T) {
	catalog := []entity.CatalogEntry{{ID: "P5", SKU: "S5", Weight: ndec("9")}}
	item := entity.LineItem{ProductRef: "P5", Units: ndec("2"), Weight: ndec("1.5")}

	line := enrich(t, item, catalog)

	requireKnown(t, line.NetWeightKg, "1.5", "el peso de la línea precede al del catálogo")
	requireKnown(t, line.TotalWeightKg, "3", "total con el respaldo de la línea")
}

func TestEnrichLine_PesoNetoCaeAlDelCatalogo(t *testing.T) {
	catalog := []entity.CatalogEntry{{ID: "P5", SKU: "S5", Weight: ndec("9")}}
	line := enrich(t, entity.LineItem{ProductRef: "P5", Units: ndec("2")}, catalog)
	requireKnown(t, line.NetWeightKg, "9", "último recurso: peso a nivel de catálogo")
}

func TestEnrichLine_AtributoPrecedeALosRespaldos(t *testing.T) {
	catalog := []entity.CatalogEntry{{
		ID:         "P6",
		SKU:        "S6",
		Weight:     ndec("9"),
		Attributes: []entity.ProductAttribute{attr("Peso Neto", "2.5")},
	}}
	item := entity.LineItem{ProductRef: "P6", Units: ndec("1"), Weight: ndec("1.5")}

	line := enrich(t, item, catalog)

	requireKnown(t, line.NetWeightKg, "2.5", "el atributo manda")
}

func TestEnrichLine_DimensionesCaenALasDeLaLinea(t *testing.T) {
	catalog := []entity.CatalogEntry{{
		ID:         "P7",
		SKU:        "S7",
		Attributes: []entity.ProductAttribute{attr("Ancho", "10")},
	}}
	item := entity.LineItem{
		ProductRef: "P7",
		Units:      ndec("1"),
		HeightCm:   ndec("20"),
		DepthCm:    ndec("5"),
	}

	line := enrich(t, item, catalog)

	requireKnown(t, line.VolumeM3, "0.001", "cada dimensión cae por separado al campo de la línea")
}

func TestEnrichLine_IdentificadorSecundario(t *testing.T) {
	line := enrich(t, entity.LineItem{SecondaryID: "P1", Units: ndec("4")}, catalogP1())
	assert.Equal(t, "S1", line.SKU, "sin productId se resuelve por el id alternativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Faltantes: solo con SKU con autoridad
// ──────────────────────────────────────────────────────────────────────────────

func TestEnrichLine_SinSKUNuncaHayFaltante(t *testing.T) {
	catalog := []entity.CatalogEntry{{ID: "P8", StockAvailable: dec("0")}}
	line := enrich(t, entity.LineItem{ProductRef: "P8", Units: ndec("50")}, catalog)

	assert.False(t, line.IsShortage, "sin SKU no hay cifra de stock con autoridad")
	assert.False(t, line.ShortfallUnits.Valid)
}

func TestEnrichLine_UnidadesNulasNoMarcanFaltante(t *testing.T) {
	line := enrich(t, entity.LineItem{ProductRef: "P1"}, catalogP1())
	assert.False(t, line.IsShortage, "sin unidades no hay comparación posible")
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de líneas sin resolver
// ──────────────────────────────────────────────────────────────────────────────

func TestEnrichLine_PassthroughConservaLaLinea(t *testing.T) {
	cfg := logistics.DefaultEnricherConfig()
	item := entity.LineItem{ProductRef: "NO-EXISTE", Units: ndec("3"), Weight: ndec("2")}

	line, ok := logistics.EnrichLine(item, logistics.BuildCatalogIndex(catalogP1()), cfg)

	require.True(t, ok)
	assert.Empty(t, line.SKU)
	assert.Empty(t, line.ProductName)
	assert.Equal(t, logistics.UnlinkedCategory, line.Category)
	requireKnown(t, line.TotalWeightKg, "6", "el peso de la propia línea sigue contando")
	assert.False(t, line.IsShortage, "una línea sin vincular nunca marca faltante")
}

func TestEnrichLine_OmitDescartaLaLinea(t *testing.T) {
	cfg := logistics.DefaultEnricherConfig()
	cfg.UnresolvedPolicy = logistics.UnresolvedOmit

	line, ok := logistics.EnrichLine(entity.LineItem{ProductRef: "NO-EXISTE"}, logistics.BuildCatalogIndex(catalogP1()), cfg)

	assert.False(t, ok)
	assert.Nil(t, line)
}

func TestEnrichLine_SinReferenciaSigueLaMismaPolitica(t *testing.T) {
	index := logistics.BuildCatalogIndex(catalogP1())

	line, ok := logistics.EnrichLine(entity.LineItem{Units: ndec("1")}, index, logistics.DefaultEnricherConfig())
	require.True(t, ok, "passthrough conserva también las líneas sin referencia")
	assert.Equal(t, logistics.UnlinkedCategory, line.Category)

	cfg := logistics.DefaultEnricherConfig()
	cfg.UnresolvedPolicy = logistics.UnresolvedOmit
	_, ok = logistics.EnrichLine(entity.LineItem{Units: ndec("1")}, index, cfg)
	assert.False(t, ok, "omit las descarta")
}
