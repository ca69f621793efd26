package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// variables de entorno y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Report ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// ReportConfig parámetros del motor de reportes. Las capacidades de palet y
// la política de líneas sin resolver son decisiones de operación, no
// constantes del código.
type ReportConfig struct {
	UnresolvedPolicy string // "passthrough" conserva la línea con blancos; "omit" la descarta
	Pallet           PalletConfig
	Attributes       AttributeKeysConfig
}

// PalletConfig capacidades por palet para la estimación logística.
type PalletConfig struct {
	WeightCapacityKg float64 // según la flota se han usado valores entre 1300 y 1400
	VolumeCapacityM3 float64
}

// AttributeKeysConfig nombres de display con los que el catálogo etiqueta
// las propiedades físicas de cada producto.
type AttributeKeysConfig struct {
	NetWeight    string
	Width        string
	Height       string
	Depth        string
	CategoryLine string
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, REPORT_UNRESOLVED_POLICY, PALLET_WEIGHT_CAPACITY_KG, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	weightCapacity, err := getFloat(v, "PALLET_WEIGHT_CAPACITY_KG", 1400)
	if err != nil {
		return nil, err
	}
	volumeCapacity, err := getFloat(v, "PALLET_VOLUME_CAPACITY_M3", 2)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "presupuesto-engine"),
			LogLevel: getString(v, "APP_LOG_LEVEL", "info"),
		},
		Report: ReportConfig{
			UnresolvedPolicy: getString(v, "REPORT_UNRESOLVED_POLICY", "passthrough"),
			Pallet: PalletConfig{
				WeightCapacityKg: weightCapacity,
				VolumeCapacityM3: volumeCapacity,
			},
			Attributes: AttributeKeysConfig{
				NetWeight:    getString(v, "ATTR_NET_WEIGHT", "Peso Neto"),
				Width:        getString(v, "ATTR_WIDTH", "Ancho"),
				Height:       getString(v, "ATTR_HEIGHT", "Alto"),
				Depth:        getString(v, "ATTR_DEPTH", "Fondo"),
				CategoryLine: getString(v, "ATTR_CATEGORY_LINE", "Product Line"),
			},
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Report.UnresolvedPolicy {
	case "passthrough", "omit":
	default:
		return fmt.Errorf("REPORT_UNRESOLVED_POLICY inválida: %q (se espera passthrough u omit)", c.Report.UnresolvedPolicy)
	}
	if c.Report.Pallet.WeightCapacityKg <= 0 {
		return fmt.Errorf("PALLET_WEIGHT_CAPACITY_KG debe ser > 0, vino %v", c.Report.Pallet.WeightCapacityKg)
	}
	if c.Report.Pallet.VolumeCapacityM3 <= 0 {
		return fmt.Errorf("PALLET_VOLUME_CAPACITY_M3 debe ser > 0, vino %v", c.Report.Pallet.VolumeCapacityM3)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// getFloat un valor numérico ilegible es un error del operador y debe verse,
// no reemplazarse en silencio por el default.
func getFloat(v *viper.Viper, key string, def float64) (float64, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch v.Get(key).(type) {
	case string:
		f, err := strconv.ParseFloat(v.GetString(key), 64)
		if err != nil {
			return 0, fmt.Errorf("%s debe ser numérico, vino %q", key, v.GetString(key))
		}
		return f, nil
	default:
		return v.GetFloat64(key), nil
	}
}
