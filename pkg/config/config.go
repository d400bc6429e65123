package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	FX      FXConfig
	Invoice InvoiceConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// FXConfig proveedores de cotización USD→BRL.
type FXConfig struct {
	PTAXBaseURL     string        // servicio OData del Banco Central (PTAX)
	AwesomeBaseURL  string        // AwesomeAPI, respaldo comercial
	Timeout         time.Duration // tope para toda la resolución de cotización
	LookbackDays    int           // días hacia atrás que recorre PTAX (además del día pedido)
	RateLimitRPS    float64       // peticiones por segundo hacia PTAX
	FallbackRetries int           // reintentos con backoff ante 408/429/5xx del respaldo
	Timezone        string        // zona para mostrar la fecha de la cotización
}

// Location resuelve Timezone; si no existe usa UTC.
func (c FXConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FeeConfig tarifa de proveedor leída de INVOICE_FEES.
type FeeConfig struct {
	Name     string
	Percent  float64
	FixedBrl float64
}

// InvoiceConfig valores por defecto de la factura.
type InvoiceConfig struct {
	HourlyRate          float64
	Fees                []FeeConfig
	IncludeChristmasEve bool
	Debounce            time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, FX_TIMEOUT_SECONDS, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	fees, err := ParseFees(getString(v, "INVOICE_FEES", "Nomad:1.0,Higlobe:0.3"))
	if err != nil {
		return nil, fmt.Errorf("config: INVOICE_FEES: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "grinvo"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		FX: FXConfig{
			PTAXBaseURL:     getString(v, "FX_PTAX_BASE_URL", "https://olinda.bcb.gov.br"),
			AwesomeBaseURL:  getString(v, "FX_AWESOME_BASE_URL", "https://economia.awesomeapi.com.br"),
			Timeout:         time.Duration(getInt(v, "FX_TIMEOUT_SECONDS", 10)) * time.Second,
			LookbackDays:    getInt(v, "FX_LOOKBACK_DAYS", 7),
			RateLimitRPS:    getFloat(v, "FX_RATE_LIMIT_RPS", 10),
			FallbackRetries: getInt(v, "FX_FALLBACK_RETRIES", 0),
			Timezone:        getString(v, "FX_TIMEZONE", "America/Sao_Paulo"),
		},
		Invoice: InvoiceConfig{
			HourlyRate:          getFloat(v, "INVOICE_HOURLY_RATE", 15),
			Fees:                fees,
			IncludeChristmasEve: getBool(v, "INVOICE_INCLUDE_XMAS_EVE", true),
			Debounce:            time.Duration(getInt(v, "INVOICE_DEBOUNCE_MS", 350)) * time.Millisecond,
		},
	}

	if cfg.FX.LookbackDays < 0 {
		return nil, fmt.Errorf("config: FX_LOOKBACK_DAYS no puede ser negativo")
	}
	if cfg.Invoice.HourlyRate < 0 {
		return nil, fmt.Errorf("config: INVOICE_HOURLY_RATE no puede ser negativo")
	}
	return cfg, nil
}

// ParseFees interpreta "Nombre:pct[:fijoBRL],Nombre:pct". Cadena vacía = sin tarifas.
func ParseFees(s string) ([]FeeConfig, error) {
	var out []FeeConfig
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) < 2 || len(fields) > 3 || strings.TrimSpace(fields[0]) == "" {
			return nil, fmt.Errorf("tarifa %q: formato esperado Nombre:pct[:fijo]", part)
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil || pct < 0 {
			return nil, fmt.Errorf("tarifa %q: porcentaje inválido", part)
		}
		fee := FeeConfig{Name: strings.TrimSpace(fields[0]), Percent: pct}
		if len(fields) == 3 {
			fixed, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
			if err != nil || fixed < 0 {
				return nil, fmt.Errorf("tarifa %q: tarifa fija inválida", part)
			}
			fee.FixedBrl = fixed
		}
		out = append(out, fee)
	}
	return out, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
