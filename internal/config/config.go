package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Marketplace       Marketplace       `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Commission        Commission        `mapstructure:",squash"`
	Cache             Cache             `mapstructure:",squash"`
	SalesSnapshotSync SalesSnapshotSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Marketplace apunta al core de Studdeo (la API del marketplace que es dueña
// de cursos, ventas y usuarios). El token de servicio se usa para los
// endpoints de datos; el login de usuarios pasa por el endpoint de token.
type Marketplace struct {
	URL          string `mapstructure:"marketplace_url"`
	ServiceToken string `mapstructure:"marketplace_service_token"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret           string `mapstructure:"auth_secret"`
	SessionTTLHours  int    `mapstructure:"auth_session_ttl_hours"`
	RememberTTLHours int    `mapstructure:"auth_remember_ttl_hours"`
}

// Commission concentra las reglas de negocio de liquidaciones. Los valores
// por defecto son la regla vigente; quedan configurables porque ya cambiaron
// más de una vez.
type Commission struct {
	MercadoPagoRate       float64 `mapstructure:"commission_mercadopago_rate"`
	DefaultContractShare  float64 `mapstructure:"commission_default_contract_share"`
	LiquidationOffsetDays int     `mapstructure:"commission_liquidation_offset_days"`
}

// ShareOrDefault resuelve la fracción del referente de una venta: la que
// trae la venta acotada a [0, 1], o la fracción por defecto cuando la venta
// no la trae (ventas anteriores al campo).
func (c Commission) ShareOrDefault(share *float64) float64 {
	if share == nil {
		return c.DefaultContractShare
	}

	if *share < 0 {
		return 0
	}
	if *share > 1 {
		return 1
	}
	return *share
}

type Cache struct {
	TTLMinutes int `mapstructure:"cache_ttl_minutes"`
}

type SalesSnapshotSync struct {
	CronSchedule string `mapstructure:"sales_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"sales_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/studdeo_admin")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("MARKETPLACE_URL", "https://protective-manifestation-production.up.railway.app")
	viper.SetDefault("MARKETPLACE_SERVICE_TOKEN", "your_service_token")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_SESSION_TTL_HOURS", 24)
	viper.SetDefault("AUTH_REMEMBER_TTL_HOURS", 720) // 30 días para "recordarme"

	viper.SetDefault("COMMISSION_MERCADOPAGO_RATE", 0.043)      // 4.3% comisión de Mercado Pago
	viper.SetDefault("COMMISSION_DEFAULT_CONTRACT_SHARE", 0.80) // cuando la venta no trae contract_discount
	viper.SetDefault("COMMISSION_LIQUIDATION_OFFSET_DAYS", 19)

	viper.SetDefault("CACHE_TTL_MINUTES", 5)

	viper.SetDefault("SALES_SNAPSHOT_SYNC_CRON", "*/30 * * * *") // cada 30 minutos
	viper.SetDefault("SALES_SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	} else {
		logrus.Info("Archivo .env leído por viper con éxito")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile intenta cargar el archivo .env desde las ubicaciones conocidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No se pudo obtener el directorio actual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Archivo .env cargado con éxito desde:", location)
			return
		}
	}

	logrus.Warn("No se pudo cargar el archivo .env desde ninguna ubicación conocida")
}
