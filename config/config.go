package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Estimate EstimateConfig
}

type AppConfig struct {
	Port       string
	Env        string
	CORSOrigin string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// EstimateConfig holds the wait-time estimator knobs.
type EstimateConfig struct {
	BaseMinutes           int
	PerAppointmentMinutes int
	FloorMinutes          int
	CacheTTL              time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	estimateCacheTTL, err := time.ParseDuration(viper.GetString("ESTIMATE_CACHE_TTL"))
	if err != nil {
		estimateCacheTTL = 60 * time.Second
	}

	baseMinutes := viper.GetInt("ESTIMATE_BASE_MINUTES")
	if baseMinutes == 0 {
		baseMinutes = 20
	}
	perAppointment := viper.GetInt("ESTIMATE_PER_APPOINTMENT_MINUTES")
	if perAppointment == 0 {
		perAppointment = 5
	}
	floorMinutes := viper.GetInt("ESTIMATE_FLOOR_MINUTES")
	if floorMinutes == 0 {
		floorMinutes = 5
	}

	migrationsDir := viper.GetString("DB_MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "db/migrations"
	}

	corsOrigin := viper.GetString("CORS_ALLOW_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "*"
	}

	config := &Config{
		App: AppConfig{
			Port:       viper.GetString("APP_PORT"),
			Env:        viper.GetString("APP_ENV"),
			CORSOrigin: corsOrigin,
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			MigrationsDir: migrationsDir,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Estimate: EstimateConfig{
			BaseMinutes:           baseMinutes,
			PerAppointmentMinutes: perAppointment,
			FloorMinutes:          floorMinutes,
			CacheTTL:              estimateCacheTTL,
		},
	}

	return config, nil
}
