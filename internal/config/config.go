package config

import (
	"log/slog"

	"github.com/corray333/order-ledger/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config mirrors the config.yaml layout. Values keep being read through
// viper at call sites; the struct exists so startup fails fast on an
// incomplete file.
type Config struct {
	Server struct {
		HTTP struct {
			Port string `mapstructure:"port" validate:"required"`
		} `mapstructure:"http"`
	} `mapstructure:"server"`
	Postgres struct {
		MigrationsPath string `mapstructure:"migrations_path" validate:"required"`
	} `mapstructure:"postgres"`
	Jaeger struct {
		Endpoint string `mapstructure:"endpoint" validate:"required,url"`
	} `mapstructure:"jaeger"`
}

func MustInit() {
	if err := godotenv.Load("./.env"); err != nil {
		panic("error while loading .env file: " + err.Error())
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/order-ledger")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		panic("error while reading config file: " + err.Error())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		panic("error while unmarshaling config: " + err.Error())
	}
	if err := validator.New().Struct(cfg); err != nil {
		panic("invalid config: " + err.Error())
	}

	SetupLogger()
}

func SetupLogger() {
	handler := logger.NewHandler(nil)
	log := slog.New(handler)
	slog.SetDefault(log)
}
