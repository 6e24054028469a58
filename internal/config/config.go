package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable read by animesh.
const EnvPrefix = "ANIMESH"

// Config captures runtime configuration for the animesh CLI.
type Config struct {
	APIURL      string        `validate:"required,url"`
	HTTPTimeout time.Duration `validate:"gt=0"`
	PerPage     int           `validate:"min=1,max=50"`
	MaxPages    int           `validate:"min=1,max=20"`
	LogLevel    string        `validate:"oneof=debug info warn error"`
	ListenAddr  string        `validate:"required"`
	Timezone    string
	NoColor     bool
}

// New returns a viper instance reading ANIMESH_* variables with defaults applied.
// A .env file in the working directory is loaded first when present.
func New() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("api_url", "https://graphql.anilist.co")
	v.SetDefault("http_timeout", 15*time.Second)
	v.SetDefault("per_page", 50)
	v.SetDefault("max_pages", 4)
	v.SetDefault("log_level", "warn")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("timezone", "")
	v.SetDefault("no_color", false)
	return v
}

// FromViper decodes and validates a configuration.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		APIURL:      v.GetString("api_url"),
		HTTPTimeout: v.GetDuration("http_timeout"),
		PerPage:     v.GetInt("per_page"),
		MaxPages:    v.GetInt("max_pages"),
		LogLevel:    v.GetString("log_level"),
		ListenAddr:  v.GetString("listen_addr"),
		Timezone:    v.GetString("timezone"),
		NoColor:     v.GetBool("no_color"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// FromEnv creates a configuration instance sourced from environment variables.
func FromEnv() (Config, error) {
	return FromViper(New())
}
