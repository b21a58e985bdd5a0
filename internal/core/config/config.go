package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: value applied when the variable is missing
// Every knob has a safe default; the service boots with an empty environment.
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Upstream holds the tracking upstream configuration.
	Upstream UpstreamConfig `mapstructure:",squash"`

	// Static holds the static-asset configuration.
	Static StaticConfig `mapstructure:",squash"`
}

// UpstreamConfig pins down the single origin this service is allowed to talk
// to. It is bound once at startup and handed to the proxy and tracking
// components by value; nothing reconfigures it per request.
type UpstreamConfig struct {
	// AllowedOrigin is the only origin the proxy relays to, and the base URL
	// of the tracking API.
	AllowedOrigin string `mapstructure:"ALLOWED_ORIGIN" default:"https://track.bpost.cloud"`
	// TimeoutSeconds bounds every outbound call.
	TimeoutSeconds int `mapstructure:"HTTP_TIMEOUT_SECONDS" default:"10"`
}

// Timeout returns the outbound call bound as a duration.
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// StaticConfig locates the frontend asset tree.
type StaticConfig struct {
	// Dir is the directory holding the built single-page app, including the
	// index.html the preview handler splices metadata into.
	Dir string `mapstructure:"STATIC_DIR" default:"./public"`
}

// Load loads configuration from a .env file and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &config, nil
}

// processTags walks the struct fields, binds each mapstructure key to its
// environment variable and registers its default value in viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}
