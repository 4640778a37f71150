package config

import (
	"time"

	"github.com/spf13/viper"
	"github.com/wb-go/wbf/zlog"
)

// Config holds the main configuration for the application.
type Config struct {
	Server        Server        `mapstructure:"server"`
	Notifications Notifications `mapstructure:"notifications"`
	Gemini        Gemini        `mapstructure:"gemini"`
	Calls         Calls         `mapstructure:"calls"`
}

// Server holds HTTP server-related configuration.
type Server struct {
	HTTPPort string `mapstructure:"http_port"` // HTTP port to listen on
}

// Notifications holds the notification center timing knobs.
type Notifications struct {
	TTL             time.Duration `mapstructure:"ttl"`               // auto-dismiss window per notification
	WelcomeDelay    time.Duration `mapstructure:"welcome_delay"`     // delay before the post-login welcome
	ProPushDelay    time.Duration `mapstructure:"pro_push_delay"`    // simulated "new job request" push
	ClientPushDelay time.Duration `mapstructure:"client_push_delay"` // simulated "new message" push
}

// Gemini holds configuration for the external classification/generation service.
type Gemini struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"` // per-call deadline; failures fall back locally
}

// Calls holds the call simulation timing.
type Calls struct {
	ConnectDelay time.Duration `mapstructure:"connect_delay"` // calling -> connected transition
}

// mustBindEnv binds critical environment variables to Viper keys.
//
// It panics if any environment variable cannot be bound.
func mustBindEnv() {
	bindings := map[string]string{
		"server.http_port": "HTTP_PORT",
		"gemini.api_key":   "GEMINI_API_KEY",
		"gemini.model":     "GEMINI_MODEL",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			zlog.Logger.Panic().Err(err).Msgf("failed to bind env %s", env)
		}
	}
}

// Must loads and validates the configuration from file and environment variables.
//
// It panics if configuration cannot be read or unmarshalled.
func Must() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to read config")
	}

	mustBindEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msgf("failed to unmarshal config: %v", err)
	}

	return &cfg
}
