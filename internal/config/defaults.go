package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "go-item-reviews"
	defaultTokenDuration  = time.Hour
	defaultVersion        = "dev"
	defaultStatsInterval  = 15 * time.Second
	defaultLogLevel       = "info"
)

// defaultConfig returns the values used for every field that no other
// source has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: bcrypt.DefaultCost,
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			Version:          defaultVersion,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				StatsInterval: defaultStatsInterval,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}
