package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "freelance-hub"
	defaultTokenDuration  = 60 * time.Minute
	defaultDBDriver       = "sqlite3"
	defaultDBDSN          = "./freelance-hub.db"
)

// applyDefaults fills zero-valued fields of the merged configuration with
// conservative defaults so that the server can start with no configuration
// at all (SQLite file next to the binary, localhost listener).
//
// The token sign key deliberately has no default; see validate.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDBDriver
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDBDSN
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	// sentinel-token mode needs no sign key
	if !cfg.Auth.Disabled && cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	// the bootstrap account is seeded with a password hash; an empty
	// password would create an account nobody intends to use
	if cfg.Auth.BootstrapUsername != "" && cfg.Auth.BootstrapPassword == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}
