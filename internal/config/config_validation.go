package config

import "time"

// applyDefaults fills in values for optional settings that were not supplied
// by any configuration source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The database DSN, model artifact path, and dataset path are mandatory:
// without any one of them the process cannot serve its purpose, so startup
// fails fast instead of deferring the error to the first request.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.ModelPath == "" || cfg.App.DatasetPath == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
