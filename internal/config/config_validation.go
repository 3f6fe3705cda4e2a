package config

import (
	"errors"
	"time"
)

// Defaults applied by applyDefaults when the merged configuration leaves a
// field at its zero value.
const (
	defaultHTTPAddress      = ":4000"
	defaultEnvironment      = EnvDevelopment
	defaultTokenIssuer      = "shopsphere"
	defaultTokenDuration    = 24 * time.Hour
	defaultPasswordHashCost = 10
	defaultRequestTimeout   = 30 * time.Second
	defaultRateLimitWindow  = 15 * time.Minute
	defaultGlobalLimit      = 100
	defaultLoginLimit       = 5
)

// applyDefaults fills unset fields with their documented defaults. Secrets
// and external credentials never receive defaults; validate rejects the
// configuration when they are missing.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.Environment == "" {
		cfg.Server.Environment = defaultEnvironment
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = defaultPasswordHashCost
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = defaultRateLimitWindow
	}
	if cfg.RateLimit.GlobalLimit == 0 {
		cfg.RateLimit.GlobalLimit = defaultGlobalLimit
	}
	if cfg.RateLimit.LoginLimit == 0 {
		cfg.RateLimit.LoginLimit = defaultLoginLimit
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. The process must not start with missing secrets or
// external credentials, so every violation is reported and the caller is
// expected to exit.
//
// Returns nil if the configuration is valid, or a joined error listing every
// violation otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.Server.Environment {
	case EnvDevelopment, EnvTest, EnvProduction:
	default:
		errs = append(errs, ErrInvalidEnvironment)
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrMissingDatabaseURI)
	}
	if cfg.App.TokenSignKey == "" {
		errs = append(errs, ErrMissingTokenSignKey)
	}
	if cfg.App.CSRFAuthKey == "" {
		errs = append(errs, ErrMissingCSRFAuthKey)
	}
	if cfg.App.AdminEmail == "" || cfg.App.AdminPassword == "" {
		errs = append(errs, ErrMissingAdminCredentials)
	}
	if cfg.Payment.StripeSecretKey == "" {
		errs = append(errs, ErrMissingPaymentKey)
	}
	if cfg.Assets.CloudName == "" || cfg.Assets.APIKey == "" || cfg.Assets.SecretKey == "" {
		errs = append(errs, ErrMissingAssetCredentials)
	}

	return errors.Join(errs...)
}
