package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid. Any of these is fatal at
// startup.
var (
	// ErrInvalidEnvironment indicates that SERVER_ENVIRONMENT is not one of
	// "development", "test" or "production".
	ErrInvalidEnvironment = errors.New("invalid runtime environment")
	// ErrMissingDatabaseURI indicates that no database connection string
	// was provided.
	ErrMissingDatabaseURI = errors.New("missing database URI")
	// ErrMissingTokenSignKey indicates that the JWT signing secret was not
	// provided.
	ErrMissingTokenSignKey = errors.New("missing token sign key")
	// ErrMissingCSRFAuthKey indicates that the CSRF token authentication
	// key was not provided.
	ErrMissingCSRFAuthKey = errors.New("missing CSRF auth key")
	// ErrMissingAdminCredentials indicates that the admin email or
	// password was not provided.
	ErrMissingAdminCredentials = errors.New("missing admin credentials")
	// ErrMissingPaymentKey indicates that the payment provider secret key
	// was not provided.
	ErrMissingPaymentKey = errors.New("missing payment provider key")
	// ErrMissingAssetCredentials indicates that the asset host credentials
	// are incomplete.
	ErrMissingAssetCredentials = errors.New("missing asset host credentials")
)
