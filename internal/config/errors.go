package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates an empty JWT signing key. Starting
	// without one would make every issued token unverifiable.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrMissingTokenScope indicates a missing token issuer or audience,
	// both of which are validated on every authenticated request.
	ErrMissingTokenScope = errors.New("token issuer/audience is not configured")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
