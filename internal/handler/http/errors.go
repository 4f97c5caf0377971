// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// session token from a request. Callers can match against them with
// [errors.Is].
var (
	// ErrNoToken is returned when the request carries neither the session
	// cookie nor an "Authorization" header.
	ErrNoToken = errors.New("no authentication token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the token source exists but the token
	// value itself is an empty string.
	ErrEmptyToken = errors.New("empty authentication token")
)
