// Package common defines shared sentinel errors used across the codec,
// storage and service layers of traincrew. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Codec errors (malformed data-URL token or grammar violation).
	ErrFormat = errors.New("malformed token")

	// Payload cannot be rasterized/parsed as the claimed type.
	ErrDecode = errors.New("undecodable payload")

	// Persistence write exceeds the configured storage capacity.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// Uniform, cause-erased failure for any share-token decode problem.
	// The decoder never reports why a token failed, only that it did.
	ErrShareDecode = errors.New("share link invalid")
)
