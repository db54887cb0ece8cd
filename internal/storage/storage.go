// Package storage provides the app's client-side storage: a flat namespace
// of string keys, each holding one JSON document. It is the only system of
// record; there is no backend behind it.
package storage

import "context"

// Storage is keyed document storage. One namespace key holds one feature's
// full serialized record array; writes replace the prior value wholesale.
type Storage interface {
	// Get returns the value stored under key, and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any prior value. It fails with
	// an error matching common.ErrQuotaExceeded when the write would push
	// total stored bytes past the configured quota.
	Set(ctx context.Context, key string, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// UsedBytes reports the total size of all stored values.
	UsedBytes(ctx context.Context) (int64, error)
}
