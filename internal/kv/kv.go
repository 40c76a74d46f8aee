// Package kv is the durable storage behind the trip log and the
// remembered-device flag: a handful of string keys each holding a small
// JSON document, backed by either redis or postgres.
package kv

import "context"

type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
