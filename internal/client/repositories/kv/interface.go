package kv

import "context"

// Repository is a string-keyed byte store.
//
// Get returns (nil, nil) when the key is absent. Delete of an absent key
// is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
}
