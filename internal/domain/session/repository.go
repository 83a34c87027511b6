package session

import "context"

// Repository is the key/value store the session snapshot lives in.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
