// Package store is the persisted browser-context state port: a key/value
// JSON blob store holding what the web client would keep in local storage
// (token, user profile, cart, wishlist), namespaced by browser-context ID.
package store

import (
	"context"
	"errors"
)

// Keys the gateway persists per browser context.
const (
	KeyToken    = "token"
	KeyUser     = "user"
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
)

var ErrNotFound = errors.New("store: key not found")

// Store is the write-through persistence port. Values are opaque JSON
// blobs; callers marshal and unmarshal.
type Store interface {
	Get(ctx context.Context, contextID, key string) ([]byte, error)
	Set(ctx context.Context, contextID, key string, value []byte) error
	Delete(ctx context.Context, contextID, key string) error
}
