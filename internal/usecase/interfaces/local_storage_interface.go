package interfaces

import "context"

// ILocalStorage is a key/value blob store scoped to one user, the server-side
// counterpart of browser local storage.

type ILocalStorage interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
