// Package session implements the role-parameterized session gate: a generic
// store owning zero-or-one identity per role, persisted through an injected
// key-value port, plus the pure authorization decision consumed by route
// guards.
package session

import (
	"context"

	"nexprev/internal/errors"
)

// ErrNotFound is returned by KV.Get when no entry exists for the key.
var ErrNotFound = errors.New("session entry not found")

// KV is the storage port a Store persists identities through. Keys are
// role-partitioned by the Store; no two role stores ever share a key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
