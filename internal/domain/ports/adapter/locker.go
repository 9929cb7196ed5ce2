package adapter

import (
	"context"
	"time"
)

// Locker grants short-lived exclusive locks keyed by resource name.
// TryLock returns an opaque token that the holder must present to
// Unlock, so a lock that expired mid-flight cannot release a lock
// re-acquired by someone else.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (token string, err error)
	Unlock(ctx context.Context, key, token string) error
}
