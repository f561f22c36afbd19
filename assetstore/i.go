package assetstore

import (
	"time"

	"github.com/godruoyi/go-snowflake"
)

// Storage persists whole catalog snapshots. Implementations live under
// impls/.
type Storage interface {
	Load() (Catalog, error)
	Save(catalog Catalog) error
}

// KeyAllocator produces version keys for unstamped payloads.
type KeyAllocator func() VersionKey

// ClockKeys stamps with wall-clock milliseconds. Two edits within the same
// millisecond coalesce by the add-version idempotency rule.
func ClockKeys() KeyAllocator {
	return func() VersionKey {
		return VersionKey(time.Now().UnixMilli())
	}
}

// SnowflakeKeys stamps with snowflake IDs: still time-ordered, never
// colliding.
func SnowflakeKeys() KeyAllocator {
	return func() VersionKey {
		return VersionKey(snowflake.ID())
	}
}
