// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis trainee session keys.
const SessionCachePrefix = "trainee-session:"

// SessionCacheTTL is the time-to-live for trainee session entries.
const SessionCacheTTL = 30 * time.Minute
