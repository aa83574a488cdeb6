// File: utils/constants.go
package utils

// TokenCacheKey is the Redis key holding the upstream bearer token.
const TokenCacheKey = "meevo:token"

// RosterCacheKey is the Redis key holding the active-employee roster envelope.
const RosterCacheKey = "meevo:roster"
