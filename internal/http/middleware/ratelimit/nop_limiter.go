package ratelimit

// NopLimiter admits every request. Used when rate limiting is disabled.
type NopLimiter struct{}

func (NopLimiter) Allow(string) bool { return true }
