package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// RateLimitKey returns the counter key for a client within one fixed window.
func (r *CacheKeyStruct) RateLimitKey(clientIP string, windowStart int64) string {
	return fmt.Sprintf("ratelimit:%s:%d", clientIP, windowStart)
}

var CacheKey = NewCacheKeyStruct()
