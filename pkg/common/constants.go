package common

import "time"

const (
	ApiKeyHeader    = "X-API-Key"
	RequestIDHeader = "X-Request-Id"

	DefaultJudgeTimeout = 30 * time.Second
	DefaultTopK         = 5
)
