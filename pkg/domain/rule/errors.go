package rule

import "errors"

var (
	ErrDuplicateRule    = errors.New("rule already exists")
	ErrRuleNotFound     = errors.New("rule not found")
	ErrStoreUnavailable = errors.New("rule store unavailable")
)
