package moderation

import "errors"

var (
	ErrTransportFailure  = errors.New("judging model transport failure")
	ErrUnparsableVerdict = errors.New("unparsable verdict")
	ErrEmptyRuleSet      = errors.New("empty rule set")
)
