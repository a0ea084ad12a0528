package moderation

import "context"

//go:generate mockery --name=Judge --dir=. --output=../../../mocks --filename=judge_mock.go --case=underscore --with-expecter

// Judge sends a verdict request to a language model and returns its raw
// text. Transport-level failures are reported wrapping ErrTransportFailure.
type Judge interface {
	Judge(ctx context.Context, req *Request) (string, error)
}
