package vectorindex

import (
	"context"
	"errors"
)

var ErrDocumentNotFound = errors.New("document not found")

// Filter is a conjunction of exact metadata equalities.
type Filter map[string]string

func (f Filter) Matches(metadata map[string]string) bool {
	for k, v := range f {
		if metadata[k] != v {
			return false
		}
	}
	return true
}

type Record struct {
	ID       string
	Text     string
	Metadata map[string]string
	// Score is the cosine similarity against the query, 1 being identical.
	// Zero for records not returned by a similarity query.
	Score float64
}

//go:generate mockery --name=Index --dir=. --output=../../../mocks --filename=vector_index_mock.go --case=underscore --with-expecter

type Index interface {
	AddDocument(ctx context.Context, id, text string, metadata map[string]string) error
	// GetByID reports found=false without error when the id is absent.
	GetByID(ctx context.Context, id string) (Record, bool, error)
	// QueryByText returns at most k records matching filter, best match first.
	QueryByText(ctx context.Context, text string, k int, filter Filter) ([]Record, error)
	DeleteByID(ctx context.Context, id string) error
	UpdateDocument(ctx context.Context, id, text string, metadata map[string]string) error
	FindByFilter(ctx context.Context, filter Filter) ([]Record, error)
}
