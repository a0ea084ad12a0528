package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/embedding"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/vectorindex"
	"github.com/sirupsen/logrus"
)

type document struct {
	text     string
	metadata map[string]string
	vector   []float64
}

type index struct {
	logger   *logrus.Logger
	embedder embedding.Creator
	mu       sync.RWMutex
	docs     map[string]document
}

// NewIndex returns a process-local vector index. Queries scan every
// document, so it is meant for development and tests.
func NewIndex(logger *logrus.Logger, embedder embedding.Creator) vectorindex.Index {
	return &index{
		logger:   logger,
		embedder: embedder,
		docs:     make(map[string]document),
	}
}

func (i *index) AddDocument(ctx context.Context, id, text string, metadata map[string]string) error {
	return i.put(ctx, id, text, metadata)
}

func (i *index) UpdateDocument(ctx context.Context, id, text string, metadata map[string]string) error {
	return i.put(ctx, id, text, metadata)
}

func (i *index) put(ctx context.Context, id, text string, metadata map[string]string) error {
	emb, err := i.embedder.Generate(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to embed document %s: %w", id, err)
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.docs[id] = document{
		text:     text,
		metadata: copyMetadata(metadata),
		vector:   emb.Value,
	}
	return nil
}

func (i *index) GetByID(_ context.Context, id string) (vectorindex.Record, bool, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	doc, ok := i.docs[id]
	if !ok {
		return vectorindex.Record{}, false, nil
	}
	return doc.record(id, 0), true, nil
}

func (i *index) QueryByText(
	ctx context.Context,
	text string,
	k int,
	filter vectorindex.Filter,
) ([]vectorindex.Record, error) {
	if k <= 0 {
		return nil, nil
	}
	emb, err := i.embedder.Generate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	i.mu.RLock()
	results := make([]vectorindex.Record, 0, len(i.docs))
	for id, doc := range i.docs {
		if !filter.Matches(doc.metadata) {
			continue
		}
		results = append(results, doc.record(id, embedding.CosineSimilarity(emb.Value, doc.vector)))
	}
	i.mu.RUnlock()

	sort.Slice(results, func(a, b int) bool {
		if results[a].Score != results[b].Score {
			return results[a].Score > results[b].Score
		}
		return results[a].ID < results[b].ID
	})
	if len(results) > k {
		results = results[:k]
	}

	i.logger.WithFields(logrus.Fields{
		"k":       k,
		"matches": len(results),
	}).Debug("memory index query")
	return results, nil
}

func (i *index) DeleteByID(_ context.Context, id string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, ok := i.docs[id]; !ok {
		return vectorindex.ErrDocumentNotFound
	}
	delete(i.docs, id)
	return nil
}

func (i *index) FindByFilter(_ context.Context, filter vectorindex.Filter) ([]vectorindex.Record, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	var results []vectorindex.Record
	for id, doc := range i.docs {
		if filter.Matches(doc.metadata) {
			results = append(results, doc.record(id, 0))
		}
	}
	sort.Slice(results, func(a, b int) bool { return results[a].ID < results[b].ID })
	return results, nil
}

func (d document) record(id string, score float64) vectorindex.Record {
	return vectorindex.Record{
		ID:       id,
		Text:     d.text,
		Metadata: copyMetadata(d.metadata),
		Score:    score,
	}
}

func copyMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
