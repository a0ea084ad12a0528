package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/embedding"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/vectorindex"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	textField      = "text"
	docIDField     = "doc_id"
	embeddingField = "embedding"
	scoreField     = "score"
	metadataPrefix = "m_"
	tagPrefix      = "t_"
)

type index struct {
	redis    *redis.Client
	logger   *logrus.Logger
	embedder embedding.Creator
	cfg      Config
}

// NewIndex returns a vector index over RediSearch. Documents are stored as
// hashes under the index prefix; filterable metadata is mirrored into TAG
// fields holding the sha256 of the value so arbitrary strings never need
// query escaping.
func NewIndex(client *redis.Client, logger *logrus.Logger, embedder embedding.Creator, cfg Config) vectorindex.Index {
	return &index{
		redis:    client,
		logger:   logger,
		embedder: embedder,
		cfg:      cfg.withDefaults(),
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
	if err := i.redis.HSet(ctx, i.key(id), i.hashValues(id, text, emb, metadata)...).Err(); err != nil {
		return fmt.Errorf("failed to store document %s: %w", id, err)
	}
	return nil
}

func (i *index) hashValues(id, text string, emb *embedding.Embedding, metadata map[string]string) []interface{} {
	values := []interface{}{
		docIDField, id,
		textField, text,
		embeddingField, string(emb.ToFloat32Blob()),
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		values = append(values, metadataPrefix+k, metadata[k])
		if i.cfg.isTagField(k) {
			values = append(values, tagField(k), hashTagValue(metadata[k]))
		}
	}
	return values
}

func (i *index) GetByID(ctx context.Context, id string) (vectorindex.Record, bool, error) {
	fields, err := i.redis.HGetAll(ctx, i.key(id)).Result()
	if err != nil {
		return vectorindex.Record{}, false, fmt.Errorf("failed to load document %s: %w", id, err)
	}
	if len(fields) == 0 {
		return vectorindex.Record{}, false, nil
	}
	return recordFromFields(id, fields), true, nil
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
	prefilter, err := i.filterQuery(filter)
	if err != nil {
		return nil, err
	}
	emb, err := i.embedder.Generate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	if prefilter != "*" {
		prefilter = "(" + prefilter + ")"
	}
	query := fmt.Sprintf("%s=>[KNN %d @%s $BLOB AS %s]", prefilter, k, embeddingField, scoreField)
	args := []interface{}{
		"FT.SEARCH", i.cfg.IndexName, query,
		"PARAMS", "2", "BLOB", string(emb.ToFloat32Blob()),
		"SORTBY", scoreField, "ASC",
		"LIMIT", 0, k,
		"DIALECT", 2,
	}
	reply, err := i.redis.Do(ctx, args...).Result()
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	records, _, err := parseSearchReply(reply, i.cfg.keyPrefix())
	if err != nil {
		return nil, err
	}
	i.logger.WithFields(logrus.Fields{
		"index":   i.cfg.IndexName,
		"k":       k,
		"matches": len(records),
	}).Debug("redis vector query")
	return records, nil
}

func (i *index) DeleteByID(ctx context.Context, id string) error {
	n, err := i.redis.Del(ctx, i.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	if n == 0 {
		return vectorindex.ErrDocumentNotFound
	}
	return nil
}

func (i *index) FindByFilter(ctx context.Context, filter vectorindex.Filter) ([]vectorindex.Record, error) {
	query, err := i.filterQuery(filter)
	if err != nil {
		return nil, err
	}
	reply, err := i.redis.Do(ctx,
		"FT.SEARCH", i.cfg.IndexName, query,
		"LIMIT", 0, i.cfg.ListLimit,
		"DIALECT", 2,
	).Result()
	if err != nil {
		return nil, fmt.Errorf("filter search failed: %w", err)
	}
	records, total, err := parseSearchReply(reply, i.cfg.keyPrefix())
	if err != nil {
		return nil, err
	}
	if total > int64(len(records)) {
		i.logger.WithFields(logrus.Fields{
			"index":    i.cfg.IndexName,
			"total":    total,
			"returned": len(records),
			"limit":    i.cfg.ListLimit,
		}).Warn("filter search truncated at list limit")
	}
	sort.Slice(records, func(a, b int) bool { return records[a].ID < records[b].ID })
	return records, nil
}

func (i *index) filterQuery(filter vectorindex.Filter) (string, error) {
	if len(filter) == 0 {
		return "*", nil
	}
	keys := make([]string, 0, len(filter))
	for k := range filter {
		if !i.cfg.isTagField(k) {
			return "", fmt.Errorf("metadata field %q is not filterable", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	clauses := make([]string, 0, len(keys))
	for _, k := range keys {
		clauses = append(clauses, fmt.Sprintf("@%s:{%s}", tagField(k), hashTagValue(filter[k])))
	}
	return strings.Join(clauses, " "), nil
}

func (i *index) key(id string) string {
	return i.cfg.keyPrefix() + id
}

func tagField(name string) string {
	return tagPrefix + name
}

func hashTagValue(value string) string {
	h := sha256.New()
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil))
}

func recordFromFields(id string, fields map[string]string) vectorindex.Record {
	rec := vectorindex.Record{
		ID:       id,
		Metadata: make(map[string]string),
	}
	if stored, ok := fields[docIDField]; ok && stored != "" {
		rec.ID = stored
	}
	for k, v := range fields {
		switch {
		case k == textField:
			rec.Text = v
		case k == scoreField:
			// KNN reports cosine distance.
			if d, err := strconv.ParseFloat(v, 64); err == nil {
				rec.Score = 1 - d
			}
		case strings.HasPrefix(k, metadataPrefix):
			rec.Metadata[strings.TrimPrefix(k, metadataPrefix)] = v
		}
	}
	return rec
}

// parseSearchReply decodes an FT.SEARCH RESP2 reply:
// [total, key1, [f1, v1, ...], key2, [...], ...].
// total counts every match, not only the documents in this page.
func parseSearchReply(reply interface{}, prefix string) ([]vectorindex.Record, int64, error) {
	items, ok := reply.([]interface{})
	if !ok {
		return nil, 0, fmt.Errorf("unexpected search reply type %T", reply)
	}
	if len(items) == 0 {
		return nil, 0, fmt.Errorf("empty search reply")
	}
	total, ok := items[0].(int64)
	if !ok {
		return nil, 0, fmt.Errorf("unexpected search total type %T", items[0])
	}
	records := make([]vectorindex.Record, 0, (len(items)-1)/2)
	for j := 1; j+1 < len(items); j += 2 {
		key, ok := items[j].(string)
		if !ok {
			return nil, 0, fmt.Errorf("unexpected document key type %T", items[j])
		}
		rawFields, ok := items[j+1].([]interface{})
		if !ok {
			return nil, 0, fmt.Errorf("unexpected document fields type %T", items[j+1])
		}
		fields := make(map[string]string, len(rawFields)/2)
		for f := 0; f+1 < len(rawFields); f += 2 {
			name, _ := rawFields[f].(string)
			value, _ := rawFields[f+1].(string)
			fields[name] = value
		}
		records = append(records, recordFromFields(strings.TrimPrefix(key, prefix), fields))
	}
	return records, total, nil
}
