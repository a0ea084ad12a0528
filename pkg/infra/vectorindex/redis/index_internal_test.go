package redis

import (
	"testing"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/vectorindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchReply(t *testing.T) {
	reply := []interface{}{
		int64(2),
		"ruleguard_rules:k1:r1",
		[]interface{}{"score", "0.25", "text", "no profanity", "m_owner", "alice", "embedding", "\x00\x00"},
		"ruleguard_rules:k1:r2",
		[]interface{}{"doc_id", "k1:r2", "text", "no spam", "m_owner", "alice", "score", "0.5"},
	}

	records, total, err := parseSearchReply(reply, "ruleguard_rules:")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, records, 2)

	assert.Equal(t, "k1:r1", records[0].ID)
	assert.Equal(t, "no profanity", records[0].Text)
	assert.InDelta(t, 0.75, records[0].Score, 1e-9)
	assert.Equal(t, map[string]string{"owner": "alice"}, records[0].Metadata)

	assert.Equal(t, "k1:r2", records[1].ID)
	assert.InDelta(t, 0.5, records[1].Score, 1e-9)
}

func TestParseSearchReply_Empty(t *testing.T) {
	records, total, err := parseSearchReply([]interface{}{int64(0)}, "p:")
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, records)

	_, _, err = parseSearchReply("OK", "p:")
	assert.Error(t, err)

	_, _, err = parseSearchReply([]interface{}{"2"}, "p:")
	assert.Error(t, err)

	_, _, err = parseSearchReply([]interface{}{int64(1), int64(3), []interface{}{}}, "p:")
	assert.Error(t, err)
}

func TestFilterQuery(t *testing.T) {
	idx := &index{cfg: Config{}.withDefaults()}

	q, err := idx.filterQuery(nil)
	require.NoError(t, err)
	assert.Equal(t, "*", q)

	q, err = idx.filterQuery(vectorindex.Filter{"scope": "", "owner": "alice"})
	require.NoError(t, err)
	assert.Equal(t,
		"@t_owner:{"+hashTagValue("alice")+"} @t_scope:{"+hashTagValue("")+"}",
		q,
	)

	_, err = idx.filterQuery(vectorindex.Filter{"created_at": "x"})
	assert.ErrorContains(t, err, "not filterable")
}

func TestCreateArgs(t *testing.T) {
	args := createArgs(Config{IndexName: "rules", Dimension: 8}.withDefaults())
	assert.Equal(t, []interface{}{
		"FT.CREATE", "rules",
		"ON", "HASH",
		"PREFIX", "1", "rules:",
		"SCHEMA",
		"t_owner", "TAG", "SEPARATOR", "|",
		"t_scope", "TAG", "SEPARATOR", "|",
		"embedding", "VECTOR", "FLAT", "6",
		"TYPE", "FLOAT32",
		"DIM", "8",
		"DISTANCE_METRIC", "COSINE",
	}, args)
}
