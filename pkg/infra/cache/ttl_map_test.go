package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLMap_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewTTLMap[int](time.Minute, 0)
	m.now = func() time.Time { return now }

	m.Set("a", 1)
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	now = now.Add(2 * time.Minute)
	_, ok = m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestTTLMap_Capacity(t *testing.T) {
	m := NewTTLMap[string](time.Hour, 2)
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a", "3")
	assert.Equal(t, 2, m.Len())

	m.Set("c", "4")
	assert.Equal(t, 2, m.Len())
	v, ok := m.Get("c")
	assert.True(t, ok)
	assert.Equal(t, "4", v)

	m.Delete("c")
	_, ok = m.Get("c")
	assert.False(t, ok)
}
