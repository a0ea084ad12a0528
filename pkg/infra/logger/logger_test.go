package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
}

func TestLogFilePath(t *testing.T) {
	path, err := logFilePath("ruleguard.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("logs", "ruleguard.log"), path)

	_, err = logFilePath("../etc/passwd")
	assert.Error(t, err)
}

func TestAsyncFileWriter_FlushesOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	w, err := NewAsyncFileWriter(path, 1024)
	require.NoError(t, err)

	n, err := w.Write([]byte("first\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	_, _ = w.Write([]byte("second\n"))
	w.Close()
	w.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestAsyncConsoleHook_MirrorsEntries(t *testing.T) {
	out := &syncBuffer{}
	hook := NewAsyncConsoleHook(out, 10)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.AddHook(hook)

	logger.WithField("user_id", "alice").Info("rule added")
	hook.Close()

	assert.Contains(t, out.String(), `"user_id":"alice"`)
	assert.Contains(t, out.String(), "rule added")
}
