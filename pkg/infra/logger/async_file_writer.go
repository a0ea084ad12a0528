package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	flushInterval = 2 * time.Second
	fileQueueSize = 1000
)

type AsyncFileWriter struct {
	writer  *bufio.Writer
	file    *os.File
	logChan chan []byte
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

func NewAsyncFileWriter(logFile string, bufferSize int) (*AsyncFileWriter, error) {
	file, err := os.OpenFile(filepath.Clean(logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	aw := &AsyncFileWriter{
		writer:  bufio.NewWriterSize(file, bufferSize),
		file:    file,
		logChan: make(chan []byte, fileQueueSize),
		done:    make(chan struct{}),
	}

	aw.wg.Add(1)
	go aw.processLogs()

	return aw, nil
}

// Write never blocks; the line is dropped when the queue is full.
func (aw *AsyncFileWriter) Write(p []byte) (int, error) {
	select {
	case aw.logChan <- append([]byte{}, p...):
	default:
	}
	return len(p), nil
}

func (aw *AsyncFileWriter) processLogs() {
	defer aw.wg.Done()
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case data := <-aw.logChan:
			if _, err := aw.writer.Write(data); err != nil {
				fmt.Fprintln(os.Stderr, "error writing log data to file:", err)
			}
		case <-ticker.C:
			_ = aw.writer.Flush()
		case <-aw.done:
			for len(aw.logChan) > 0 {
				_, _ = aw.writer.Write(<-aw.logChan)
			}
			_ = aw.writer.Flush()
			return
		}
	}
}

// Close drains pending lines, flushes and closes the file.
func (aw *AsyncFileWriter) Close() {
	aw.once.Do(func() {
		close(aw.done)
		aw.wg.Wait()
		_ = aw.file.Close()
	})
}
