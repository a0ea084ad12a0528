package logger

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncConsoleHook mirrors every entry to a console writer off the request
// path. Entries are dropped when the buffer is full.
type AsyncConsoleHook struct {
	out     io.Writer
	logChan chan string
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

func NewAsyncConsoleHook(out io.Writer, bufferSize int) *AsyncConsoleHook {
	hook := &AsyncConsoleHook{
		out:     out,
		logChan: make(chan string, bufferSize),
		done:    make(chan struct{}),
	}

	hook.wg.Add(1)
	go hook.processLogs()

	return hook
}

func (h *AsyncConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}

	select {
	case h.logChan <- line:
	default:
	}

	return nil
}

func (h *AsyncConsoleHook) processLogs() {
	defer h.wg.Done()

	for {
		select {
		case line := <-h.logChan:
			fmt.Fprint(h.out, line)
		case <-h.done:
			for len(h.logChan) > 0 {
				fmt.Fprint(h.out, <-h.logChan)
			}
			return
		}
	}
}

func (h *AsyncConsoleHook) Close() {
	h.once.Do(func() {
		close(h.done)
		h.wg.Wait()
	})
}

func (h *AsyncConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
