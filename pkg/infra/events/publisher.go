package events

import (
	"context"
	"sync"
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/audit"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBufferSize    = 1000
	DefaultExportTimeout = 5 * time.Second
)

// Worker fans audit events out to exporters on background goroutines.
// Events published after Shutdown, or while the buffer is full, are dropped.
type Worker interface {
	audit.Publisher
	StartWorkers(n int)
	Shutdown()
}

type worker struct {
	logger        *logrus.Logger
	exporters     []audit.Exporter
	exportTimeout time.Duration
	taskChan      chan *audit.Event
	mu            sync.RWMutex
	closed        bool
	wg            sync.WaitGroup
}

func NewWorker(logger *logrus.Logger, exporters []audit.Exporter, bufferSize int) Worker {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &worker{
		logger:        logger,
		exporters:     exporters,
		exportTimeout: DefaultExportTimeout,
		taskChan:      make(chan *audit.Event, bufferSize),
	}
}

func (w *worker) Publish(evt *audit.Event) {
	if evt == nil || len(w.exporters) == 0 {
		return
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return
	}
	select {
	case w.taskChan <- evt:
	default:
		w.logger.WithFields(logrus.Fields{
			"event_type": string(evt.Type),
			"user_id":    evt.UserID,
		}).Warn("event buffer is full, dropping audit event")
	}
}

func (w *worker) StartWorkers(n int) {
	w.logger.WithField("workers", n).Info("starting audit event workers")
	for i := 0; i < n; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for evt := range w.taskChan {
				w.export(evt)
			}
		}()
	}
}

// Shutdown stops accepting events, drains the buffer and closes exporters.
func (w *worker) Shutdown() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.taskChan)
	w.mu.Unlock()

	w.logger.Info("shutting down audit event workers")
	w.wg.Wait()
	for _, exporter := range w.exporters {
		exporter.Close()
	}
	w.logger.Info("audit event workers stopped")
}

func (w *worker) export(evt *audit.Event) {
	for _, exporter := range w.exporters {
		ctx, cancel := context.WithTimeout(context.Background(), w.exportTimeout)
		err := exporter.Export(ctx, evt)
		cancel()
		if err != nil {
			prometheus.EventsExportedTotal.WithLabelValues(exporter.Name(), "error").Inc()
			w.logger.WithError(err).WithFields(logrus.Fields{
				"exporter":   exporter.Name(),
				"event_id":   evt.ID,
				"event_type": string(evt.Type),
			}).Error("exporter failed")
			continue
		}
		prometheus.EventsExportedTotal.WithLabelValues(exporter.Name(), "ok").Inc()
	}
}
