package events_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/NeuralTrust/RuleGuard/mocks"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/audit"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/events"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestWorker_ExportsToEveryExporter(t *testing.T) {
	first := mocks.NewExporter(t)
	second := mocks.NewExporter(t)

	var mu sync.Mutex
	var seen []string
	record := func(name string) func(context.Context, *audit.Event) {
		return func(_ context.Context, evt *audit.Event) {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, name+":"+string(evt.Type))
		}
	}

	first.EXPECT().Name().Return("first").Maybe()
	first.EXPECT().Export(mock.Anything, mock.Anything).Run(record("first")).Return(nil).Twice()
	first.EXPECT().Close().Once()
	second.EXPECT().Name().Return("second").Maybe()
	second.EXPECT().Export(mock.Anything, mock.Anything).Run(record("second")).Return(errors.New("down")).Twice()
	second.EXPECT().Close().Once()

	w := events.NewWorker(quietLogger(), []audit.Exporter{first, second}, 10)
	w.StartWorkers(2)

	w.Publish(audit.NewEvent(audit.EventRuleCreated, "alice", "k1"))
	w.Publish(audit.NewEvent(audit.EventModerationEvaluated, "alice", "k1"))
	w.Shutdown()

	assert.Len(t, seen, 4)
	assert.Contains(t, seen, "first:rule.created")
	assert.Contains(t, seen, "second:moderation.evaluated")
}

func TestWorker_PublishAfterShutdownIsDropped(t *testing.T) {
	exporter := mocks.NewExporter(t)
	exporter.EXPECT().Close().Once()

	w := events.NewWorker(quietLogger(), []audit.Exporter{exporter}, 1)
	w.StartWorkers(1)
	w.Shutdown()
	w.Shutdown()

	assert.NotPanics(t, func() {
		w.Publish(audit.NewEvent(audit.EventRuleDeleted, "alice", "k1"))
	})
}

func TestWorker_FullBufferDropsWithoutBlocking(t *testing.T) {
	exporter := mocks.NewExporter(t)
	exporter.EXPECT().Name().Return("slow").Maybe()
	exporter.EXPECT().Export(mock.Anything, mock.Anything).Return(nil).Once()
	exporter.EXPECT().Close().Once()

	w := events.NewWorker(quietLogger(), []audit.Exporter{exporter}, 1)

	w.Publish(audit.NewEvent(audit.EventRuleCreated, "alice", "k1"))
	w.Publish(audit.NewEvent(audit.EventRuleUpdated, "alice", "k1"))
	w.Publish(nil)

	w.StartWorkers(1)
	w.Shutdown()
}

func TestWorker_NoExporters(t *testing.T) {
	w := events.NewWorker(quietLogger(), nil, 0)
	w.StartWorkers(1)
	w.Publish(audit.NewEvent(audit.EventRuleCreated, "alice", "k1"))
	w.Shutdown()
}
