package kafka_test

import (
	"context"
	"testing"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/audit"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/events/kafka"
	"github.com/stretchr/testify/assert"
)

func TestExporter_ValidateConfig(t *testing.T) {
	exporter := kafka.NewKafkaExporter()

	tests := []struct {
		name     string
		settings map[string]interface{}
		errMsg   string
	}{
		{
			name:     "valid",
			settings: map[string]interface{}{"host": "localhost", "port": "9092", "topic": "ruleguard.events"},
		},
		{
			name:     "missing host",
			settings: map[string]interface{}{"port": "9092", "topic": "t"},
			errMsg:   "kafka host is required",
		},
		{
			name:     "missing port",
			settings: map[string]interface{}{"host": "localhost", "topic": "t"},
			errMsg:   "kafka port is required",
		},
		{
			name:     "missing topic",
			settings: map[string]interface{}{"host": "localhost", "port": "9092"},
			errMsg:   "kafka topic is required",
		},
		{
			name:     "wrong type",
			settings: map[string]interface{}{"host": []string{"a"}},
			errMsg:   "invalid kafka config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := exporter.ValidateConfig(tt.settings)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestExporter_ExportWithoutProducer(t *testing.T) {
	exporter := kafka.NewKafkaExporter()
	assert.Equal(t, kafka.ExporterName, exporter.Name())

	err := exporter.Export(context.Background(), audit.NewEvent(audit.EventRuleCreated, "alice", "k1"))
	assert.ErrorContains(t, err, "kafka producer is not initialized")
	exporter.Close()
}
