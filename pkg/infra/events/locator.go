package events

import (
	"fmt"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/audit"
)

// ExporterFactory validates exporter settings and builds a configured
// exporter from them.
type ExporterFactory interface {
	Name() string
	ValidateConfig(settings map[string]interface{}) error
	WithSettings(settings map[string]interface{}) (audit.Exporter, error)
}

type ExporterConfig struct {
	Name     string                 `mapstructure:"name"`
	Settings map[string]interface{} `mapstructure:"settings"`
}

type ExporterLocator struct {
	factories map[string]ExporterFactory
}

type ExporterLocatorOption func(*ExporterLocator)

func WithFactory(factory ExporterFactory) ExporterLocatorOption {
	return func(l *ExporterLocator) {
		l.factories[factory.Name()] = factory
	}
}

func NewExporterLocator(opts ...ExporterLocatorOption) *ExporterLocator {
	l := &ExporterLocator{
		factories: make(map[string]ExporterFactory),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *ExporterLocator) GetExporter(cfg ExporterConfig) (audit.Exporter, error) {
	factory, ok := l.factories[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("unknown exporter: %s", cfg.Name)
	}
	if err := factory.ValidateConfig(cfg.Settings); err != nil {
		return nil, err
	}
	return factory.WithSettings(cfg.Settings)
}

// Build resolves every configured exporter, closing the ones already built
// when a later one fails.
func (l *ExporterLocator) Build(cfgs []ExporterConfig) ([]audit.Exporter, error) {
	exporters := make([]audit.Exporter, 0, len(cfgs))
	for _, cfg := range cfgs {
		exporter, err := l.GetExporter(cfg)
		if err != nil {
			for _, built := range exporters {
				built.Close()
			}
			return nil, fmt.Errorf("exporter %s: %w", cfg.Name, err)
		}
		exporters = append(exporters, exporter)
	}
	return exporters, nil
}
