package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
}

func TestRecordPairEvaluated(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordPairEvaluated(0.002)
	})
}

func TestRecordMiningRun(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordMiningRun(12.5, 3)
	})
}

func TestHandlerServesRegistry(t *testing.T) {
	InitRegistry()
	assert.NotNil(t, Handler())
}
