package qmeasure

import (
	"sync"
	"time"
)

/*
Metrics accumulates measurement statistics for a MeasureAll. Fields are
written under mu; read them directly only when no Apply is running, and use
ExportMetrics from other goroutines.
*/
type Metrics struct {
	mu             sync.RWMutex
	ApplyCount     int64
	TotalTime      time.Duration
	AverageLatency time.Duration
	LastBatchSize  int
	LastWireCount  int
	DroppedColumns int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordApply(startTime time.Time, batch, wires, dropped int) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ApplyCount++
	m.TotalTime += duration
	m.AverageLatency = m.TotalTime / time.Duration(m.ApplyCount)
	m.LastBatchSize = batch
	m.LastWireCount = wires
	m.DroppedColumns += int64(dropped)
}

func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"apply_count":     m.ApplyCount,
		"avg_latency":     m.AverageLatency.Microseconds(),
		"last_batch_size": m.LastBatchSize,
		"last_wire_count": m.LastWireCount,
		"dropped_columns": m.DroppedColumns,
	}
}
