package qmeasure

import (
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMetrics(t *testing.T) {
	Convey("Given a measurement module applied twice", t, func() {
		m := NewMeasureAll(NewPauliZ)
		_, err := m.Apply(NewQuantumDevice(2, 4))
		So(err, ShouldBeNil)
		_, err = m.Apply(NewQuantumDevice(3, 5))
		So(err, ShouldBeNil)

		Convey("Then the metrics should reflect both calls", func() {
			metrics := m.Metrics()
			So(metrics.ApplyCount, ShouldEqual, int64(2))
			So(metrics.LastBatchSize, ShouldEqual, 5)
			So(metrics.LastWireCount, ShouldEqual, 3)
			So(metrics.DroppedColumns, ShouldEqual, int64(0))
		})

		Convey("Then the export should carry the counters", func() {
			exported := m.Metrics().ExportMetrics()
			So(exported["apply_count"], ShouldEqual, int64(2))
			So(exported["last_wire_count"], ShouldEqual, 3)
			So(exported, ShouldContainKey, "avg_latency")
		})
	})
}

func TestMetricsExportWhileApplying(t *testing.T) {
	Convey("Given a measurement module applied in one goroutine", t, func() {
		m := NewMeasureAll(NewPauliX)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if _, err := m.Apply(NewQuantumDevice(2, 2)); err != nil {
					panic(err)
				}
			}
		}()

		Convey("Then exporting from another goroutine should see consistent counters", func() {
			var last int64
			for i := 0; i < 50; i++ {
				count := m.Metrics().ExportMetrics()["apply_count"].(int64)
				So(count, ShouldBeGreaterThanOrEqualTo, last)
				last = count
			}

			wg.Wait()
			So(m.Metrics().ExportMetrics()["apply_count"], ShouldEqual, int64(50))
		})
	})
}
