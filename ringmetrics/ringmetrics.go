// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringmetrics publishes a ring.Ring[T]'s occupancy as OpenTelemetry
// observable gauges, following the callback-driven instrument style used
// elsewhere in the pack for exposing a hot data structure's counters
// without making every update site call into the metrics SDK directly.
//
// It depends on the ring package, never the reverse.
package ringmetrics

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/kimjh0/dpdk-ring"
)

// countingRing is satisfied by *ring.Ring[T] for any T; it lets this
// package observe a ring without itself being generic over T.
type countingRing interface {
	Count() int
	FreeCount() int
	Cap() int
}

// registration is the handle returned by Register; Unregister stops the
// callback from being invoked. The gauges themselves stay created on the
// meter.
type registration struct {
	unregister metric.Registration
}

// Unregister detaches the observable callback from the meter.
func (r *registration) Unregister() error {
	return r.unregister.Unregister()
}

// Register adds Count, FreeCount, Full and Empty observable gauges for r
// to meter, each tagged with name. The gauges are sampled on demand by the
// OpenTelemetry SDK's collection cycle, not polled on a timer, so
// Register adds no goroutine and no overhead between collections.
func Register[T any](meter metric.Meter, name string, r *ring.Ring[T]) (*registration, error) {
	return register(meter, name, countingRing(r))
}

func register(meter metric.Meter, name string, r countingRing) (*registration, error) {
	count, err := meter.Int64ObservableGauge(name + ".count")
	if err != nil {
		return nil, err
	}
	free, err := meter.Int64ObservableGauge(name + ".free_count")
	if err != nil {
		return nil, err
	}
	full, err := meter.Int64ObservableGauge(name + ".full")
	if err != nil {
		return nil, err
	}
	empty, err := meter.Int64ObservableGauge(name + ".empty")
	if err != nil {
		return nil, err
	}

	reg, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		c := r.Count()
		o.ObserveInt64(count, int64(c))
		o.ObserveInt64(free, int64(r.FreeCount()))
		o.ObserveInt64(full, boolToInt64(c >= r.Cap()))
		o.ObserveInt64(empty, boolToInt64(c == 0))
		return nil
	}, count, free, full, empty)
	if err != nil {
		return nil, err
	}

	return &registration{unregister: reg}, nil
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
