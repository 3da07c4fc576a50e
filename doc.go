// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides a bounded, lock-free, multi-producer/
// multi-consumer FIFO ring buffer for fixed-size payload handles.
//
// It is modeled on DPDK's rte_ring: one Ring[T] type whose producer and
// consumer sides each independently choose, at construction, whether
// exactly one goroutine will use that side ("single") or arbitrarily many
// ("multi"). Transfers come in two behaviors — bulk (all-or-nothing) and
// burst (partial, up to n) — crossed with the two access modes, for four
// effective algorithms selected by a pair of runtime flags rather than by
// four separate exported types.
//
// # Quick Start
//
//	r, err := ring.New[int](1024, 0)              // multi-producer, multi-consumer
//	r, err := ring.New[int](1024, ring.SPEnq|ring.SCDeq) // single-producer, single-consumer
//
// # Basic Usage
//
//	r, _ := ring.New[int](1024, 0)
//
//	// Enqueue (non-blocking)
//	if err := r.Enqueue(42); err != nil {
//	    // ring.IsWouldBlock(err): ring is full
//	}
//
//	// Dequeue (non-blocking)
//	v, err := r.Dequeue()
//	if err == nil {
//	    fmt.Println(v)
//	}
//
// # Bulk and Burst
//
// Bulk transfers are all-or-nothing: EnqueueBulk either moves every
// element in the slice or moves none, returning the count actually moved
// (0 or len(elems)). Burst transfers move as many as fit, up to len(elems):
//
//	batch := []int{1, 2, 3, 4}
//	n := r.EnqueueBulk(batch)  // n == 4 or n == 0
//	n = r.EnqueueBurst(batch)  // n in [0, 4]
//
//	out := make([]int, 100)
//	n = r.DequeueBurst(out)    // drains up to 100, returns however many were available
//
// # Access Patterns
//
// Pipeline Stage (single producer, single consumer):
//
//	r, _ := ring.New[Data](1024, ring.SPEnq|ring.SCDeq)
//
//	go func() { // Producer
//	    for data := range input {
//	        for r.Enqueue(data) != nil {
//	            runtime.Gosched()
//	        }
//	    }
//	}()
//
//	go func() { // Consumer
//	    for {
//	        data, err := r.Dequeue()
//	        if err == nil {
//	            process(data)
//	        }
//	    }
//	}()
//
// Event Aggregation (multi-producer, single consumer):
//
//	r, _ := ring.New[Event](4096, ring.SCDeq)
//	for sensor := range slices.Values(sensors) {
//	    go func(s Sensor) {
//	        for ev := range s.Events() {
//	            r.Enqueue(ev)
//	        }
//	    }(sensor)
//	}
//
// Work Distribution (single producer, multi consumer):
//
//	r, _ := ring.New[Task](1024, ring.SPEnq)
//
// Worker Pool (multi producer, multi consumer):
//
//	r, _ := ring.New[Job](4096, 0)
//
// # Capacity
//
// Without ring.ExactSize, count must already be a power of two and the
// usable capacity is count-1:
//
//	r, _ := ring.New[int](8, 0)   // Cap() == 7
//
// With ring.ExactSize, count is the exact usable capacity and internal
// storage is rounded up for you:
//
//	r, _ := ring.New[int](7, ring.ExactSize) // Cap() == 7, internal size == 8
//
// # Error Handling
//
// Construction errors (ErrInvalidSize, ErrAllocFailed) are the only
// conditions this package treats as failures. New and NewWithSlots report
// ErrInvalidSize once through an injectable Reporter (see WithReporter)
// before returning it. ErrAllocFailed is returned, wrapped, only by
// ringshm.MapSlots, which does not pass it to a Reporter.
// Runtime transfer operations never fail: EnqueueBulk/DequeueBulk return 0
// on under-delivery, EnqueueBurst/DequeueBurst return the partial count.
// The single-item Enqueue/Dequeue wrappers translate a zero count into
// ErrWouldBlock (re-exported from [code.hybscloud.com/iox]) purely as
// ergonomic sugar:
//
//	for {
//	    err := r.Enqueue(item)
//	    if err == nil {
//	        break
//	    }
//	    if !ring.IsWouldBlock(err) {
//	        return err // unreachable in practice, but let callers be defensive
//	    }
//	    runtime.Gosched()
//	}
//
// # Thread Safety
//
// Violating the access mode declared at construction (e.g. two goroutines
// enqueueing on a ring built with SPEnq) causes undefined behavior
// including data corruption and races.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established purely through atomic memory orderings. This package's
// cursor protocol is correct under the C/Go memory model but the race
// detector may still flag false positives on some interleavings; tests
// that are unreliable under -race call t.Skip when RaceEnabled is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for the single-item
// convenience wrappers' semantic error, [code.hybscloud.com/atomix] for
// atomic primitives with explicit memory ordering, and
// [code.hybscloud.com/spin] for the bounded backoff used while waiting to
// publish a reservation. The optional subpackages ring/ringmetrics and
// ring/ringshm add OpenTelemetry introspection and shared-mapping-
// compatible backing storage respectively, without the core importing
// either.
package ring
