// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Concurrency stress tests excluded from race detection.
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established purely through atomic memory orderings. The cursor protocol
// here is correct under those orderings but the detector may still flag
// false positives on some interleavings of the slot writes that happen
// between a reservation and its publish.

package ring_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/atomix"

	"github.com/kimjh0/dpdk-ring"
)

// TestMultiProducerNoLossNoDuplication runs many producers enqueueing
// distinct values into a multi-producer ring while a single consumer
// drains it, and checks every value arrives exactly once.
func TestMultiProducerNoLossNoDuplication(t *testing.T) {
	if ring.RaceEnabled {
		t.Skip("skip: cursor protocol uses cross-variable memory ordering")
	}

	const producers = 16
	const perProducer = 2000
	const total = producers * perProducer

	r, err := ring.New[int](256, ring.SCDeq)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	seen := make([]atomix.Bool, total)
	var produced sync.WaitGroup
	produced.Add(producers)

	for p := range producers {
		go func(base int) {
			defer produced.Done()
			for i := range perProducer {
				v := base + i
				for r.Enqueue(v) != nil {
				}
			}
		}(p * perProducer)
	}

	consumed := 0
	for consumed < total {
		if v, err := r.Dequeue(); err == nil {
			if seen[v].LoadAcquire() {
				t.Fatalf("value %d delivered more than once", v)
			}
			seen[v].StoreRelease(true)
			consumed++
		}
	}

	produced.Wait()

	for i := range total {
		if !seen[i].LoadAcquire() {
			t.Fatalf("value %d never delivered", i)
		}
	}
}

// TestMultiConsumerNoLossNoDuplication mirrors
// TestMultiProducerNoLossNoDuplication with the roles reversed: one
// producer, many consumers racing to dequeue.
func TestMultiConsumerNoLossNoDuplication(t *testing.T) {
	if ring.RaceEnabled {
		t.Skip("skip: cursor protocol uses cross-variable memory ordering")
	}

	const total = 20000
	const consumers = 16

	r, err := ring.New[int](256, ring.SPEnq)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	seen := make([]atomix.Bool, total)
	var count atomix.Int64
	var consumed sync.WaitGroup
	consumed.Add(consumers)

	for range consumers {
		go func() {
			defer consumed.Done()
			for count.LoadAcquire() < total {
				v, err := r.Dequeue()
				if err != nil {
					continue
				}
				if seen[v].LoadAcquire() {
					t.Errorf("value %d delivered more than once", v)
				}
				seen[v].StoreRelease(true)
				count.AddAcqRel(1)
			}
		}()
	}

	for i := range total {
		for r.Enqueue(i) != nil {
		}
	}

	consumed.Wait()

	for i := range total {
		if !seen[i].LoadAcquire() {
			t.Fatalf("value %d never delivered", i)
		}
	}
}

// TestFixedModeBulkIsAtomic checks that concurrent EnqueueBulk callers
// under contention never leave the ring in a state reflecting a partial
// write: every successful DequeueBulk of the same width reads one whole
// producer's batch, never an interleaving of two.
func TestFixedModeBulkIsAtomic(t *testing.T) {
	if ring.RaceEnabled {
		t.Skip("skip: cursor protocol uses cross-variable memory ordering")
	}

	const batch = 8
	const batches = 4000
	const producers = 8

	r, err := ring.New[int](64, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := range producers {
		go func(tag int) {
			defer wg.Done()
			buf := make([]int, batch)
			for i := range buf {
				buf[i] = tag
			}
			sent := 0
			for sent < batches/producers {
				if r.EnqueueBulk(buf) == batch {
					sent++
				}
			}
		}(p)
	}

	out := make([]int, batch)
	received := 0
	for received < batches {
		if r.DequeueBulk(out) != batch {
			continue
		}
		tag := out[0]
		for _, v := range out {
			if v != tag {
				t.Fatalf("batch torn across producers: %v", out)
			}
		}
		received++
	}

	wg.Wait()
}
