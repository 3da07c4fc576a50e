// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// Flags configure producer/consumer access mode and sizing behavior at
// construction. Flags are immutable once a Ring is built.
type Flags uint8

const (
	// SPEnq declares the producer side exclusive: only one goroutine
	// will ever call an enqueue operation. Absent, the producer side is
	// shared (multi-producer).
	SPEnq Flags = 1 << iota

	// SCDeq declares the consumer side exclusive: only one goroutine
	// will ever call a dequeue operation. Absent, the consumer side is
	// shared (multi-consumer).
	SCDeq

	// ExactSize treats the requested count as the exact usable capacity
	// instead of requiring it to already be a power of two. Internal
	// storage is rounded up to nextPowerOfTwo32(count + 1).
	ExactSize
)

func (f Flags) singleProducer() bool { return f&SPEnq != 0 }
func (f Flags) singleConsumer() bool { return f&SCDeq != 0 }
func (f Flags) exactSize() bool      { return f&ExactSize != 0 }

// resolveSize validates count against flags and returns the physical
// storage size and the usable capacity. It is shared by MemSizeOf and
// New so both paths accept exactly the same inputs (NewWithSlots checks
// only that len(slots) is a power of two) — the
// teacher C implementation validates the pre-rounding count in
// rte_ring_init but the post-rounding count in rte_ring_get_memsize,
// which is a known inconsistency this rendition avoids.
func resolveSize(count int, flags Flags) (size, capacity uint32, err error) {
	if count <= 0 {
		return 0, 0, invalidSizeErr(count, flags, "count must be positive")
	}
	if flags.exactSize() {
		if count > MaxRingSize {
			return 0, 0, invalidSizeErr(count, flags, "exact count exceeds MaxRingSize")
		}
		size = nextPowerOfTwo32(uint32(count) + 1)
		capacity = uint32(count)
		return size, capacity, nil
	}

	if count < 2 || count > MaxRingSize || !isPowerOfTwo(uint32(count)) {
		return 0, 0, invalidSizeErr(count, flags, "count must be a power of two in [2, MaxRingSize]")
	}
	size = uint32(count)
	capacity = size - 1
	return size, capacity, nil
}
