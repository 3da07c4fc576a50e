// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "unsafe"

// Ring is a bounded, lock-free FIFO of T. Producer and consumer sides are
// each independently single or multi access, chosen at construction via
// Flags. See the package doc for usage.
type Ring[T any] struct {
	mask     uint32
	cap      uint32
	flags    Flags
	reporter Reporter
	onClose  func() error

	_ pad

	prod cursor

	_ pad

	cons cursor

	_ pad

	slots []T
}

// MemSizeOf returns the number of elements of backing storage a ring built
// with the given count and flags would require, without allocating
// anything. It mirrors rte_ring_get_memsize: callers that want to supply
// their own storage (see NewWithSlots) call this first to size it.
func MemSizeOf[T any](count int, flags Flags) (int, error) {
	size, _, err := resolveSize(count, flags)
	if err != nil {
		return 0, err
	}
	return int(size), nil
}

// MemSizeBytes returns the cache-line-aligned byte footprint the backing
// storage for T would need, mirroring the RTE_ALIGN step
// rte_ring_get_memsize performs on top of the raw element count. Use this
// instead of computing MemSizeOf(count, flags) * unsafe.Sizeof(T) directly
// when sizing memory obtained from an external allocator, e.g.
// ringshm.MapSlots.
func MemSizeBytes[T any](count int, flags Flags) (int, error) {
	n, err := MemSizeOf[T](count, flags)
	if err != nil {
		return 0, err
	}
	var zero T
	return alignUp(n*int(unsafe.Sizeof(zero)), CacheLineSize), nil
}

// New allocates a Ring[T] with its own backing storage. count is either an
// exact power of two (usable capacity count-1) or, with ExactSize set, the
// exact usable capacity (storage is rounded up internally).
func New[T any](count int, flags Flags, opts ...Option) (*Ring[T], error) {
	size, capacity, err := resolveSize(count, flags)
	if err != nil {
		cfg := newConfig(opts)
		cfg.reporter.Reportf("ring.New[%T](%d, %#x): %v", *new(T), count, flags, err)
		return nil, err
	}
	r := newRing[T](make([]T, size), flags, capacity, opts)
	return r, nil
}

// NewWithSlots builds a Ring[T] over caller-supplied storage, sized exactly
// by an earlier call to MemSizeOf(count, flags). This mirrors rte_ring_init
// layered on memory obtained independently (rte_ring_create's split), and
// is the seam the ringshm subpackage uses to back a ring with mmap'd
// memory. Unlike New, the usable capacity is always len(slots)-1: when
// flags includes ExactSize the caller is expected to have already sized
// slots via MemSizeOf and to track its own smaller intended capacity
// separately, since the rounding MemSizeOf performs is lossy.
func NewWithSlots[T any](slots []T, flags Flags, opts ...Option) (*Ring[T], error) {
	if !isPowerOfTwo(uint32(len(slots))) {
		cfg := newConfig(opts)
		err := invalidSizeErr(len(slots), flags, "slots length must be a power of two, as returned by MemSizeOf")
		cfg.reporter.Reportf("ring.NewWithSlots[%T]: %v", *new(T), err)
		return nil, err
	}
	r := newRing[T](slots, flags, uint32(len(slots))-1, opts)
	return r, nil
}

func newRing[T any](slots []T, flags Flags, capacity uint32, opts []Option) *Ring[T] {
	cfg := newConfig(opts)
	r := &Ring[T]{
		mask:     uint32(len(slots)) - 1,
		cap:      capacity,
		flags:    flags,
		reporter: cfg.reporter,
		onClose:  cfg.onClose,
		slots:    slots,
	}
	r.prod.single = flags.singleProducer()
	r.cons.single = flags.singleConsumer()
	return r
}

// Close releases any closer attached via WithCloser (for example a
// ringshm-backed mmap region). It is a no-op if none was attached.
func (r *Ring[T]) Close() error {
	if r.onClose == nil {
		return nil
	}
	return r.onClose()
}

// Cap returns the ring's usable capacity, which is always less than the
// length of its backing storage (with ExactSize the storage is rounded up
// to nextPowerOfTwo32(count+1)).
func (r *Ring[T]) Cap() int {
	return int(r.cap)
}

// Count returns the number of elements currently enqueued, clamped to
// Cap(). The result is a snapshot; concurrent Enqueue/Dequeue calls may
// invalidate it immediately. The clamp matters in ExactSize mode, where
// mask > cap: a tail pair read mid-update can momentarily wrap to a raw
// difference above cap, and callers (e.g. FreeCount, ringmetrics) require
// 0 <= Count() <= Cap().
func (r *Ring[T]) Count() int {
	prodTail := r.prod.tail.LoadAcquire()
	consTail := r.cons.tail.LoadAcquire()
	count := int((prodTail - consTail) & r.mask)
	if count > int(r.cap) {
		return int(r.cap)
	}
	return count
}

// FreeCount returns the number of free slots currently available to
// producers. Like Count, this is a snapshot.
func (r *Ring[T]) FreeCount() int {
	return int(r.cap) - r.Count()
}

// Full reports whether the ring has no free slots, per Count/FreeCount's
// snapshot caveat.
func (r *Ring[T]) Full() bool {
	return r.FreeCount() == 0
}

// Empty reports whether the ring has no enqueued elements, per Count's
// snapshot caveat.
func (r *Ring[T]) Empty() bool {
	return r.Count() == 0
}
