// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringshm backs a ring.Ring[T]'s slots with an anonymous mmap
// region instead of a Go-managed slice, so the storage can be placed in
// shared memory (for example to hand off between a process and a
// privilege-separated child) or simply to keep GC-visible pointers out of
// a hot ring buffer's backing array.
//
// It depends on the ring package, never the reverse.
package ringshm

import (
	"fmt"
	"unsafe"

	"github.com/kimjh0/dpdk-ring"
)

// MapSlots allocates an anonymous mmap region of ring.MemSizeBytes(count,
// flags) bytes, large enough for ring.MemSizeOf(count, flags) elements of T
// and rounded up to a cache line, and returns its first MemSizeOf elements
// as a []T, for use with ring.NewWithSlots. The returned closer unmaps the
// region; callers should attach it with ring.WithCloser so (*Ring[T]).Close
// releases it.
//
// T must not contain Go pointers: the mmap'd region is invisible to the
// garbage collector, so any pointer stored in it will not keep its target
// alive and may be collected out from under the ring.
func MapSlots[T any](count int, flags ring.Flags) ([]T, func() error, error) {
	n, err := ring.MemSizeOf[T](count, flags)
	if err != nil {
		return nil, nil, err
	}

	length, err := ring.MemSizeBytes[T](count, flags)
	if err != nil {
		return nil, nil, err
	}
	data, err := mapAnonymous(length)
	if err != nil {
		return nil, nil, fmt.Errorf("ringshm: %w: %v", ring.ErrAllocFailed, err)
	}

	// length is cache-line-aligned and may exceed n*sizeof(T); only the
	// first n elements are ever addressed through slots.
	slots := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), n)
	closer := func() error { return unmapAnonymous(data) }
	return slots, closer, nil
}
