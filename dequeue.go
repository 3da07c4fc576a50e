// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// DequeueBulk moves either len(out) elements off the ring into out or
// none at all. It returns len(out) on success or 0 if fewer than len(out)
// elements were available.
func (r *Ring[T]) DequeueBulk(out []T) int {
	return r.dequeue(out, true)
}

// DequeueBurst moves as many elements as are available, up to len(out),
// into out starting at out[0], and returns how many were moved. It
// returns 0 if the ring is empty.
func (r *Ring[T]) DequeueBurst(out []T) int {
	return r.dequeue(out, false)
}

// Dequeue removes a single element from the ring, or returns
// (zero value, ErrWouldBlock) if the ring is empty.
func (r *Ring[T]) Dequeue() (T, error) {
	var out [1]T
	if r.dequeue(out[:], true) == 0 {
		var zero T
		return zero, ErrWouldBlock
	}
	return out[0], nil
}

func (r *Ring[T]) dequeue(out []T, fixed bool) int {
	n := uint32(len(out))
	if n == 0 {
		return 0
	}

	snapshot, moved := moveHead(&r.cons, func(consHead uint32) uint32 {
		prodTail := r.prod.tail.LoadAcquire()
		return prodTail - consHead
	}, n, fixed)
	if moved == 0 {
		return 0
	}

	for i := uint32(0); i < moved; i++ {
		out[i] = r.slots[(snapshot+i)&r.mask]
	}

	publishTail(&r.cons, snapshot, moved)
	return int(moved)
}
