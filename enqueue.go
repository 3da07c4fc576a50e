// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// EnqueueBulk moves either all of elems or none of them onto the ring.
// It returns len(elems) on success or 0 if there was not enough free
// capacity for the entire slice.
func (r *Ring[T]) EnqueueBulk(elems []T) int {
	return r.enqueue(elems, true)
}

// EnqueueBurst moves as many of elems as fit, in order starting from
// elems[0], and returns how many were moved. It returns 0 if the ring is
// full.
func (r *Ring[T]) EnqueueBurst(elems []T) int {
	return r.enqueue(elems, false)
}

// Enqueue moves a single element onto the ring, or returns ErrWouldBlock
// if the ring is full.
func (r *Ring[T]) Enqueue(elem T) error {
	if r.enqueue([]T{elem}, true) == 0 {
		return ErrWouldBlock
	}
	return nil
}

func (r *Ring[T]) enqueue(elems []T, fixed bool) int {
	n := uint32(len(elems))
	if n == 0 {
		return 0
	}

	snapshot, moved := moveHead(&r.prod, func(prodHead uint32) uint32 {
		consTail := r.cons.tail.LoadAcquire()
		return r.cap - (prodHead - consTail)
	}, n, fixed)
	if moved == 0 {
		return 0
	}

	for i := uint32(0); i < moved; i++ {
		r.slots[(snapshot+i)&r.mask] = elems[i]
	}

	publishTail(&r.prod, snapshot, moved)
	return int(moved)
}
