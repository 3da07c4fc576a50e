// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// cursor is one side's (producer or consumer) reservation/publication
// state: a monotonically increasing, wrap-allowed 32-bit head and tail
// pair, plus the single/multi mode tag fixed at construction. Component D
// from spec §4.D / §3 "Cursor block".
type cursor struct {
	_      pad
	head   atomix.Uint32
	_      pad
	tail   atomix.Uint32
	_      pad
	single bool
}

// moveHead reserves n slots (or fewer, in burst mode) on this cursor,
// bounded by the occupancy/capacity computed against the opposite side's
// published tail. It implements spec §4.D's "move head (shared mode)" via
// a CAS loop when cur.single is false, and "move head (exclusive mode)"
// via a plain load-store when cur.single is true. It returns the
// reservation's starting position and the number of slots actually
// reserved.
//
// capacityFn computes the number of slots available to reserve given a
// snapshot of cur.head and the opposite side's tail; it differs between
// enqueue (free = capacity - (prod.head - cons.tail)) and dequeue
// (occupied = prod.tail - cons.head), so it is passed in rather than
// hard-coded here.
func moveHead(cur *cursor, capacityFn func(headSnapshot uint32) uint32, n uint32, fixed bool) (snapshot, moved uint32) {
	if cur.single {
		snapshot = cur.head.LoadRelaxed()
		avail := capacityFn(snapshot)
		moved = resolveMoveCount(avail, n, fixed)
		if moved == 0 {
			return snapshot, 0
		}
		cur.head.StoreRelaxed(snapshot + moved)
		return snapshot, moved
	}

	sw := spin.Wait{}
	for {
		snapshot = cur.head.LoadAcquire()
		avail := capacityFn(snapshot)
		moved = resolveMoveCount(avail, n, fixed)
		if moved == 0 {
			return snapshot, 0
		}
		if cur.head.CompareAndSwapAcqRel(snapshot, snapshot+moved) {
			return snapshot, moved
		}
		sw.Once()
	}
}

// resolveMoveCount applies the fixed/burst policy from spec §4.E step 2:
// fixed mode fails (returns 0) unless the full n is available; burst mode
// takes whatever is available, up to n.
func resolveMoveCount(avail, n uint32, fixed bool) uint32 {
	if fixed {
		if n > avail {
			return 0
		}
		return n
	}
	if n < avail {
		return n
	}
	return avail
}

// publishTail waits until cur.tail reaches snapshot (the position this
// caller's reservation started at), then advances it to snapshot+n. This
// serializes publication in reservation order regardless of the order in
// which concurrent copies finish (spec §4.D "Publish tail"). In exclusive
// mode there is at most one live reservation at a time so the wait
// degenerates to a straight store.
func publishTail(cur *cursor, snapshot, n uint32) {
	if cur.single {
		cur.tail.StoreRelease(snapshot + n)
		return
	}

	sw := spin.Wait{}
	for cur.tail.LoadAcquire() != snapshot {
		sw.Once()
	}
	cur.tail.StoreRelease(snapshot + n)
}
