// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package ringshm_test

import (
	"testing"

	"github.com/kimjh0/dpdk-ring"
	"github.com/kimjh0/dpdk-ring/ringshm"
)

func TestMapSlotsRoundTrip(t *testing.T) {
	slots, closer, err := ringshm.MapSlots[int64](7, ring.ExactSize)
	if err != nil {
		t.Fatalf("MapSlots: %v", err)
	}
	defer closer()

	r, err := ring.NewWithSlots[int64](slots, ring.ExactSize)
	if err != nil {
		t.Fatalf("NewWithSlots: %v", err)
	}

	for i := range int64(7) {
		if err := r.Enqueue(i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	for i := range int64(7) {
		v, err := r.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(%d): %v", i, err)
		}
		if v != i {
			t.Fatalf("Dequeue(%d) = %d, want %d", i, v, i)
		}
	}
}
