// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"testing"
	"unsafe"
)

// TestCursorPadding asserts the pad fields between prod and cons actually
// separate the two cursor blocks by at least one cache line, the runtime
// equivalent of the teacher package's compile-time layout assumptions.
func TestCursorPadding(t *testing.T) {
	var r Ring[int]
	prodOff := unsafe.Offsetof(r.prod)
	consOff := unsafe.Offsetof(r.cons)

	diff := consOff - prodOff
	if diff < CacheLineSize {
		t.Fatalf("prod/cons cursor blocks are only %d bytes apart, want >= %d", diff, CacheLineSize)
	}
}

func TestResolveMoveCount(t *testing.T) {
	tests := []struct {
		name  string
		avail uint32
		n     uint32
		fixed bool
		want  uint32
	}{
		{"fixed enough", 10, 4, true, 4},
		{"fixed short", 3, 4, true, 0},
		{"fixed exact", 4, 4, true, 4},
		{"burst enough", 10, 4, false, 4},
		{"burst short", 3, 4, false, 3},
		{"burst zero avail", 0, 4, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveMoveCount(tt.avail, tt.n, tt.fixed); got != tt.want {
				t.Fatalf("resolveMoveCount(%d, %d, %v) = %d, want %d", tt.avail, tt.n, tt.fixed, got, tt.want)
			}
		})
	}
}
