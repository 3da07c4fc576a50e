// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "testing"

func TestAlignUp(t *testing.T) {
	tests := []struct {
		v, a, want int
	}{
		{0, 64, 0},
		{1, 64, 64},
		{64, 64, 64},
		{65, 64, 128},
		{127, 64, 128},
		{128, 64, 128},
	}

	for _, tt := range tests {
		if got := alignUp(tt.v, tt.a); got != tt.want {
			t.Fatalf("alignUp(%d, %d) = %d, want %d", tt.v, tt.a, got, tt.want)
		}
	}
}

func TestNextPowerOfTwo32(t *testing.T) {
	tests := []struct{ x, want uint32 }{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{100, 128},
	}

	for _, tt := range tests {
		if got := nextPowerOfTwo32(tt.x); got != tt.want {
			t.Fatalf("nextPowerOfTwo32(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}
