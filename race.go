// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ring

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrency stress tests that trigger false
// positives under -race despite being correct under the atomix memory
// model (see the package doc's Race Detection section).
const RaceEnabled = true
