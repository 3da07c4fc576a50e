// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// config collects the optional, non-flag construction settings applied
// by Option values.
type config struct {
	reporter Reporter
	onClose  func() error
}

// Option configures optional aspects of Ring construction beyond the
// required Flags. Options replace the teacher package's Builder, whose
// role there was choosing among four exported algorithm types; a single
// Ring[T] type has no algorithm to choose, only these auxiliary hooks.
type Option func(*config)

// WithReporter overrides the default log/slog-backed Reporter used to
// surface construction-time validation failures.
func WithReporter(r Reporter) Option {
	return func(c *config) { c.reporter = r }
}

// WithCloser attaches a cleanup function invoked by (*Ring[T]).Close.
// It exists so backing storage obtained from an external allocator (for
// example ring/ringshm's mmap-backed slots) can release that memory when
// the ring built with NewWithSlots is done, mirroring rte_ring_free's
// role of releasing what rte_ring_create/rte_ring_init acquired.
func WithCloser(onClose func() error) Option {
	return func(c *config) { c.onClose = onClose }
}

func newConfig(opts []Option) config {
	c := config{reporter: DefaultReporter{}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
