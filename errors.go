// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrInvalidSize indicates a ring was requested with an invalid count for
// the given flags: not a power of two of at least 2 (without ExactSize),
// zero or negative, or exceeding MaxRingSize. This is the EINVAL-equivalent
// construction error from spec §7.
var ErrInvalidSize = errors.New("ring: invalid size")

// ErrAllocFailed indicates the backing storage for a ring could not be
// obtained. This is the ENOMEM-equivalent construction error from spec §7.
// The stdlib allocator path (New) never returns this; it surfaces only
// when an injected allocator hook (see NewWithSlots callers such as
// ringshm) reports a failure.
var ErrAllocFailed = errors.New("ring: allocation failed")

// sizeError wraps ErrInvalidSize with the offending count/flags so
// callers get a human-readable diagnostic via error.Error() in addition
// to errors.Is(err, ErrInvalidSize) support.
type sizeError struct {
	count  int
	flags  Flags
	reason string
}

func (e *sizeError) Error() string {
	return fmt.Sprintf("ring: invalid size %d (flags=%#x): %s", e.count, e.flags, e.reason)
}

func (e *sizeError) Unwrap() error { return ErrInvalidSize }

func invalidSizeErr(count int, flags Flags, reason string) error {
	return &sizeError{count: count, flags: flags, reason: reason}
}

// IsInvalidSize reports whether err is (or wraps) ErrInvalidSize.
func IsInvalidSize(err error) bool {
	return errors.Is(err, ErrInvalidSize)
}

// IsAllocFailed reports whether err is (or wraps) ErrAllocFailed.
func IsAllocFailed(err error) bool {
	return errors.Is(err, ErrAllocFailed)
}

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Enqueue: the queue is full (backpressure)
// For Dequeue: the queue is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry the operation later (with backoff or yield) rather than propagating
// the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Enqueue(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if ring.IsWouldBlock(err) {
//	        backoff.Wait()  // Adaptive backpressure
//	        continue
//	    }
//	    return err  // Unexpected error
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
