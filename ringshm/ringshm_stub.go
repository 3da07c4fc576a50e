// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package ringshm

import "errors"

func mapAnonymous(length int) ([]byte, error) {
	return nil, errors.New("ringshm: this platform is not supported")
}

func unmapAnonymous(data []byte) error {
	return errors.New("ringshm: this platform is not supported")
}
