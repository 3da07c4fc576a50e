// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"fmt"
	"log/slog"
)

// Reporter is the embedder-injected hook used to surface a human-readable
// message when a construction-time validation fails. The core never logs
// runtime transfer under-delivery (spec §4.F): Reportf is called at most
// once per failed New/NewWithSlots call.
type Reporter interface {
	Reportf(format string, args ...any)
}

// DefaultReporter logs through log/slog at LevelError. It is the default
// Reporter used when no WithReporter Option is supplied; embedders that
// want a different sink (colorized console output, an OTel log bridge,
// etc.) can supply their own Reporter backed by any slog.Handler without
// this package importing it.
type DefaultReporter struct {
	Logger *slog.Logger
}

// Reportf implements Reporter.
func (d DefaultReporter) Reportf(format string, args ...any) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error(fmt.Sprintf(format, args...))
}
