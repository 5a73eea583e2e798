// internal/cli/progress.go
package cli

import (
	"time"

	"github.com/charmbracelet/log"
)

// progress logs completion of an operation with its elapsed time at debug
// level
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
