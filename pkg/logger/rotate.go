package logger

import (
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// maxFileSizeMB caps a single log file between monthly rotations.
const maxFileSizeMB = 100

// monthlyRotator starts a new lumberjack file when the calendar month changes.
type monthlyRotator struct {
	mu    sync.Mutex
	file  *lumberjack.Logger
	now   func() time.Time
	month time.Month
	year  int
}

func newMonthlyRotator(file *lumberjack.Logger, now func() time.Time) *monthlyRotator {
	t := now()
	return &monthlyRotator{file: file, now: now, month: t.Month(), year: t.Year()}
}

func (r *monthlyRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.now()
	if t.Month() != r.month || t.Year() != r.year {
		r.month, r.year = t.Month(), t.Year()
		if err := r.file.Rotate(); err != nil {
			return 0, err
		}
	}
	return r.file.Write(p)
}

func (r *monthlyRotator) Sync() error {
	return nil
}
