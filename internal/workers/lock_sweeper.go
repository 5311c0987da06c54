package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-braintacle/internal/logger"
)

// LockSweeper periodically deletes client and group locks that outlived the
// configured lock validity. Locks left behind by crashed requests would
// otherwise block group deletion until someone acquires them again.
type LockSweeper struct {
	locks    lockSweeper
	interval time.Duration
	logger   *logger.Logger

	// done is closed when the sweep loop exits.
	done chan struct{}
}

func NewLockSweeper(locks lockSweeper, interval time.Duration, logger *logger.Logger) *LockSweeper {
	return &LockSweeper{
		locks:    locks,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

func (s *LockSweeper) Run(ctx context.Context) {
	go s.loop(ctx)
}

func (s *LockSweeper) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("lock sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *LockSweeper) sweep(ctx context.Context) {
	n, err := s.locks.Sweep(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "LockSweeper.sweep").Msg("error sweeping expired locks")
		return
	}
	if n > 0 {
		s.logger.Debug().Int64("count", n).Msg("expired locks removed")
	}
}

// Done is closed once the sweeper has stopped.
func (s *LockSweeper) Done() <-chan struct{} {
	return s.done
}
