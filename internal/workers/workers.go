package workers

import (
	"context"

	"github.com/MKhiriev/go-braintacle/internal/config"
	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers creates the background jobs of the server. A zero
// LockSweepInterval disables the lock sweeper.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.LockSweepInterval > 0 {
		w.workers = append(w.workers, NewLockSweeper(services.LockService, cfg.LockSweepInterval, logger))
	}
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
