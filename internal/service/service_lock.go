package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/internal/store"
)

// lockValidityOption holds the lock lifetime in seconds.
const lockValidityOption = "lockValidity"

type lockService struct {
	locks   store.LockRepository
	globals store.GlobalConfigRepository
	catalog *options.Catalog
	now     func() time.Time
	logger  *logger.Logger
}

func NewLockService(locks store.LockRepository, globals store.GlobalConfigRepository, catalog *options.Catalog, logger *logger.Logger) LockService {
	return &lockService{
		locks:   locks,
		globals: globals,
		catalog: catalog,
		now:     utcNow,
		logger:  logger,
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func (s *lockService) NewLock(id int64) *Lock {
	return &Lock{id: id, service: s}
}

func (s *lockService) Sweep(ctx context.Context) (int64, error) {
	validity, err := s.validity(ctx)
	if err != nil {
		return 0, err
	}
	return s.locks.SweepLocks(ctx, s.now(), validity)
}

// validity reads the global lock lifetime, falling back to the built-in
// default.
func (s *lockService) validity(ctx context.Context) (time.Duration, error) {
	opt, err := s.catalog.Lookup(lockValidityOption)
	if err != nil {
		return 0, err
	}
	v, err := s.globals.GlobalValue(ctx, opt)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", lockValidityOption, err)
	}
	if v == nil {
		v = &opt.Default
	}
	return time.Duration(v.Int) * time.Second, nil
}

// Lock is an advisory lock on a client or group. Locks nest: every
// successful Lock must be matched by an Unlock and the row is released
// with the outermost Unlock. A Lock is not safe for concurrent use.
type Lock struct {
	id      int64
	service *lockService

	nestCount int
	expires   time.Time
}

// Lock acquires the lock. It reports false without error when somebody
// else holds it.
func (l *Lock) Lock(ctx context.Context) (bool, error) {
	if l.nestCount > 0 {
		l.nestCount++
		return true, nil
	}

	validity, err := l.service.validity(ctx)
	if err != nil {
		return false, err
	}

	now := l.service.now()
	ok, err := l.service.locks.AcquireLock(ctx, l.id, now, validity)
	if err != nil || !ok {
		return false, err
	}

	l.nestCount = 1
	l.expires = now.Add(validity)
	return true, nil
}

// Unlock releases one nesting level. If the lock has already expired, the
// row may belong to somebody else by now and is left alone.
func (l *Lock) Unlock(ctx context.Context) error {
	if l.nestCount == 0 {
		return nil
	}
	l.nestCount--
	if l.nestCount > 0 {
		return nil
	}

	expires := l.expires
	l.expires = time.Time{}

	if l.service.now().After(expires) {
		logger.FromContext(ctx).Warn().Int64("id", l.id).Msg("Lock expired prematurely. Increase lock lifetime.")
		return nil
	}
	return l.service.locks.ReleaseLock(ctx, l.id)
}

func (l *Lock) IsLocked() bool {
	return l.nestCount > 0
}
