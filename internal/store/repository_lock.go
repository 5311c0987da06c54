package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-braintacle/internal/logger"
)

// lockRepository implements advisory locks on clients and groups with one
// row per locked id in the "locks" table.
type lockRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewLockRepository(db *DB, logger *logger.Logger) LockRepository {
	logger.Debug().Msg("creating lock repository")
	return &lockRepository{
		db:     db,
		logger: logger,
	}
}

// AcquireLock first removes an expired lock on id, then tries to insert a
// new one. An insert that hits an existing row means somebody else holds
// the lock. Timestamps are stored in UTC: SQLite compares them as text.
func (r *lockRepository) AcquireLock(ctx context.Context, id int64, now time.Time, validity time.Duration) (bool, error) {
	log := logger.FromContext(ctx)
	now = now.UTC()

	var acquired bool
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.buildDeleteExpiredLocksQuery(&id, now.Add(-validity))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = r.db.buildInsertLockQuery(id, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		acquired = n == 1
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*lockRepository.AcquireLock").Int64("id", id).Msg("error acquiring lock")
		return false, err
	}

	return acquired, nil
}

func (r *lockRepository) ReleaseLock(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := execDelete(ctx, r.db, r.db, "locks", "hardware_id", id); err != nil {
		log.Err(err).Str("func", "*lockRepository.ReleaseLock").Int64("id", id).Msg("error releasing lock")
		return err
	}
	return nil
}

func (r *lockRepository) SweepLocks(ctx context.Context, now time.Time, validity time.Duration) (int64, error) {
	log := logger.FromContext(ctx)
	now = now.UTC()

	query, args, err := r.db.buildDeleteExpiredLocksQuery(nil, now.Add(-validity))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*lockRepository.SweepLocks").Msg("error deleting expired locks")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}
