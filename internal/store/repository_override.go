package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/options"
)

// overrideRepository stores client and group overrides in the "devices"
// table. Clients and groups share the hardware id space, so one repository
// serves both.
type overrideRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewOverrideRepository(db *DB, logger *logger.Logger) OverrideRepository {
	logger.Debug().Msg("creating override repository")
	return &overrideRepository{
		db:     db,
		logger: logger,
	}
}

func (r *overrideRepository) Override(ctx context.Context, opt options.Option, id int64) (*options.Value, error) {
	return r.override(ctx, r.db, opt, id)
}

func (r *overrideRepository) override(ctx context.Context, q runner, opt options.Option, id int64) (*options.Value, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectOverrideQuery(id, opt.Identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row storedValue
	err = q.QueryRowContext(ctx, query, args...).Scan(&row.ivalue, &row.tvalue)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", "*overrideRepository.Override").Int64("id", id).Str("option", opt.Name).Msg("error reading override")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row.value(opt)
}

// SetOverride deletes the row when value is nil and upserts it otherwise.
// Unchanged values are not written.
func (r *overrideRepository) SetOverride(ctx context.Context, opt options.Option, id int64, value *options.Value) error {
	log := logger.FromContext(ctx)

	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		current, err := r.override(ctx, tx, opt, id)
		if err != nil && !errors.Is(err, options.ErrTypeMismatch) {
			return err
		}

		var query string
		var args []any
		switch {
		case value == nil && current == nil && err == nil:
			return nil
		case value == nil:
			query, args, err = r.db.buildDeleteOverrideQuery(id, opt.Identifier)
		case current != nil && current.Equal(*value):
			return nil
		default:
			query, args, err = r.db.buildUpsertOverrideQuery(id, opt.Identifier, *value)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*overrideRepository.SetOverride").Int64("id", id).Str("option", opt.Name).Msg("error writing override")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (r *overrideRepository) GroupValues(ctx context.Context, opt options.Option, clientID int64) ([]*options.Value, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectGroupValuesQuery(clientID, opt.Identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*overrideRepository.GroupValues").Int64("client_id", clientID).Msg("error reading group values")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var result []*options.Value
	for rows.Next() {
		var row storedValue
		if err = rows.Scan(&row.ivalue, &row.tvalue); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		v, err := row.value(opt)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *overrideRepository) Overrides(ctx context.Context, id int64, opts []options.Option) (map[string]options.Value, error) {
	log := logger.FromContext(ctx)

	byIdentifier := make(map[string]options.Option, len(opts))
	identifiers := make([]string, 0, len(opts))
	for _, opt := range opts {
		byIdentifier[opt.Identifier] = opt
		identifiers = append(identifiers, opt.Identifier)
	}

	query, args, err := r.db.buildSelectOverridesQuery(id, identifiers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*overrideRepository.Overrides").Int64("id", id).Msg("error reading overrides")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make(map[string]options.Value)
	for rows.Next() {
		var identifier string
		var row storedValue
		if err = rows.Scan(&identifier, &row.ivalue, &row.tvalue); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		opt, ok := byIdentifier[identifier]
		if !ok {
			continue
		}
		v, err := row.value(opt)
		if err != nil {
			return nil, err
		}
		if v != nil {
			result[opt.Name] = *v
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
