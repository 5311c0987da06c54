package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/options"
)

// globalConfigRepository stores global option values in the "config" table,
// one row per option identifier.
type globalConfigRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewGlobalConfigRepository(db *DB, logger *logger.Logger) GlobalConfigRepository {
	logger.Debug().Msg("creating global config repository")
	return &globalConfigRepository{
		db:     db,
		logger: logger,
	}
}

func (r *globalConfigRepository) GlobalValue(ctx context.Context, opt options.Option) (*options.Value, error) {
	return r.globalValue(ctx, r.db, opt)
}

func (r *globalConfigRepository) globalValue(ctx context.Context, q runner, opt options.Option) (*options.Value, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectGlobalQuery(opt.Identifier)
	if err != nil {
		log.Err(err).Str("func", "*globalConfigRepository.GlobalValue").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row storedValue
	err = q.QueryRowContext(ctx, query, args...).Scan(&row.ivalue, &row.tvalue)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", "*globalConfigRepository.GlobalValue").Str("option", opt.Name).Msg("error reading global value")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row.value(opt)
}

// SetGlobalValue upserts the row for opt. Writing the value that is already
// stored is a no-op.
func (r *globalConfigRepository) SetGlobalValue(ctx context.Context, opt options.Option, value options.Value) error {
	log := logger.FromContext(ctx)

	if err := value.Check(opt); err != nil {
		return err
	}

	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		current, err := r.globalValue(ctx, tx, opt)
		if err != nil && !errors.Is(err, options.ErrTypeMismatch) {
			return err
		}
		if current != nil && current.Equal(value) {
			return nil
		}

		query, args, err := r.db.buildUpsertGlobalQuery(opt.Identifier, value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*globalConfigRepository.SetGlobalValue").Str("option", opt.Name).Msg("error writing global value")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		log.Info().Str("option", opt.Name).Stringer("value", value).Msg("global value changed")
		return nil
	})
}

func (r *globalConfigRepository) GlobalValues(ctx context.Context, opts []options.Option) (map[string]options.Value, error) {
	log := logger.FromContext(ctx)

	byIdentifier := make(map[string][]options.Option, len(opts))
	identifiers := make([]string, 0, len(opts))
	for _, opt := range opts {
		if _, seen := byIdentifier[opt.Identifier]; !seen {
			identifiers = append(identifiers, opt.Identifier)
		}
		byIdentifier[opt.Identifier] = append(byIdentifier[opt.Identifier], opt)
	}

	query, args, err := r.db.buildSelectGlobalsQuery(identifiers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*globalConfigRepository.GlobalValues").Msg("error reading global values")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make(map[string]options.Value, len(opts))
	for rows.Next() {
		var identifier string
		var row storedValue
		if err = rows.Scan(&identifier, &row.ivalue, &row.tvalue); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		for _, opt := range byIdentifier[identifier] {
			v, err := row.value(opt)
			if err != nil {
				return nil, err
			}
			if v != nil {
				result[opt.Name] = *v
			}
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
