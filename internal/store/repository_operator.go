package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/models"
)

// operatorRepository stores console accounts in the "operators" table.
type operatorRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewOperatorRepository(db *DB, logger *logger.Logger) OperatorRepository {
	logger.Debug().Msg("creating operator repository")
	return &operatorRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOperator inserts the account and returns it with ID and CreatedAt
// filled in. A taken login yields [ErrLoginAlreadyExists].
func (r *operatorRepository) CreateOperator(ctx context.Context, operator models.Operator) (models.Operator, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertOperatorQuery(operator)
	if err != nil {
		return models.Operator{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&operator.ID, &operator.CreatedAt); err != nil {
		log.Err(err).Str("func", "*operatorRepository.CreateOperator").Msg("error inserting operator")
		if r.db.isUniqueViolation(err) {
			return models.Operator{}, ErrLoginAlreadyExists
		}
		return models.Operator{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	operator.Password = ""
	return operator, nil
}

func (r *operatorRepository) FindOperatorByLogin(ctx context.Context, login string) (models.Operator, error) {
	operators, err := r.selectOperators(ctx, &login)
	if err != nil {
		return models.Operator{}, err
	}
	if len(operators) == 0 {
		return models.Operator{}, ErrNoOperatorWasFound
	}
	return operators[0], nil
}

func (r *operatorRepository) ListOperators(ctx context.Context) ([]models.Operator, error) {
	return r.selectOperators(ctx, nil)
}

func (r *operatorRepository) selectOperators(ctx context.Context, login *string) ([]models.Operator, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectOperatorsQuery(login)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*operatorRepository.selectOperators").Msg("error selecting operators")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	operators := make([]models.Operator, 0)
	for rows.Next() {
		var o models.Operator
		if err = rows.Scan(&o.ID, &o.Login, &o.PasswordHash, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		operators = append(operators, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return operators, nil
}

func (r *operatorRepository) DeleteOperator(ctx context.Context, login string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteOperatorQuery(login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*operatorRepository.DeleteOperator").Msg("error deleting operator")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNoOperatorWasFound
	}
	return nil
}
