package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/models"
)

type clientRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

func (r *clientRepository) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertClientQuery(client)
	if err != nil {
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&client.ID); err != nil {
		log.Err(err).Str("func", "*clientRepository.CreateClient").Msg("error inserting client")
		if r.db.isUniqueViolation(err) {
			return models.Client{}, ErrClientAlreadyExists
		}
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return client, nil
}

func (r *clientRepository) GetClient(ctx context.Context, id int64) (models.Client, error) {
	clients, err := r.selectClients(ctx, &id)
	if err != nil {
		return models.Client{}, err
	}
	if len(clients) == 0 {
		return models.Client{}, ErrClientNotFound
	}
	return clients[0], nil
}

func (r *clientRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	return r.selectClients(ctx, nil)
}

func (r *clientRepository) selectClients(ctx context.Context, id *int64) ([]models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectClientsQuery(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.selectClients").Msg("error selecting clients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clients := make([]models.Client, 0)
	for rows.Next() {
		var c models.Client
		var lastContact sql.NullTime
		if err = rows.Scan(&c.ID, &c.DeviceID, &c.Name, &lastContact); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		c.LastContact = lastContact.Time
		clients = append(clients, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return clients, nil
}

// DeleteClient removes the client together with its overrides and
// memberships.
func (r *clientRepository) DeleteClient(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.buildSelectClientsQuery(&id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		var c models.Client
		var lastContact sql.NullTime
		err = tx.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.DeviceID, &c.Name, &lastContact)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrClientNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		for _, target := range []struct{ table, column string }{
			{"devices", "hardware_id"},
			{"groups_cache", "hardware_id"},
			{"locks", "hardware_id"},
			{"hardware", "id"},
		} {
			if err = execDelete(ctx, r.db, tx, target.table, target.column, id); err != nil {
				log.Err(err).Str("func", "*clientRepository.DeleteClient").Str("table", target.table).Msg("error deleting client")
				return err
			}
		}

		log.Info().Int64("client_id", id).Str("name", c.Name).Msg("client deleted")
		return nil
	})
}

func execDelete(ctx context.Context, db *DB, q runner, table, column string, id int64) error {
	query, args, err := db.buildDeleteHardwareQuery(table, column, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
