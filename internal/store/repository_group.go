package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/models"
)

type groupRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewGroupRepository(db *DB, logger *logger.Logger) GroupRepository {
	logger.Debug().Msg("creating group repository")
	return &groupRepository{
		db:     db,
		logger: logger,
	}
}

// CreateGroup inserts the shared hardware row and the group row in one
// transaction.
func (r *groupRepository) CreateGroup(ctx context.Context, group models.Group) (models.Group, error) {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.buildInsertGroupHardwareQuery(group)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&group.ID); err != nil {
			if r.db.isUniqueViolation(err) {
				return ErrGroupAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = r.db.buildInsertGroupQuery(group.ID, group)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.CreateGroup").Str("name", group.Name).Msg("error creating group")
		return models.Group{}, err
	}

	return group, nil
}

func (r *groupRepository) GetGroup(ctx context.Context, id int64) (models.Group, error) {
	return r.selectOne(ctx, sq.Eq{"h.id": id})
}

func (r *groupRepository) GetGroupByName(ctx context.Context, name string) (models.Group, error) {
	return r.selectOne(ctx, sq.Eq{"h.name": name})
}

func (r *groupRepository) ListGroups(ctx context.Context) ([]models.Group, error) {
	return r.selectGroups(ctx, nil)
}

func (r *groupRepository) selectOne(ctx context.Context, where sq.Sqlizer) (models.Group, error) {
	groups, err := r.selectGroups(ctx, where)
	if err != nil {
		return models.Group{}, err
	}
	if len(groups) == 0 {
		return models.Group{}, ErrGroupNotFound
	}
	return groups[0], nil
}

func (r *groupRepository) selectGroups(ctx context.Context, where sq.Sqlizer) ([]models.Group, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectGroupsQuery(where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.selectGroups").Msg("error selecting groups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	groups := make([]models.Group, 0)
	for rows.Next() {
		var g models.Group
		var revalidate sql.NullTime
		if err = rows.Scan(&g.ID, &g.Name, &g.Description, &g.Query, &g.CreatedAt, &revalidate); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		g.CacheCreationDate = revalidate.Time
		groups = append(groups, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return groups, nil
}

func (r *groupRepository) DeleteGroup(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		for _, target := range []struct{ table, column string }{
			{"groups_cache", "group_id"},
			{"devices", "hardware_id"},
			{"groups", "hardware_id"},
		} {
			if err := execDelete(ctx, r.db, tx, target.table, target.column, id); err != nil {
				log.Err(err).Str("func", "*groupRepository.DeleteGroup").Str("table", target.table).Msg("error deleting group")
				return err
			}
		}

		query, args, err := r.db.buildDeleteGroupHardwareQuery(id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*groupRepository.DeleteGroup").Msg("error deleting group")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrGroupNotFound
		}
		return nil
	})
}
