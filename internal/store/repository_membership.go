package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/models"
)

type membershipRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewMembershipRepository(db *DB, logger *logger.Logger) MembershipRepository {
	logger.Debug().Msg("creating membership repository")
	return &membershipRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *membershipRepository) Memberships(ctx context.Context, clientID int64, filter models.MembershipType) ([]models.GroupMembership, error) {
	return r.memberships(ctx, r.db, clientID, filter)
}

func (r *membershipRepository) memberships(ctx context.Context, q runner, clientID int64, filter models.MembershipType) ([]models.GroupMembership, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectMembershipsQuery(clientID, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.Memberships").Int64("client_id", clientID).Msg("error selecting memberships")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.GroupMembership, 0)
	for rows.Next() {
		var m models.GroupMembership
		if err = rows.Scan(&m.GroupID, &m.GroupName, &m.Type); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// SetMemberships compares the requested types with the stored ones:
//   - Automatic drops a manual row and expires the group cache so the
//     agent server re-evaluates the group query;
//   - Always or Never inserts the row, or updates it when the type differs.
//
// Ids that do not name a group are skipped.
func (r *membershipRepository) SetMemberships(ctx context.Context, clientID int64, memberships map[int64]models.MembershipType) error {
	log := logger.FromContext(ctx)

	if len(memberships) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(memberships))
	for id := range memberships {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		groups, err := r.existingGroups(ctx, tx, ids)
		if err != nil {
			return err
		}

		current, err := r.memberships(ctx, tx, clientID, models.MembershipAny)
		if err != nil {
			return err
		}
		stored := make(map[int64]models.MembershipType, len(current))
		for _, m := range current {
			stored[m.GroupID] = m.Type
		}

		for _, groupID := range ids {
			wanted := memberships[groupID]
			if !groups[groupID] {
				continue
			}
			old, exists := stored[groupID]

			var query string
			var args []any
			switch {
			case wanted == models.MembershipAutomatic:
				if !exists || old == models.MembershipAutomatic {
					continue
				}
				query, args, err = r.db.buildDeleteMembershipQuery(clientID, groupID)
				if err = r.exec(ctx, tx, query, args, err); err != nil {
					return err
				}
				query, args, err = r.db.buildExpireGroupCacheQuery(groupID, r.now())
			case !exists:
				query, args, err = r.db.buildInsertMembershipQuery(clientID, groupID, wanted)
			case old != wanted:
				query, args, err = r.db.buildUpdateMembershipQuery(clientID, groupID, wanted)
			default:
				continue
			}

			if err = r.exec(ctx, tx, query, args, err); err != nil {
				log.Err(err).Str("func", "*membershipRepository.SetMemberships").
					Int64("client_id", clientID).Int64("group_id", groupID).Msg("error writing membership")
				return err
			}
		}
		return nil
	})
}

func (r *membershipRepository) existingGroups(ctx context.Context, tx *sql.Tx, ids []int64) (map[int64]bool, error) {
	query, args, err := r.db.buildSelectGroupIDsQuery(ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	groups := make(map[int64]bool, len(ids))
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		groups[id] = true
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return groups, nil
}

func (r *membershipRepository) exec(ctx context.Context, tx *sql.Tx, query string, args []any, buildErr error) error {
	if buildErr != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
