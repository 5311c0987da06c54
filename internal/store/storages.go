package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-braintacle/internal/config"
	"github.com/MKhiriev/go-braintacle/internal/logger"
)

// Storages bundles every repository over one connection.
type Storages struct {
	DB *DB

	GlobalConfigRepository GlobalConfigRepository
	OverrideRepository     OverrideRepository
	ClientRepository       ClientRepository
	GroupRepository        GroupRepository
	MembershipRepository   MembershipRepository
	LockRepository         LockRepository
	OperatorRepository     OperatorRepository
}

// NewStorages connects to the database named in cfg, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                     db,
		GlobalConfigRepository: NewGlobalConfigRepository(db, log),
		OverrideRepository:     NewOverrideRepository(db, log),
		ClientRepository:       NewClientRepository(db, log),
		GroupRepository:        NewGroupRepository(db, log),
		MembershipRepository:   NewMembershipRepository(db, log),
		LockRepository:         NewLockRepository(db, log),
		OperatorRepository:     NewOperatorRepository(db, log),
	}
}

// Close closes the underlying connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
