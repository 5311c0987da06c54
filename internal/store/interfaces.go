package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// GlobalConfigRepository reads and writes the "config" table.
type GlobalConfigRepository interface {
	// GlobalValue returns nil when no row is stored.
	GlobalValue(ctx context.Context, opt options.Option) (*options.Value, error)
	// SetGlobalValue writes value unless it equals the stored one.
	SetGlobalValue(ctx context.Context, opt options.Option, value options.Value) error
	// GlobalValues returns the stored values of opts keyed by option name.
	// Options without a row are missing from the result.
	GlobalValues(ctx context.Context, opts []options.Option) (map[string]options.Value, error)
}

// OverrideRepository reads and writes client and group overrides in the
// "devices" table.
type OverrideRepository interface {
	Override(ctx context.Context, opt options.Option, id int64) (*options.Value, error)
	// SetOverride deletes the row for a nil value and skips unchanged values.
	SetOverride(ctx context.Context, opt options.Option, id int64, value *options.Value) error
	// GroupValues returns one entry per group the client belongs to,
	// excluded memberships not counted. Entries are nil where the group has
	// no override.
	GroupValues(ctx context.Context, opt options.Option, clientID int64) ([]*options.Value, error)
	// Overrides returns the stored overrides of one object keyed by option
	// name.
	Overrides(ctx context.Context, id int64, opts []options.Option) (map[string]options.Value, error)
}

type ClientRepository interface {
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	GetClient(ctx context.Context, id int64) (models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	DeleteClient(ctx context.Context, id int64) error
}

type GroupRepository interface {
	CreateGroup(ctx context.Context, group models.Group) (models.Group, error)
	GetGroup(ctx context.Context, id int64) (models.Group, error)
	GetGroupByName(ctx context.Context, name string) (models.Group, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
	// DeleteGroup removes the group with its memberships and overrides.
	DeleteGroup(ctx context.Context, id int64) error
}

type MembershipRepository interface {
	Memberships(ctx context.Context, clientID int64, filter models.MembershipType) ([]models.GroupMembership, error)
	// SetMemberships applies the requested types. Unknown groups are
	// skipped; Automatic removes a manual membership.
	SetMemberships(ctx context.Context, clientID int64, memberships map[int64]models.MembershipType) error
}

type LockRepository interface {
	// AcquireLock takes the lock on id unless a lock younger than validity
	// exists. It reports whether the lock was obtained.
	AcquireLock(ctx context.Context, id int64, now time.Time, validity time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, id int64) error
	// SweepLocks deletes locks older than validity and returns their count.
	SweepLocks(ctx context.Context, now time.Time, validity time.Duration) (int64, error)
}

type OperatorRepository interface {
	CreateOperator(ctx context.Context, operator models.Operator) (models.Operator, error)
	FindOperatorByLogin(ctx context.Context, login string) (models.Operator, error)
	ListOperators(ctx context.Context) ([]models.Operator, error)
	DeleteOperator(ctx context.Context, login string) error
}
