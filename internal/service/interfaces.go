package service

import (
	"context"

	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=LockService,ConfigServiceWrapper

// ConfigService exposes the configuration cascade of clients and groups
// together with the global configuration.
type ConfigService interface {
	// Catalog lists every recognized option.
	Catalog(ctx context.Context) []models.OptionInfo

	// Effective returns the value a client runs with.
	Effective(ctx context.Context, clientID int64, option string) (options.Value, error)
	// Default returns the value a client would inherit without its own
	// override.
	Default(ctx context.Context, clientID int64, option string) (options.Value, error)
	Override(ctx context.Context, clientID int64, option string) (*options.Value, error)
	// SetOverride writes or, for a null value, removes a client override.
	// Enabling a disable-wins option removes the override as well.
	SetOverride(ctx context.Context, clientID int64, req models.SetValueRequest) error
	// AllConfig returns the overrides of a client grouped by section.
	AllConfig(ctx context.Context, clientID int64) (models.ConfigSections, error)
	// ClientConfig lists override, default and effective value of every
	// overridable option.
	ClientConfig(ctx context.Context, clientID int64) ([]models.ClientConfigView, error)

	GlobalValue(ctx context.Context, option string) (options.Value, error)
	SetGlobal(ctx context.Context, req models.SetValueRequest) error
	Globals(ctx context.Context) ([]models.OptionValue, error)

	GroupOverride(ctx context.Context, groupID int64, option string) (*options.Value, error)
	SetGroupOverride(ctx context.Context, groupID int64, req models.SetValueRequest) error
	GroupEffective(ctx context.Context, groupID int64, option string) (options.Value, error)
	GroupConfig(ctx context.Context, groupID int64) (models.ConfigSections, error)

	// EffectiveReport resolves options for many clients concurrently.
	EffectiveReport(ctx context.Context, req models.EffectiveReportRequest) ([]models.EffectiveReportRow, error)
}

type ClientService interface {
	Create(ctx context.Context, client models.Client) (models.Client, error)
	Get(ctx context.Context, id int64) (models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	Delete(ctx context.Context, id int64) error
}

type GroupService interface {
	Create(ctx context.Context, group models.Group) (models.Group, error)
	Get(ctx context.Context, id int64) (models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
	// Delete removes a group while holding its lock.
	Delete(ctx context.Context, id int64) error

	Memberships(ctx context.Context, clientID int64, filter models.MembershipType) ([]models.GroupMembership, error)
	SetMemberships(ctx context.Context, clientID int64, req models.SetMembershipsRequest) error
}

type LockService interface {
	// NewLock returns an unlocked handle for a client or group.
	NewLock(id int64) *Lock
	// Sweep removes expired locks and returns how many were deleted.
	Sweep(ctx context.Context) (int64, error)
}

type AccountService interface {
	Create(ctx context.Context, operator models.Operator) (models.Operator, error)
	Delete(ctx context.Context, login string) error
	List(ctx context.Context) ([]models.Operator, error)
	Login(ctx context.Context, operator models.Operator) (models.Operator, error)
	CreateToken(ctx context.Context, operator models.Operator) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// EnsureAdmin creates the initial "admin" operator on an empty
	// operators table.
	EnsureAdmin(ctx context.Context, password string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ConfigServiceWrapper decorates a ConfigService, for example with request
// validation.
type ConfigServiceWrapper interface {
	Wrap(ConfigService) ConfigService
}
