package service

import (
	"github.com/MKhiriev/go-braintacle/internal/config"
	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/internal/store"
	"github.com/MKhiriev/go-braintacle/internal/validators"
)

type Services struct {
	ConfigService  ConfigService
	ClientService  ClientService
	GroupService   GroupService
	LockService    LockService
	AccountService AccountService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, catalog *options.Catalog, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	locks := NewLockService(storages.LockRepository, storages.GlobalConfigRepository, catalog, logger)

	configService := NewConfigService(
		catalog,
		storages.GlobalConfigRepository,
		storages.OverrideRepository,
		storages.ClientRepository,
		storages.GroupRepository,
		logger,
	)
	validation := NewConfigValidationService(validators.NewRequestValidator(catalog))

	return &Services{
		ConfigService: validation.Wrap(configService),
		ClientService: NewClientService(storages.ClientRepository, locks, logger),
		GroupService: NewGroupService(
			storages.GroupRepository,
			storages.ClientRepository,
			storages.MembershipRepository,
			locks,
			logger,
		),
		LockService:    locks,
		AccountService: NewAccountService(storages.OperatorRepository, cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
