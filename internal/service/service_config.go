package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/internal/resolver"
	"github.com/MKhiriev/go-braintacle/internal/store"
	"github.com/MKhiriev/go-braintacle/models"
)

// sectionOrder is the layout of AllConfig and GroupConfig.
var sectionOrder = []options.Section{options.SectionAgent, options.SectionDownload, options.SectionScan}

// defaultReportWorkers bounds the goroutines of one EffectiveReport.
const defaultReportWorkers = 8

type configService struct {
	catalog   *options.Catalog
	resolver  *resolver.Resolver
	globals   store.GlobalConfigRepository
	overrides store.OverrideRepository
	clients   store.ClientRepository
	groups    store.GroupRepository

	reportWorkers int

	logger *logger.Logger
}

// NewConfigService builds the resolver over the global and override
// repositories. Every request works on fresh ClientConfig/GroupConfig
// objects, so cached values never outlive a request.
func NewConfigService(
	catalog *options.Catalog,
	globals store.GlobalConfigRepository,
	overrides store.OverrideRepository,
	clients store.ClientRepository,
	groups store.GroupRepository,
	logger *logger.Logger,
) ConfigService {
	return &configService{
		catalog:       catalog,
		resolver:      resolver.New(catalog, globals, overrides, overrides),
		globals:       globals,
		overrides:     overrides,
		clients:       clients,
		groups:        groups,
		reportWorkers: defaultReportWorkers,
		logger:        logger,
	}
}

func (s *configService) Catalog(ctx context.Context) []models.OptionInfo {
	all := s.catalog.All()
	infos := make([]models.OptionInfo, 0, len(all))
	for _, opt := range all {
		infos = append(infos, models.NewOptionInfo(opt))
	}
	return infos
}

func (s *configService) Effective(ctx context.Context, clientID int64, option string) (v options.Value, err error) {
	defer func(start time.Time) { observeResolution(scopeClient, start, err) }(time.Now())

	cfg, err := s.clientConfig(ctx, clientID)
	if err != nil {
		return options.Value{}, err
	}
	return cfg.Effective(ctx, option)
}

func (s *configService) Default(ctx context.Context, clientID int64, option string) (options.Value, error) {
	cfg, err := s.clientConfig(ctx, clientID)
	if err != nil {
		return options.Value{}, err
	}
	return cfg.Default(ctx, option)
}

func (s *configService) Override(ctx context.Context, clientID int64, option string) (*options.Value, error) {
	cfg, err := s.clientConfig(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return cfg.Override(ctx, option)
}

func (s *configService) SetOverride(ctx context.Context, clientID int64, req models.SetValueRequest) error {
	log := logger.FromContext(ctx)

	cfg, err := s.clientConfig(ctx, clientID)
	if err != nil {
		return err
	}
	value, err := s.decodeOverride(req)
	if err != nil {
		return err
	}

	if err = cfg.SetOverride(ctx, req.Option, value); err != nil {
		log.Err(err).Str("func", "*configService.SetOverride").Int64("client_id", clientID).Str("option", req.Option).Msg("error setting client override")
		return err
	}

	observeOverrideWrite(scopeClient, value)
	return nil
}

func (s *configService) AllConfig(ctx context.Context, clientID int64) (models.ConfigSections, error) {
	if _, err := s.clients.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	return s.sections(ctx, clientID, true)
}

func (s *configService) ClientConfig(ctx context.Context, clientID int64) ([]models.ClientConfigView, error) {
	cfg, err := s.clientConfig(ctx, clientID)
	if err != nil {
		return nil, err
	}

	opts := s.catalog.Overridable()
	views := make([]models.ClientConfigView, 0, len(opts))
	for _, opt := range opts {
		view := models.ClientConfigView{Option: opt.Name}
		if view.Override, err = cfg.Override(ctx, opt.Name); err != nil {
			return nil, err
		}
		if view.Default, err = cfg.Default(ctx, opt.Name); err != nil {
			return nil, err
		}
		if view.Effective, err = cfg.Effective(ctx, opt.Name); err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *configService) GlobalValue(ctx context.Context, option string) (v options.Value, err error) {
	defer func(start time.Time) { observeResolution(scopeGlobal, start, err) }(time.Now())

	opt, err := s.catalog.Lookup(option)
	if err != nil {
		return options.Value{}, err
	}
	return s.resolver.GlobalValue(ctx, opt)
}

// SetGlobal writes a global value. A null value restores the built-in
// default. Derived options cannot be written.
func (s *configService) SetGlobal(ctx context.Context, req models.SetValueRequest) error {
	log := logger.FromContext(ctx)

	opt, err := s.catalog.Lookup(req.Option)
	if err != nil {
		return err
	}
	if opt.Derived() {
		return fmt.Errorf("%w: %s is computed from %s", options.ErrDerivedOption, opt.Name, opt.GlobalSource)
	}

	value, err := options.DecodeJSON(opt, req.Value)
	if err != nil {
		return err
	}
	if value == nil {
		value = &opt.Default
	}

	if err = s.globals.SetGlobalValue(ctx, opt, *value); err != nil {
		log.Err(err).Str("func", "*configService.SetGlobal").Str("option", opt.Name).Msg("error setting global value")
		return err
	}
	return nil
}

// Globals lists every option with its global value in catalog order.
func (s *configService) Globals(ctx context.Context) ([]models.OptionValue, error) {
	all := s.catalog.All()

	stored, err := s.globals.GlobalValues(ctx, all)
	if err != nil {
		return nil, err
	}

	result := make([]models.OptionValue, 0, len(all))
	for _, opt := range all {
		var v options.Value
		switch {
		case opt.Derived():
			if v, err = s.resolver.GlobalValue(ctx, opt); err != nil {
				return nil, err
			}
		default:
			var ok bool
			if v, ok = stored[opt.Name]; !ok {
				v = opt.Default
			}
		}
		result = append(result, models.OptionValue{Option: opt.Name, Value: v})
	}
	return result, nil
}

func (s *configService) GroupOverride(ctx context.Context, groupID int64, option string) (*options.Value, error) {
	cfg, err := s.groupConfig(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return cfg.Override(ctx, option)
}

func (s *configService) SetGroupOverride(ctx context.Context, groupID int64, req models.SetValueRequest) error {
	log := logger.FromContext(ctx)

	cfg, err := s.groupConfig(ctx, groupID)
	if err != nil {
		return err
	}
	value, err := s.decodeOverride(req)
	if err != nil {
		return err
	}

	if err = cfg.SetOverride(ctx, req.Option, value); err != nil {
		log.Err(err).Str("func", "*configService.SetGroupOverride").Int64("group_id", groupID).Str("option", req.Option).Msg("error setting group override")
		return err
	}

	observeOverrideWrite(scopeGroup, value)
	return nil
}

func (s *configService) GroupEffective(ctx context.Context, groupID int64, option string) (v options.Value, err error) {
	defer func(start time.Time) { observeResolution(scopeGroup, start, err) }(time.Now())

	cfg, err := s.groupConfig(ctx, groupID)
	if err != nil {
		return options.Value{}, err
	}
	return cfg.Effective(ctx, option)
}

func (s *configService) GroupConfig(ctx context.Context, groupID int64) (models.ConfigSections, error) {
	if _, err := s.groups.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.sections(ctx, groupID, false)
}

func (s *configService) clientConfig(ctx context.Context, clientID int64) (*resolver.ClientConfig, error) {
	if _, err := s.clients.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	return s.resolver.Client(clientID), nil
}

func (s *configService) groupConfig(ctx context.Context, groupID int64) (*resolver.GroupConfig, error) {
	if _, err := s.groups.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.resolver.Group(groupID), nil
}

// decodeOverride parses the request value. Writing 1 to a disable-wins
// option means "not disabled here", which is stored as no override.
func (s *configService) decodeOverride(req models.SetValueRequest) (*options.Value, error) {
	opt, err := s.catalog.Lookup(req.Option)
	if err != nil {
		return nil, err
	}
	value, err := options.DecodeJSON(opt, req.Value)
	if err != nil {
		return nil, err
	}
	if value != nil && opt.Class == options.ClassDisableWins && value.Int == 1 {
		return nil, nil
	}
	return value, nil
}

// sections reads the overrides of one object grouped by section.
// Disable-wins options read 1 unless explicitly disabled. Options
// restricted to clients are left out for groups.
func (s *configService) sections(ctx context.Context, id int64, client bool) (models.ConfigSections, error) {
	var opts []options.Option
	for _, opt := range s.catalog.Overridable() {
		if opt.ClientsOnly && !client {
			continue
		}
		opts = append(opts, opt)
	}

	stored, err := s.overrides.Overrides(ctx, id, opts)
	if err != nil {
		return nil, err
	}

	result := make(models.ConfigSections, len(sectionOrder))
	for _, opt := range opts {
		section, ok := result[opt.Section]
		if !ok {
			section = make(map[string]*options.Value)
			result[opt.Section] = section
		}

		var value *options.Value
		if v, ok := stored[opt.Name]; ok {
			value = options.Ptr(v)
		}
		if opt.Class == options.ClassDisableWins {
			if value != nil && value.IsDisabled() {
				value = options.Ptr(options.Int(0))
			} else {
				value = options.Ptr(options.Int(1))
			}
		}
		section[opt.Name] = value
	}
	return result, nil
}
