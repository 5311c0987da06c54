package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/mock"
	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/models"
)

var errStorage = errors.New("storage error")

type storeMocks struct {
	globals     *mock.MockGlobalConfigRepository
	overrides   *mock.MockOverrideRepository
	clients     *mock.MockClientRepository
	groups      *mock.MockGroupRepository
	memberships *mock.MockMembershipRepository
	locks       *mock.MockLockRepository
	operators   *mock.MockOperatorRepository
}

func newStoreMocks(t *testing.T) storeMocks {
	ctrl := gomock.NewController(t)
	return storeMocks{
		globals:     mock.NewMockGlobalConfigRepository(ctrl),
		overrides:   mock.NewMockOverrideRepository(ctrl),
		clients:     mock.NewMockClientRepository(ctrl),
		groups:      mock.NewMockGroupRepository(ctrl),
		memberships: mock.NewMockMembershipRepository(ctrl),
		locks:       mock.NewMockLockRepository(ctrl),
		operators:   mock.NewMockOperatorRepository(ctrl),
	}
}

func newTestConfigService(m storeMocks) *configService {
	return NewConfigService(options.Builtin(), m.globals, m.overrides, m.clients, m.groups, logger.Nop()).(*configService)
}

func mustOption(t *testing.T, name string) options.Option {
	t.Helper()
	opt, err := options.Builtin().Lookup(name)
	require.NoError(t, err)
	return opt
}

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func expectClient(m storeMocks, id int64) {
	m.clients.EXPECT().GetClient(gomock.Any(), id).Return(models.Client{ID: id, Name: "pc", DeviceID: "pc-1"}, nil).AnyTimes()
}
