package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-braintacle/internal/mock"
	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/internal/validators"
	"github.com/MKhiriev/go-braintacle/models"
)

func newValidatedConfigService(t *testing.T) (ConfigService, *mock.MockConfigService) {
	inner := mock.NewMockConfigService(gomock.NewController(t))
	wrapper := NewConfigValidationService(validators.NewRequestValidator(options.Builtin()))
	return wrapper.Wrap(inner), inner
}

func TestConfigValidationService_SetOverride(t *testing.T) {
	t.Run("valid request is delegated", func(t *testing.T) {
		svc, inner := newValidatedConfigService(t)
		req := models.SetValueRequest{Option: "contactInterval", Value: json.RawMessage(`5`)}
		inner.EXPECT().SetOverride(gomock.Any(), int64(1), req).Return(nil)

		require.NoError(t, svc.SetOverride(testContext(), 1, req))
	})

	t.Run("unknown option is rejected", func(t *testing.T) {
		svc, _ := newValidatedConfigService(t)

		err := svc.SetOverride(testContext(), 1, models.SetValueRequest{Option: "bogus", Value: json.RawMessage(`5`)})

		require.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrInvalidRequest)
	})

	t.Run("missing option is rejected", func(t *testing.T) {
		svc, _ := newValidatedConfigService(t)

		err := svc.SetOverride(testContext(), 1, models.SetValueRequest{Value: json.RawMessage(`5`)})

		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestConfigValidationService_EffectiveReport(t *testing.T) {
	svc, inner := newValidatedConfigService(t)

	_, err := svc.EffectiveReport(testContext(), models.EffectiveReportRequest{})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	req := models.EffectiveReportRequest{ClientIDs: []int64{1, 2}}
	inner.EXPECT().EffectiveReport(gomock.Any(), req).Return([]models.EffectiveReportRow{{ClientID: 1}, {ClientID: 2}}, nil)

	rows, err := svc.EffectiveReport(testContext(), req)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestConfigValidationService_ReadsPassThrough(t *testing.T) {
	svc, inner := newValidatedConfigService(t)
	inner.EXPECT().Effective(gomock.Any(), int64(3), "contactInterval").Return(options.Int(12), nil)

	v, err := svc.Effective(testContext(), 3, "contactInterval")

	require.NoError(t, err)
	assert.Equal(t, options.Int(12), v)
}
