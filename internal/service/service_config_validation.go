package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-braintacle/internal/validators"
	"github.com/MKhiriev/go-braintacle/models"
)

// ConfigValidationService rejects malformed requests before they reach the
// wrapped ConfigService. Read-only calls pass straight through.
type ConfigValidationService struct {
	ConfigService
	validator validators.Validator
}

func NewConfigValidationService(validator validators.Validator) ConfigServiceWrapper {
	return &ConfigValidationService{validator: validator}
}

func (v *ConfigValidationService) Wrap(inner ConfigService) ConfigService {
	v.ConfigService = inner
	return v
}

func (v *ConfigValidationService) SetOverride(ctx context.Context, clientID int64, req models.SetValueRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.ConfigService.SetOverride(ctx, clientID, req)
}

func (v *ConfigValidationService) SetGroupOverride(ctx context.Context, groupID int64, req models.SetValueRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.ConfigService.SetGroupOverride(ctx, groupID, req)
}

func (v *ConfigValidationService) SetGlobal(ctx context.Context, req models.SetValueRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.ConfigService.SetGlobal(ctx, req)
}

func (v *ConfigValidationService) EffectiveReport(ctx context.Context, req models.EffectiveReportRequest) ([]models.EffectiveReportRow, error) {
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.ConfigService.EffectiveReport(ctx, req)
}

func (v *ConfigValidationService) validate(ctx context.Context, req any) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
