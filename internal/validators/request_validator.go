package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/models"
)

// RequestValidator evaluates `validate` struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator registers the catalog-aware tags against catalog.
func NewRequestValidator(catalog *options.Catalog) *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names in messages
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("option", func(fl validator.FieldLevel) bool {
		_, err := catalog.Lookup(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("membership", func(fl validator.FieldLevel) bool {
		return models.MembershipType(fl.Field().Int()).Stored()
	})

	return &RequestValidator{validate: v}
}

// Validate checks value, which must be a struct or a pointer to one. With
// fields given only those fields are checked.
func (v *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = v.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	logger.FromContext(ctx).Debug().Strs("violations", msgs).Msg("request rejected by validator")

	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	_, field, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		field = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "option":
		return fmt.Sprintf("%s: unknown option %q", field, fe.Value())
	case "membership":
		return fmt.Sprintf("%s: invalid membership type %v", field, fe.Value())
	case "min", "max", "gt":
		return fmt.Sprintf("%s must satisfy %s=%s", field, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q", field, fe.Tag())
	}
}
