// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the console's view of the braintacle server.
//
// The primary abstraction is [ServerAdapter], which decouples the console
// commands from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-braintacle/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the braintacle
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates an operator. On success it stores the returned
	// bearer token via SetToken and returns it.
	Login(ctx context.Context, operator models.Operator) (string, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Options lists the option catalog.
	Options(ctx context.Context) ([]models.OptionInfo, error)

	// Globals lists the global value of every option.
	Globals(ctx context.Context) ([]models.OptionValue, error)
	// SetGlobal writes a global value. A null value restores the default.
	SetGlobal(ctx context.Context, req models.SetValueRequest) error

	// ClientConfig returns override, default and effective value of every
	// overridable option of a client.
	ClientConfig(ctx context.Context, clientID int64) ([]models.ClientConfigView, error)
	// ClientOption returns the cascade of a single option.
	ClientOption(ctx context.Context, clientID int64, option string) (models.ClientConfigView, error)
	// SetClientOption writes or, for a null value, removes a client override.
	SetClientOption(ctx context.Context, clientID int64, req models.SetValueRequest) error

	// GroupOption returns a group's override and effective value.
	GroupOption(ctx context.Context, groupID int64, option string) (models.ClientConfigView, error)
	// SetGroupOption writes or removes a group override.
	SetGroupOption(ctx context.Context, groupID int64, req models.SetValueRequest) error

	// EffectiveReport resolves options for many clients at once.
	EffectiveReport(ctx context.Context, req models.EffectiveReportRequest) ([]models.EffectiveReportRow, error)
}
