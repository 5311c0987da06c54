package models

import (
	"encoding/json"

	"github.com/MKhiriev/go-braintacle/internal/options"
)

// ConfigSections maps section name to option name to value, the layout the
// console shows for a client or group.
type ConfigSections map[options.Section]map[string]*options.Value

// SetValueRequest writes one option value. A JSON null value removes it.
type SetValueRequest struct {
	Option string          `json:"option" validate:"required,option"`
	Value  json.RawMessage `json:"value"`
}

// OptionValue is one resolved option.
type OptionValue struct {
	Option string        `json:"option"`
	Value  options.Value `json:"value"`
}

// OverrideValue is an option's stored override, nil when inherited.
type OverrideValue struct {
	Option string         `json:"option"`
	Value  *options.Value `json:"value"`
}

// ClientConfigView shows every stage of the cascade for one option.
type ClientConfigView struct {
	Option    string         `json:"option"`
	Override  *options.Value `json:"override"`
	Default   options.Value  `json:"default"`
	Effective options.Value  `json:"effective"`
}

// EffectiveReportRequest selects the clients and options of a batch report.
// Empty Options means every overridable option.
type EffectiveReportRequest struct {
	ClientIDs []int64  `json:"client_ids" validate:"required,min=1,max=1000,dive,gt=0"`
	Options   []string `json:"options" validate:"dive,option"`
}

// EffectiveReportRow holds the effective values of one client.
type EffectiveReportRow struct {
	ClientID int64                    `json:"client_id"`
	Values   map[string]options.Value `json:"values"`
}

// OptionInfo describes a catalog entry to API clients.
type OptionInfo struct {
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	Class       string          `json:"class"`
	Section     options.Section `json:"section,omitempty"`
	Overridable bool            `json:"overridable"`
	ClientsOnly bool            `json:"clients_only,omitempty"`
	Default     options.Value   `json:"default"`
}

// NewOptionInfo converts a catalog entry.
func NewOptionInfo(opt options.Option) OptionInfo {
	return OptionInfo{
		Name:        opt.Name,
		Kind:        opt.Kind.String(),
		Class:       opt.Class.String(),
		Section:     opt.Section,
		Overridable: opt.Overridable,
		ClientsOnly: opt.ClientsOnly,
		Default:     opt.Default,
	}
}
