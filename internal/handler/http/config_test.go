package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/internal/service"
	"github.com/MKhiriev/go-braintacle/internal/store"
	"github.com/MKhiriev/go-braintacle/models"
)

func TestListOptions(t *testing.T) {
	router, m := newTestRouter(t)
	m.config.EXPECT().Catalog(gomock.Any()).Return([]models.OptionInfo{{Name: "contactInterval", Kind: "integer"}})

	rr := do(t, router, http.MethodGet, "/api/options", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	infos := decode[[]models.OptionInfo](t, rr)
	require.Len(t, infos, 1)
	assert.Equal(t, "contactInterval", infos[0].Name)
}

func TestGlobals(t *testing.T) {
	router, m := newTestRouter(t)
	m.config.EXPECT().Globals(gomock.Any()).Return([]models.OptionValue{{Option: "contactInterval", Value: options.Int(12)}}, nil)
	m.config.EXPECT().GlobalValue(gomock.Any(), "allowScan").Return(options.Int(1), nil)
	m.config.EXPECT().GlobalValue(gomock.Any(), "bogus").Return(options.Value{}, &options.UnknownOptionError{Name: "bogus"})

	rr := do(t, router, http.MethodGet, "/api/config", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]models.OptionValue](t, rr), 1)

	rr = do(t, router, http.MethodGet, "/api/config/allowScan", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, options.Int(1), decode[models.OptionValue](t, rr).Value)

	rr = do(t, router, http.MethodGet, "/api/config/bogus", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSetGlobal(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "stored", body: `{"option":"contactInterval","value":24}`, wantStatus: http.StatusNoContent},
		{name: "derived option", body: `{"option":"allowScan","value":0}`, serviceErr: options.ErrDerivedOption, wantStatus: http.StatusBadRequest},
		{name: "invalid request", body: `{"option":"bogus","value":1}`, serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "broken JSON", body: `{"option":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			if tt.name != "broken JSON" {
				m.config.EXPECT().SetGlobal(gomock.Any(), gomock.Any()).Return(tt.serviceErr)
			}

			rr := do(t, router, http.MethodPut, "/api/config", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestClientConfig(t *testing.T) {
	router, m := newTestRouter(t)

	sections := models.ConfigSections{
		options.SectionAgent: {"contactInterval": options.Ptr(options.Int(4))},
	}
	m.config.EXPECT().AllConfig(gomock.Any(), int64(3)).Return(sections, nil)
	m.config.EXPECT().AllConfig(gomock.Any(), int64(404)).Return(nil, store.ErrClientNotFound)

	rr := do(t, router, http.MethodGet, "/api/clients/3/config", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[map[string]map[string]json.RawMessage](t, rr)
	assert.JSONEq(t, `4`, string(got["Agent"]["contactInterval"]))

	rr = do(t, router, http.MethodGet, "/api/clients/404/config", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, router, http.MethodGet, "/api/clients/abc/config", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestClientConfigView(t *testing.T) {
	router, m := newTestRouter(t)
	m.config.EXPECT().ClientConfig(gomock.Any(), int64(3)).Return([]models.ClientConfigView{
		{Option: "downloadTimeout", Default: options.Int(7), Effective: options.Int(7)},
	}, nil)

	rr := do(t, router, http.MethodGet, "/api/clients/3/config/view", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	views := decode[[]models.ClientConfigView](t, rr)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Override)
}

func TestClientOption(t *testing.T) {
	router, m := newTestRouter(t)
	m.config.EXPECT().Override(gomock.Any(), int64(3), "contactInterval").Return(nil, nil)
	m.config.EXPECT().Default(gomock.Any(), int64(3), "contactInterval").Return(options.Int(6), nil)
	m.config.EXPECT().Effective(gomock.Any(), int64(3), "contactInterval").Return(options.Int(6), nil)

	rr := do(t, router, http.MethodGet, "/api/clients/3/config/contactInterval", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	view := decode[models.ClientConfigView](t, rr)
	assert.Equal(t, "contactInterval", view.Option)
	assert.Nil(t, view.Override)
	assert.Equal(t, options.Int(6), view.Default)
	assert.Equal(t, options.Int(6), view.Effective)
}

func TestSetClientConfig(t *testing.T) {
	router, m := newTestRouter(t)
	req := models.SetValueRequest{Option: "packageDeployment", Value: json.RawMessage(`0`)}
	m.config.EXPECT().SetOverride(gomock.Any(), int64(3), req).Return(nil)
	m.config.EXPECT().SetOverride(gomock.Any(), int64(3), gomock.Any()).Return(options.ErrNotOverridable)

	rr := do(t, router, http.MethodPut, "/api/clients/3/config", req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, router, http.MethodPut, "/api/clients/3/config", `{"option":"acceptNonZlib","value":1}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGroupConfigRoutes(t *testing.T) {
	router, m := newTestRouter(t)
	m.config.EXPECT().GroupConfig(gomock.Any(), int64(9)).Return(models.ConfigSections{}, nil)
	m.config.EXPECT().GroupOverride(gomock.Any(), int64(9), "downloadTimeout").Return(options.Ptr(options.Int(3)), nil)
	m.config.EXPECT().GlobalValue(gomock.Any(), "downloadTimeout").Return(options.Int(7), nil)
	m.config.EXPECT().GroupEffective(gomock.Any(), int64(9), "downloadTimeout").Return(options.Int(3), nil)
	m.config.EXPECT().SetGroupOverride(gomock.Any(), int64(9), gomock.Any()).Return(nil)

	rr := do(t, router, http.MethodGet, "/api/groups/9/config", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, router, http.MethodGet, "/api/groups/9/config/downloadTimeout", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	view := decode[models.ClientConfigView](t, rr)
	assert.Equal(t, options.Ptr(options.Int(3)), view.Override)
	assert.Equal(t, options.Int(7), view.Default)
	assert.Equal(t, options.Int(3), view.Effective)

	rr = do(t, router, http.MethodPut, "/api/groups/9/config", `{"option":"downloadTimeout","value":null}`)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestEffectiveReport(t *testing.T) {
	router, m := newTestRouter(t)
	m.config.EXPECT().EffectiveReport(gomock.Any(), models.EffectiveReportRequest{ClientIDs: []int64{1, 2}, Options: []string{"contactInterval"}}).
		Return([]models.EffectiveReportRow{
			{ClientID: 1, Values: map[string]options.Value{"contactInterval": options.Int(12)}},
			{ClientID: 2, Values: map[string]options.Value{"contactInterval": options.Int(6)}},
		}, nil)

	rr := do(t, router, http.MethodPost, "/api/reports/effective", `{"client_ids":[1,2],"options":["contactInterval"]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	rows := decode[[]models.EffectiveReportRow](t, rr)
	require.Len(t, rows, 2)
	assert.Equal(t, options.Int(6), rows[1].Values["contactInterval"])
}
