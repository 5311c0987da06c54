// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-braintacle/internal/config"
	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/models"
)

// newTestAdapter returns an adapter pointed at the test server, holding
// token "tok".
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ConsoleConfig{HTTPAddress: serverURL, Token: "tok"}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://console.example.org/ ", want: "https://console.example.org"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var op models.Operator
		require.NoError(t, json.NewDecoder(r.Body).Decode(&op))
		if op.Password != "correct-horse" {
			http.Error(w, "wrong password", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Authorization", "Bearer new-token")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.Login(context.Background(), models.Operator{Login: "admin", Password: "nope"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "tok", a.Token())

	token, err := a.Login(context.Background(), models.Operator{Login: "admin", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
	assert.Equal(t, "new-token", a.Token())
}

func TestLogin_MissingHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Operator{Login: "admin"})

	assert.ErrorContains(t, err, "login parse bearer token")
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "v1.0.0\n")
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", got)
}

func TestClientOption(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/clients/42/config/inventoryInterval", r.URL.Path)
		writeJSON(t, w, models.ClientConfigView{
			Option:    "inventoryInterval",
			Override:  options.Ptr(options.Int(-1)),
			Default:   options.Int(0),
			Effective: options.Int(-1),
		})
	}))
	defer srv.Close()

	view, err := newTestAdapter(t, srv.URL).ClientOption(context.Background(), 42, "inventoryInterval")

	require.NoError(t, err)
	assert.Equal(t, options.Ptr(options.Int(-1)), view.Override)
	assert.Equal(t, options.Int(-1), view.Effective)
}

func TestClientConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/clients/42/config/view", r.URL.Path)
		writeJSON(t, w, []models.ClientConfigView{
			{Option: "contactInterval", Default: options.Int(12), Effective: options.Int(12)},
			{Option: "scanSnmp", Default: options.Int(1), Effective: options.Int(0), Override: options.Ptr(options.Int(0))},
		})
	}))
	defer srv.Close()

	views, err := newTestAdapter(t, srv.URL).ClientConfig(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Nil(t, views[0].Override)
	assert.Equal(t, options.Int(0), views[1].Effective)
}

func TestSetOptions(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		body, _ := io.ReadAll(r.Body)
		got = append(got, r.URL.Path+" "+string(body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()
	req := models.SetValueRequest{Option: "downloadTimeout", Value: json.RawMessage(`5`)}

	require.NoError(t, a.SetGlobal(ctx, req))
	require.NoError(t, a.SetClientOption(ctx, 3, req))
	require.NoError(t, a.SetGroupOption(ctx, 9, models.SetValueRequest{Option: "downloadTimeout", Value: json.RawMessage(`null`)}))

	assert.Equal(t, []string{
		`/api/config {"option":"downloadTimeout","value":5}`,
		`/api/clients/3/config {"option":"downloadTimeout","value":5}`,
		`/api/groups/9/config {"option":"downloadTimeout","value":null}`,
	}, got)
}

func TestEffectiveReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reports/effective", r.URL.Path)

		var req models.EffectiveReportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		rows := make([]models.EffectiveReportRow, 0, len(req.ClientIDs))
		for _, id := range req.ClientIDs {
			rows = append(rows, models.EffectiveReportRow{ClientID: id, Values: map[string]options.Value{"contactInterval": options.Int(id)}})
		}
		writeJSON(t, w, rows)
	}))
	defer srv.Close()

	rows, err := newTestAdapter(t, srv.URL).EffectiveReport(context.Background(), models.EffectiveReportRequest{ClientIDs: []int64{4, 5}})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, options.Int(5), rows[1].Values["contactInterval"])
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "unknown option \"bogus\"", tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Globals(context.Background())

			assert.ErrorIs(t, err, tt.want)
			assert.ErrorContains(t, err, "bogus")
		})
	}
}

func TestErrorMapping_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Options(context.Background())

	assert.ErrorContains(t, err, "http 418: I'm a teapot")
}
