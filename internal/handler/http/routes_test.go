package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-braintacle/models"
)

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/options"},
		{http.MethodGet, "/api/config"},
		{http.MethodPut, "/api/config"},
		{http.MethodGet, "/api/config/contactInterval"},
		{http.MethodGet, "/api/clients"},
		{http.MethodPost, "/api/clients"},
		{http.MethodGet, "/api/clients/1"},
		{http.MethodDelete, "/api/clients/1"},
		{http.MethodGet, "/api/clients/1/config"},
		{http.MethodPut, "/api/clients/1/config"},
		{http.MethodGet, "/api/clients/1/config/view"},
		{http.MethodGet, "/api/clients/1/config/contactInterval"},
		{http.MethodGet, "/api/clients/1/groups"},
		{http.MethodPut, "/api/clients/1/groups"},
		{http.MethodGet, "/api/groups"},
		{http.MethodPost, "/api/groups"},
		{http.MethodGet, "/api/groups/1"},
		{http.MethodDelete, "/api/groups/1"},
		{http.MethodGet, "/api/groups/1/config"},
		{http.MethodPut, "/api/groups/1/config"},
		{http.MethodGet, "/api/groups/1/config/contactInterval"},
		{http.MethodPost, "/api/reports/effective"},
		{http.MethodGet, "/api/operators"},
		{http.MethodPost, "/api/operators"},
		{http.MethodDelete, "/api/operators/jane"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInit_PublicRoutes(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "braintacle_http_requests_total")
}

func TestInit_UnsupportedMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPatch, "/api/config"},
		{http.MethodPost, "/api/clients/1"},
		{http.MethodPut, "/api/version"},
		{http.MethodGet, "/api/auth/login"},
		{http.MethodGet, "/api/nonexistent"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := do(t, router, tc.method, tc.path, nil)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	router, m := newTestRouter(t)
	m.clients.EXPECT().List(gomock.Any()).Return([]models.Client{}, nil).Times(2)

	rr := do(t, router, http.MethodGet, "/api/clients", nil)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set(traceIDHeader, "trace-42")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
}
