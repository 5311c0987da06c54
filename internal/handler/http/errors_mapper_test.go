package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/internal/service"
	"github.com/MKhiriev/go-braintacle/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown option", &options.UnknownOptionError{Name: "bogus"}, http.StatusNotFound},
		{"type mismatch", &options.TypeMismatchError{Option: "contactInterval", Want: options.KindInteger, Raw: "x"}, http.StatusBadRequest},
		{"stored type mismatch", fmt.Errorf("reading override: %w", &options.TypeMismatchError{Option: "contactInterval", Want: options.KindInteger, Raw: "often", Stored: true}), http.StatusInternalServerError},
		{"wrapped not overridable", fmt.Errorf("setting: %w", options.ErrNotOverridable), http.StatusBadRequest},
		{"group locked", service.ErrGroupLocked, http.StatusConflict},
		{"expired token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"client not found", fmt.Errorf("get: %w", store.ErrClientNotFound), http.StatusNotFound},
		{"sql failure", store.ErrScanningRows, http.StatusInternalServerError},
		{"unmapped", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesInternalErrors(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, nopRequest(http.MethodGet, "/"), fmt.Errorf("%w: connection reset", store.ErrExecutingQuery), "failed")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection reset")

	rr = httptest.NewRecorder()
	writeError(rr, nopRequest(http.MethodGet, "/"), &options.UnknownOptionError{Name: "bogus"}, "failed")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `unknown option "bogus"`)
}

func TestWriteError_StoredMismatchIsServerError(t *testing.T) {
	stored := options.MarkStored(&options.TypeMismatchError{Option: "lockValidity", Want: options.KindInteger, Raw: "long"})

	// map iteration order must not matter
	for range 20 {
		rr := httptest.NewRecorder()
		writeError(rr, nopRequest(http.MethodGet, "/"), stored, "failed")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "long")
	}
}
