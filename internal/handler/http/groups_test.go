package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-braintacle/internal/service"
	"github.com/MKhiriev/go-braintacle/internal/store"
	"github.com/MKhiriev/go-braintacle/models"
)

func TestCreateGroup(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "empty name", serviceErr: service.ErrGroupNameEmpty, wantStatus: http.StatusBadRequest},
		{name: "duplicate", serviceErr: store.ErrGroupAlreadyExists, wantStatus: http.StatusConflict},
		{name: "storage failure", serviceErr: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			created := models.Group{ID: 10, Name: "servers", CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
			m.groups.EXPECT().Create(gomock.Any(), models.Group{Name: "servers"}).Return(created, tt.serviceErr)

			rr := do(t, router, http.MethodPost, "/api/groups", `{"name":"servers"}`)

			require.Equal(t, tt.wantStatus, rr.Code)
			switch tt.wantStatus {
			case http.StatusCreated:
				assert.Equal(t, created, decode[models.Group](t, rr))
			case http.StatusInternalServerError:
				assert.NotContains(t, rr.Body.String(), store.ErrExecutingQuery.Error())
			}
		})
	}
}

func TestListAndGetGroups(t *testing.T) {
	router, m := newTestRouter(t)
	m.groups.EXPECT().List(gomock.Any()).Return([]models.Group{{ID: 10, Name: "servers"}, {ID: 11, Name: "laptops"}}, nil)
	m.groups.EXPECT().Get(gomock.Any(), int64(11)).Return(models.Group{ID: 11, Name: "laptops"}, nil)
	m.groups.EXPECT().Get(gomock.Any(), int64(12)).Return(models.Group{}, store.ErrGroupNotFound)

	rr := do(t, router, http.MethodGet, "/api/groups", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]models.Group](t, rr), 2)

	rr = do(t, router, http.MethodGet, "/api/groups/11", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "laptops", decode[models.Group](t, rr).Name)

	rr = do(t, router, http.MethodGet, "/api/groups/12", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteGroup(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "locked", serviceErr: service.ErrGroupLocked, wantStatus: http.StatusConflict},
		{name: "missing", serviceErr: store.ErrGroupNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.groups.EXPECT().Delete(gomock.Any(), int64(10)).Return(tt.serviceErr)

			rr := do(t, router, http.MethodDelete, "/api/groups/10", nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
