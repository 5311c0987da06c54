package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/mock"
	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/internal/service"
	"github.com/MKhiriev/go-braintacle/internal/validators"
	"github.com/MKhiriev/go-braintacle/models"
)

const testToken = "test-token"

type serviceMocks struct {
	config   *mock.MockConfigService
	clients  *mock.MockClientService
	groups   *mock.MockGroupService
	accounts *mock.MockAccountService
	appInfo  *mock.MockAppInfoService
}

// newTestRouter returns the full router over mocked services. The account
// mock accepts testToken for operator 1.
func newTestRouter(t *testing.T) (http.Handler, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		config:   mock.NewMockConfigService(ctrl),
		clients:  mock.NewMockClientService(ctrl),
		groups:   mock.NewMockGroupService(ctrl),
		accounts: mock.NewMockAccountService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	m.accounts.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{OperatorID: 1}, nil).AnyTimes()
	m.accounts.EXPECT().ParseToken(gomock.Any(), gomock.Not(testToken)).Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	h := NewHandler(&service.Services{
		ConfigService:  m.config,
		ClientService:  m.clients,
		GroupService:   m.groups,
		AccountService: m.accounts,
		AppInfoService: m.appInfo,
	}, validators.NewRequestValidator(options.Builtin()), logger.Nop())

	return h.Init(), m
}

// do sends an authorized request. body is marshaled unless it is a string.
func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+testToken)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// nopRequest returns a request whose context carries a discarding logger.
func nopRequest(method, path string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(logger.Nop().WithContext(context.Background()))
}
