package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-braintacle/internal/config"
	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/utils"
	"github.com/MKhiriev/go-braintacle/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and seeds the
// bearer token from cfg.Token.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ConsoleConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. The token is taken from the
// Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, operator models.Operator) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(operator).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("login", operator.Login).Msg("logged in")
	return token, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) Options(ctx context.Context) ([]models.OptionInfo, error) {
	var infos []models.OptionInfo
	if err := h.get(ctx, "/api/options", &infos); err != nil {
		return nil, fmt.Errorf("options request: %w", err)
	}
	return infos, nil
}

func (h *httpServerAdapter) Globals(ctx context.Context) ([]models.OptionValue, error) {
	var values []models.OptionValue
	if err := h.get(ctx, "/api/config", &values); err != nil {
		return nil, fmt.Errorf("globals request: %w", err)
	}
	return values, nil
}

func (h *httpServerAdapter) SetGlobal(ctx context.Context, req models.SetValueRequest) error {
	if err := h.put(ctx, "/api/config", req); err != nil {
		return fmt.Errorf("set global request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) ClientConfig(ctx context.Context, clientID int64) ([]models.ClientConfigView, error) {
	var views []models.ClientConfigView
	if err := h.get(ctx, clientPath(clientID, "config/view"), &views); err != nil {
		return nil, fmt.Errorf("client config request: %w", err)
	}
	return views, nil
}

func (h *httpServerAdapter) ClientOption(ctx context.Context, clientID int64, option string) (models.ClientConfigView, error) {
	var view models.ClientConfigView
	if err := h.get(ctx, clientPath(clientID, "config/"+url.PathEscape(option)), &view); err != nil {
		return models.ClientConfigView{}, fmt.Errorf("client option request: %w", err)
	}
	return view, nil
}

func (h *httpServerAdapter) SetClientOption(ctx context.Context, clientID int64, req models.SetValueRequest) error {
	if err := h.put(ctx, clientPath(clientID, "config"), req); err != nil {
		return fmt.Errorf("set client option request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) GroupOption(ctx context.Context, groupID int64, option string) (models.ClientConfigView, error) {
	var view models.ClientConfigView
	if err := h.get(ctx, groupPath(groupID, "config/"+url.PathEscape(option)), &view); err != nil {
		return models.ClientConfigView{}, fmt.Errorf("group option request: %w", err)
	}
	return view, nil
}

func (h *httpServerAdapter) SetGroupOption(ctx context.Context, groupID int64, req models.SetValueRequest) error {
	if err := h.put(ctx, groupPath(groupID, "config"), req); err != nil {
		return fmt.Errorf("set group option request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) EffectiveReport(ctx context.Context, req models.EffectiveReportRequest) ([]models.EffectiveReportRow, error) {
	var rows []models.EffectiveReportRow

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&rows).
		Post("/api/reports/effective")
	if err != nil {
		return nil, fmt.Errorf("effective report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return rows, nil
}

func (h *httpServerAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := h.authedRequest(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) put(ctx context.Context, path string, body any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func clientPath(id int64, suffix string) string {
	return "/api/clients/" + strconv.FormatInt(id, 10) + "/" + suffix
}

func groupPath(id int64, suffix string) string {
	return "/api/groups/" + strconv.FormatInt(id, 10) + "/" + suffix
}
