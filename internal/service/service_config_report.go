package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/models"
)

// EffectiveReport resolves the requested options for every client. Clients
// are processed concurrently, each with its own ClientConfig. The first
// failure cancels the remaining work and no rows are returned.
func (s *configService) EffectiveReport(ctx context.Context, req models.EffectiveReportRequest) (rows []models.EffectiveReportRow, err error) {
	log := logger.FromContext(ctx)
	defer func(start time.Time) { observeResolution(scopeReport, start, err) }(time.Now())

	names, err := s.reportOptions(req.Options)
	if err != nil {
		return nil, err
	}
	reportClients.Observe(float64(len(req.ClientIDs)))

	rows = make([]models.EffectiveReportRow, len(req.ClientIDs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.reportWorkers)
	for i, clientID := range req.ClientIDs {
		g.Go(func() error {
			cfg, err := s.clientConfig(gCtx, clientID)
			if err != nil {
				return err
			}

			values := make(map[string]options.Value, len(names))
			for _, name := range names {
				if err := gCtx.Err(); err != nil {
					return err
				}
				v, err := cfg.Effective(gCtx, name)
				if err != nil {
					return err
				}
				values[name] = v
			}
			rows[i] = models.EffectiveReportRow{ClientID: clientID, Values: values}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		log.Err(err).Str("func", "*configService.EffectiveReport").Int("clients", len(req.ClientIDs)).Msg("effective report failed")
		return nil, err
	}
	return rows, nil
}

// reportOptions validates the requested names. No names means every
// overridable option.
func (s *configService) reportOptions(requested []string) ([]string, error) {
	if len(requested) == 0 {
		opts := s.catalog.Overridable()
		names := make([]string, 0, len(opts))
		for _, opt := range opts {
			names = append(names, opt.Name)
		}
		return names, nil
	}

	for _, name := range requested {
		if _, err := s.catalog.Lookup(name); err != nil {
			return nil, err
		}
	}
	return requested, nil
}
