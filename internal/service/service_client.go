package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/store"
	"github.com/MKhiriev/go-braintacle/models"
)

type clientService struct {
	clients store.ClientRepository
	locks   LockService
	logger  *logger.Logger
}

func NewClientService(clients store.ClientRepository, locks LockService, logger *logger.Logger) ClientService {
	return &clientService{
		clients: clients,
		locks:   locks,
		logger:  logger,
	}
}

func (s *clientService) Create(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	created, err := s.clients.CreateClient(ctx, client)
	if err != nil {
		log.Err(err).Str("device_id", client.DeviceID).Msg("client creation ended with error")
		return models.Client{}, fmt.Errorf("client creation ended with error: %w", err)
	}
	return created, nil
}

func (s *clientService) Get(ctx context.Context, id int64) (models.Client, error) {
	return s.clients.GetClient(ctx, id)
}

func (s *clientService) List(ctx context.Context) ([]models.Client, error) {
	return s.clients.ListClients(ctx)
}

// Delete removes a client while holding its lock.
func (s *clientService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	lock := s.locks.NewLock(id)
	ok, err := lock.Lock(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrClientLocked
	}
	defer func() {
		if err := lock.Unlock(ctx); err != nil {
			log.Err(err).Int64("client_id", id).Msg("error releasing client lock")
		}
	}()

	return s.clients.DeleteClient(ctx, id)
}
