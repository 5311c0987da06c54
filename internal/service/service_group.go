package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/store"
	"github.com/MKhiriev/go-braintacle/models"
)

type groupService struct {
	groups      store.GroupRepository
	clients     store.ClientRepository
	memberships store.MembershipRepository
	locks       LockService
	now         func() time.Time
	logger      *logger.Logger
}

func NewGroupService(
	groups store.GroupRepository,
	clients store.ClientRepository,
	memberships store.MembershipRepository,
	locks LockService,
	logger *logger.Logger,
) GroupService {
	return &groupService{
		groups:      groups,
		clients:     clients,
		memberships: memberships,
		locks:       locks,
		now:         time.Now,
		logger:      logger,
	}
}

// Create rejects empty and duplicate names.
func (s *groupService) Create(ctx context.Context, group models.Group) (models.Group, error) {
	log := logger.FromContext(ctx)

	group.Name = strings.TrimSpace(group.Name)
	if group.Name == "" {
		return models.Group{}, ErrGroupNameEmpty
	}

	_, err := s.groups.GetGroupByName(ctx, group.Name)
	switch {
	case err == nil:
		return models.Group{}, store.ErrGroupAlreadyExists
	case !errors.Is(err, store.ErrGroupNotFound):
		return models.Group{}, err
	}

	group.CreatedAt = s.now().UTC()
	created, err := s.groups.CreateGroup(ctx, group)
	if err != nil {
		log.Err(err).Str("name", group.Name).Msg("group creation ended with error")
		return models.Group{}, fmt.Errorf("group creation ended with error: %w", err)
	}

	log.Info().Int64("group_id", created.ID).Str("name", created.Name).Msg("group created")
	return created, nil
}

func (s *groupService) Get(ctx context.Context, id int64) (models.Group, error) {
	return s.groups.GetGroup(ctx, id)
}

func (s *groupService) List(ctx context.Context) ([]models.Group, error) {
	return s.groups.ListGroups(ctx)
}

func (s *groupService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	lock := s.locks.NewLock(id)
	ok, err := lock.Lock(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrGroupLocked
	}
	defer func() {
		if err := lock.Unlock(ctx); err != nil {
			log.Err(err).Int64("group_id", id).Msg("error releasing group lock")
		}
	}()

	if err = s.groups.DeleteGroup(ctx, id); err != nil {
		log.Err(err).Int64("group_id", id).Msg("group deletion ended with error")
		return err
	}
	return nil
}

func (s *groupService) Memberships(ctx context.Context, clientID int64, filter models.MembershipType) ([]models.GroupMembership, error) {
	if !filter.Stored() && filter != models.MembershipManual && filter != models.MembershipAny {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMembership, filter)
	}
	if _, err := s.clients.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	return s.memberships.Memberships(ctx, clientID, filter)
}

func (s *groupService) SetMemberships(ctx context.Context, clientID int64, req models.SetMembershipsRequest) error {
	for groupID, t := range req.Memberships {
		if !t.Stored() {
			return fmt.Errorf("%w: %s for group %d", ErrInvalidMembership, t, groupID)
		}
	}
	if _, err := s.clients.GetClient(ctx, clientID); err != nil {
		return err
	}
	return s.memberships.SetMemberships(ctx, clientID, req.Memberships)
}
