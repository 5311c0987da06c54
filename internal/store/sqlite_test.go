package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-braintacle/internal/config"
	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "braintacle.db")
	s, err := NewStorages(testContext(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.Equal(t, DialectSQLite, s.DB.Dialect())
	return s
}

func TestSQLite_ConfigCascadeRows(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	opt := mustOption(t, "contactInterval")

	client, err := s.ClientRepository.CreateClient(ctx, models.Client{Name: "pc", DeviceID: "pc-1"})
	require.NoError(t, err)
	_, err = s.ClientRepository.CreateClient(ctx, models.Client{Name: "pc", DeviceID: "pc-1"})
	assert.ErrorIs(t, err, ErrClientAlreadyExists)

	g1, err := s.GroupRepository.CreateGroup(ctx, models.Group{Name: "g1", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	g2, err := s.GroupRepository.CreateGroup(ctx, models.Group{Name: "g2", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	_, err = s.GroupRepository.CreateGroup(ctx, models.Group{Name: "g1"})
	assert.ErrorIs(t, err, ErrGroupAlreadyExists)

	require.NoError(t, s.MembershipRepository.SetMemberships(ctx, client.ID, map[int64]models.MembershipType{
		g1.ID: models.MembershipAlways,
		g2.ID: models.MembershipNever,
		999:   models.MembershipAlways,
	}))

	memberships, err := s.MembershipRepository.Memberships(ctx, client.ID, models.MembershipManual)
	require.NoError(t, err)
	assert.Len(t, memberships, 2)

	require.NoError(t, s.GlobalConfigRepository.SetGlobalValue(ctx, opt, options.Int(12)))
	require.NoError(t, s.OverrideRepository.SetOverride(ctx, opt, g1.ID, options.Ptr(options.Int(6))))
	require.NoError(t, s.OverrideRepository.SetOverride(ctx, opt, g2.ID, options.Ptr(options.Int(1))))
	require.NoError(t, s.OverrideRepository.SetOverride(ctx, opt, client.ID, options.Ptr(options.Int(24))))

	global, err := s.GlobalConfigRepository.GlobalValue(ctx, opt)
	require.NoError(t, err)
	assert.Equal(t, options.Ptr(options.Int(12)), global)

	// g2 is excluded, so only g1 contributes
	groups, err := s.OverrideRepository.GroupValues(ctx, opt, client.ID)
	require.NoError(t, err)
	assert.Equal(t, []*options.Value{options.Ptr(options.Int(6))}, groups)

	own, err := s.OverrideRepository.Override(ctx, opt, client.ID)
	require.NoError(t, err)
	assert.Equal(t, options.Ptr(options.Int(24)), own)

	require.NoError(t, s.OverrideRepository.SetOverride(ctx, opt, client.ID, nil))
	own, err = s.OverrideRepository.Override(ctx, opt, client.ID)
	require.NoError(t, err)
	assert.Nil(t, own)

	require.NoError(t, s.MembershipRepository.SetMemberships(ctx, client.ID, map[int64]models.MembershipType{
		g2.ID: models.MembershipAutomatic,
	}))
	memberships, err = s.MembershipRepository.Memberships(ctx, client.ID, models.MembershipAny)
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.Equal(t, g1.ID, memberships[0].GroupID)

	refreshed, err := s.GroupRepository.GetGroup(ctx, g2.ID)
	require.NoError(t, err)
	assert.False(t, refreshed.CacheCreationDate.IsZero())

	require.NoError(t, s.GroupRepository.DeleteGroup(ctx, g1.ID))
	_, err = s.GroupRepository.GetGroup(ctx, g1.ID)
	assert.ErrorIs(t, err, ErrGroupNotFound)

	require.NoError(t, s.ClientRepository.DeleteClient(ctx, client.ID))
	clients, err := s.ClientRepository.ListClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestSQLite_Locks(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	ok, err := s.LockRepository.AcquireLock(ctx, 5, now, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.LockRepository.AcquireLock(ctx, 5, now.Add(30*time.Second), time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// expired lock is taken over
	ok, err = s.LockRepository.AcquireLock(ctx, 5, now.Add(2*time.Minute), time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := s.LockRepository.SweepLocks(ctx, now.Add(10*time.Minute), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, s.LockRepository.ReleaseLock(ctx, 5))
}

func TestSQLite_LocksAcrossUTCOffsets(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	taken := time.Date(2026, 10, 25, 0, 30, 0, 0, time.UTC)
	plusFive := time.FixedZone("UTC+5", 5*60*60)
	minusThree := time.FixedZone("UTC-3", -3*60*60)

	ok, err := s.LockRepository.AcquireLock(ctx, 9, taken, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	// same instants, other offsets: the lock is still held
	ok, err = s.LockRepository.AcquireLock(ctx, 9, taken.Add(10*time.Second).In(plusFive), time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.LockRepository.AcquireLock(ctx, 9, taken.Add(10*time.Second).In(minusThree), time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := s.LockRepository.SweepLocks(ctx, taken.Add(20*time.Second).In(plusFive), time.Minute)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.LockRepository.SweepLocks(ctx, taken.Add(2*time.Minute).In(minusThree), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSQLite_Operators(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)

	created, err := s.OperatorRepository.CreateOperator(ctx, models.Operator{Login: "admin", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = s.OperatorRepository.CreateOperator(ctx, models.Operator{Login: "admin", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)

	found, err := s.OperatorRepository.FindOperatorByLogin(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)

	require.NoError(t, s.OperatorRepository.DeleteOperator(ctx, "admin"))
	all, err := s.OperatorRepository.ListOperators(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
