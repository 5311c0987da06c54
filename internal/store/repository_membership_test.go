package store

import (
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-braintacle/models"
)

var membershipColumns = []string{"group_id", "name", "static"}

const selectMembershipsSQL = `SELECT gc.group_id, h.name, gc.static FROM groups_cache gc JOIN hardware h ON h.id = gc.group_id WHERE gc.hardware_id = $1`

func newTestMembershipRepo(t *testing.T, now time.Time) (*membershipRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &membershipRepository{db: db, logger: db.logger, now: func() time.Time { return now }}, mock
}

func TestMemberships_Filter(t *testing.T) {
	tests := []struct {
		filter models.MembershipType
		where  string
		args   []driver.Value
	}{
		{models.MembershipAny, ``, []driver.Value{int64(1)}},
		{models.MembershipManual, ` AND gc.static <> $2`, []driver.Value{int64(1), 0}},
		{models.MembershipNever, ` AND gc.static = $2`, []driver.Value{int64(1), 2}},
	}

	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			repo, mock := newTestMembershipRepo(t, time.Time{})

			mock.ExpectQuery(regexp.QuoteMeta(selectMembershipsSQL + tt.where + ` ORDER BY h.name`)).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(membershipColumns).AddRow(int64(7), "servers", 2))

			got, err := repo.Memberships(testContext(), 1, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, []models.GroupMembership{{GroupID: 7, GroupName: "servers", Type: models.MembershipNever}}, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSetMemberships(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	repo, mock := newTestMembershipRepo(t, now)

	// 1: automatic, stored always -> delete + expire cache
	// 2: always, not stored -> insert
	// 3: never, stored always -> update
	// 4: always, stored always -> nothing
	// 5: automatic, not stored -> nothing
	// 99: not a group -> skipped
	request := map[int64]models.MembershipType{
		1:  models.MembershipAutomatic,
		2:  models.MembershipAlways,
		3:  models.MembershipNever,
		4:  models.MembershipAlways,
		5:  models.MembershipAutomatic,
		99: models.MembershipAlways,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM hardware WHERE deviceid = $1 AND id IN ($2,$3,$4,$5,$6,$7)`)).
		WithArgs(models.GroupDeviceID, int64(1), int64(2), int64(3), int64(4), int64(5), int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)).AddRow(int64(2)).AddRow(int64(3)).AddRow(int64(4)).AddRow(int64(5)))
	mock.ExpectQuery(regexp.QuoteMeta(selectMembershipsSQL + ` ORDER BY h.name`)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(membershipColumns).
			AddRow(int64(1), "a", 1).
			AddRow(int64(3), "c", 1).
			AddRow(int64(4), "d", 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM groups_cache WHERE group_id = $1 AND hardware_id = $2`)).
		WithArgs(int64(1), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE groups SET revalidate_from = $1 WHERE hardware_id = $2`)).
		WithArgs(now, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO groups_cache (hardware_id,group_id,static) VALUES ($1,$2,$3)`)).
		WithArgs(int64(42), int64(2), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE groups_cache SET static = $1 WHERE group_id = $2 AND hardware_id = $3`)).
		WithArgs(2, int64(3), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SetMemberships(testContext(), 42, request))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetMemberships_Empty(t *testing.T) {
	repo, mock := newTestMembershipRepo(t, time.Time{})

	require.NoError(t, repo.SetMemberships(testContext(), 42, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
