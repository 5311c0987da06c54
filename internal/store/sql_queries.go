package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/models"
)

const upsertValueSuffix = "ON CONFLICT (%s) DO UPDATE SET ivalue = excluded.ivalue, tvalue = excluded.tvalue"

// ── config ──────────────────────────────────────────────────────────────────

func (db *DB) buildSelectGlobalQuery(identifier string) (string, []any, error) {
	return db.builder.
		Select("ivalue", "tvalue").
		From("config").
		Where(sq.Eq{"name": identifier}).
		ToSql()
}

func (db *DB) buildSelectGlobalsQuery(identifiers []string) (string, []any, error) {
	return db.builder.
		Select("name", "ivalue", "tvalue").
		From("config").
		Where(sq.Eq{"name": identifiers}).
		ToSql()
}

func (db *DB) buildUpsertGlobalQuery(identifier string, v options.Value) (string, []any, error) {
	ivalue, tvalue := columns(v)
	return db.builder.
		Insert("config").
		Columns("name", "ivalue", "tvalue").
		Values(identifier, ivalue, tvalue).
		Suffix(fmt.Sprintf(upsertValueSuffix, "name")).
		ToSql()
}

// ── devices ─────────────────────────────────────────────────────────────────

func (db *DB) buildSelectOverrideQuery(id int64, identifier string) (string, []any, error) {
	return db.builder.
		Select("ivalue", "tvalue").
		From("devices").
		Where(sq.Eq{"hardware_id": id, "name": identifier}).
		ToSql()
}

func (db *DB) buildSelectOverridesQuery(id int64, identifiers []string) (string, []any, error) {
	return db.builder.
		Select("name", "ivalue", "tvalue").
		From("devices").
		Where(sq.Eq{"hardware_id": id, "name": identifiers}).
		ToSql()
}

func (db *DB) buildUpsertOverrideQuery(id int64, identifier string, v options.Value) (string, []any, error) {
	ivalue, tvalue := columns(v)
	return db.builder.
		Insert("devices").
		Columns("hardware_id", "name", "ivalue", "tvalue").
		Values(id, identifier, ivalue, tvalue).
		Suffix(fmt.Sprintf(upsertValueSuffix, "hardware_id, name")).
		ToSql()
}

func (db *DB) buildDeleteOverrideQuery(id int64, identifier string) (string, []any, error) {
	return db.builder.
		Delete("devices").
		Where(sq.Eq{"hardware_id": id, "name": identifier}).
		ToSql()
}

// buildSelectGroupValuesQuery yields one row per group of the client. The
// value columns are NULL for groups without an override.
func (db *DB) buildSelectGroupValuesQuery(clientID int64, identifier string) (string, []any, error) {
	return db.builder.
		Select("d.ivalue", "d.tvalue").
		From("groups_cache gc").
		LeftJoin("devices d ON d.hardware_id = gc.group_id AND d.name = ?", identifier).
		Where(sq.Eq{"gc.hardware_id": clientID}).
		Where(sq.NotEq{"gc.static": int(models.MembershipNever)}).
		OrderBy("gc.group_id").
		ToSql()
}

// ── hardware ────────────────────────────────────────────────────────────────

func (db *DB) buildInsertClientQuery(c models.Client) (string, []any, error) {
	var lastContact any
	if !c.LastContact.IsZero() {
		lastContact = c.LastContact
	}
	return db.builder.
		Insert("hardware").
		Columns("deviceid", "name", "lastdate").
		Values(c.DeviceID, c.Name, lastContact).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildSelectClientsQuery(id *int64) (string, []any, error) {
	q := db.builder.
		Select("id", "deviceid", "name", "lastdate").
		From("hardware").
		Where(sq.NotEq{"deviceid": models.GroupDeviceID}).
		OrderBy("id")
	if id != nil {
		q = q.Where(sq.Eq{"id": *id})
	}
	return q.ToSql()
}

func (db *DB) buildDeleteHardwareQuery(table, column string, id int64) (string, []any, error) {
	return db.builder.
		Delete(table).
		Where(sq.Eq{column: id}).
		ToSql()
}

func (db *DB) buildInsertGroupHardwareQuery(g models.Group) (string, []any, error) {
	return db.builder.
		Insert("hardware").
		Columns("deviceid", "name", "description").
		Values(models.GroupDeviceID, g.Name, g.Description).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildInsertGroupQuery(id int64, g models.Group) (string, []any, error) {
	return db.builder.
		Insert("groups").
		Columns("hardware_id", "request", "create_time").
		Values(id, g.Query, g.CreatedAt).
		ToSql()
}

func (db *DB) buildSelectGroupsQuery(where sq.Sqlizer) (string, []any, error) {
	q := db.builder.
		Select("h.id", "h.name", "h.description", "g.request", "g.create_time", "g.revalidate_from").
		From("hardware h").
		Join("groups g ON g.hardware_id = h.id").
		Where(sq.Eq{"h.deviceid": models.GroupDeviceID}).
		OrderBy("h.name")
	if where != nil {
		q = q.Where(where)
	}
	return q.ToSql()
}

func (db *DB) buildDeleteGroupHardwareQuery(id int64) (string, []any, error) {
	return db.builder.
		Delete("hardware").
		Where(sq.Eq{"id": id, "deviceid": models.GroupDeviceID}).
		ToSql()
}

// ── groups_cache ────────────────────────────────────────────────────────────

func (db *DB) buildSelectMembershipsQuery(clientID int64, filter models.MembershipType) (string, []any, error) {
	q := db.builder.
		Select("gc.group_id", "h.name", "gc.static").
		From("groups_cache gc").
		Join("hardware h ON h.id = gc.group_id").
		Where(sq.Eq{"gc.hardware_id": clientID}).
		OrderBy("h.name")

	switch filter {
	case models.MembershipAny:
	case models.MembershipManual:
		q = q.Where(sq.NotEq{"gc.static": int(models.MembershipAutomatic)})
	default:
		q = q.Where(sq.Eq{"gc.static": int(filter)})
	}
	return q.ToSql()
}

func (db *DB) buildSelectGroupIDsQuery(ids []int64) (string, []any, error) {
	return db.builder.
		Select("id").
		From("hardware").
		Where(sq.Eq{"deviceid": models.GroupDeviceID, "id": ids}).
		ToSql()
}

func (db *DB) buildInsertMembershipQuery(clientID, groupID int64, t models.MembershipType) (string, []any, error) {
	return db.builder.
		Insert("groups_cache").
		Columns("hardware_id", "group_id", "static").
		Values(clientID, groupID, int(t)).
		ToSql()
}

func (db *DB) buildUpdateMembershipQuery(clientID, groupID int64, t models.MembershipType) (string, []any, error) {
	return db.builder.
		Update("groups_cache").
		Set("static", int(t)).
		Where(sq.Eq{"hardware_id": clientID, "group_id": groupID}).
		ToSql()
}

func (db *DB) buildDeleteMembershipQuery(clientID, groupID int64) (string, []any, error) {
	return db.builder.
		Delete("groups_cache").
		Where(sq.Eq{"hardware_id": clientID, "group_id": groupID}).
		ToSql()
}

// buildExpireGroupCacheQuery makes the agent server rebuild the automatic
// members of a group on its next pass.
func (db *DB) buildExpireGroupCacheQuery(groupID int64, now time.Time) (string, []any, error) {
	return db.builder.
		Update("groups").
		Set("revalidate_from", now).
		Where(sq.Eq{"hardware_id": groupID}).
		ToSql()
}

// ── locks ───────────────────────────────────────────────────────────────────

func (db *DB) buildDeleteExpiredLocksQuery(id *int64, expiredBefore time.Time) (string, []any, error) {
	q := db.builder.
		Delete("locks").
		Where(sq.Lt{"since": expiredBefore})
	if id != nil {
		q = q.Where(sq.Eq{"hardware_id": *id})
	}
	return q.ToSql()
}

func (db *DB) buildInsertLockQuery(id int64, now time.Time) (string, []any, error) {
	return db.builder.
		Insert("locks").
		Columns("hardware_id", "since").
		Values(id, now).
		Suffix("ON CONFLICT (hardware_id) DO NOTHING").
		ToSql()
}

// ── operators ───────────────────────────────────────────────────────────────

func (db *DB) buildInsertOperatorQuery(o models.Operator) (string, []any, error) {
	return db.builder.
		Insert("operators").
		Columns("login", "password_hash").
		Values(o.Login, o.PasswordHash).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func (db *DB) buildDeleteOperatorQuery(login string) (string, []any, error) {
	return db.builder.
		Delete("operators").
		Where(sq.Eq{"login": login}).
		ToSql()
}

func (db *DB) buildSelectOperatorsQuery(login *string) (string, []any, error) {
	q := db.builder.
		Select("id", "login", "password_hash", "created_at").
		From("operators").
		OrderBy("login")
	if login != nil {
		q = q.Where(sq.Eq{"login": *login})
	}
	return q.ToSql()
}
