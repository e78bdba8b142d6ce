// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-event-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// Table and column names of the schema in migrations/.
const (
	authUsersTable   = "auth_users"
	tokenUsersTable  = "jwt_users"
	eventsTable      = "events"
	ownedEventsTable = "jwt_events"
	ownerColumn      = "user_id"
)

var (
	userColumns   = []string{"id", "name", "secret", "tier"}
	recordColumns = []string{"id", "title", "description", "created_at", "updated_at"}
)

// likeEscaper escapes LIKE wildcards so a search term matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

const (
	titleContains       = `LOWER(title) LIKE LOWER(?) ESCAPE '\'`
	descriptionContains = `LOWER(description) LIKE LOWER(?) ESCAPE '\'`
)

type userQueries struct {
	builder sq.StatementBuilderType
	table   string
}

func (q userQueries) insertUser(user models.User) (string, []any, error) {
	return q.builder.
		Insert(q.table).
		Columns(userColumns...).
		Values(user.UserID, user.Name, user.Secret, string(user.Tier)).
		ToSql()
}

func (q userQueries) selectUserBy(column, value string) (string, []any, error) {
	return q.builder.
		Select(userColumns...).
		From(q.table).
		Where(sq.Eq{column: value}).
		ToSql()
}

// recordQueries builds statements for one record table. With a non-empty
// ownerColumn every statement is constrained to the owner.
type recordQueries struct {
	builder     sq.StatementBuilderType
	table       string
	ownerColumn string
}

func (q recordQueries) scoped() bool {
	return q.ownerColumn != ""
}

// byID matches one record, within the owner's records when scoped.
func (q recordQueries) byID(ownerID, recordID string) sq.Eq {
	where := sq.Eq{"id": recordID}
	if q.scoped() {
		where[q.ownerColumn] = ownerID
	}
	return where
}

func (q recordQueries) insertRecord(record models.Record) (string, []any, error) {
	columns := recordColumns
	values := []any{record.ID, record.Title, record.Description, record.CreatedAt, record.UpdatedAt}
	if q.scoped() {
		columns = append(append([]string{}, recordColumns...), q.ownerColumn)
		values = append(values, record.OwnerID)
	}

	return q.builder.
		Insert(q.table).
		Columns(columns...).
		Values(values...).
		ToSql()
}

func (q recordQueries) selectRecord(ownerID, recordID string) (string, []any, error) {
	return q.builder.
		Select(recordColumns...).
		From(q.table).
		Where(q.byID(ownerID, recordID)).
		ToSql()
}

// updateRecord always refreshes updated_at, then sets each non-nil field.
func (q recordQueries) updateRecord(update models.RecordUpdate, updatedAt time.Time) (string, []any, error) {
	stmt := q.builder.
		Update(q.table).
		Set("updated_at", updatedAt)

	if update.Title != nil {
		stmt = stmt.Set("title", *update.Title)
	}
	if update.Description != nil {
		stmt = stmt.Set("description", *update.Description)
	}

	return stmt.Where(q.byID(update.OwnerID, update.ID)).ToSql()
}

func (q recordQueries) deleteRecord(ownerID, recordID string) (string, []any, error) {
	return q.builder.
		Delete(q.table).
		Where(q.byID(ownerID, recordID)).
		ToSql()
}

func (q recordQueries) searchRecords(ownerID, term string) (string, []any, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"

	stmt := q.builder.
		Select(recordColumns...).
		From(q.table).
		Where(sq.Or{
			sq.Expr(titleContains, pattern),
			sq.Expr(descriptionContains, pattern),
		})
	if q.scoped() {
		stmt = stmt.Where(sq.Eq{q.ownerColumn: ownerID})
	}

	return stmt.OrderBy("created_at", "id").ToSql()
}
