package store

import (
	"database/sql"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-event-keeper/internal/config"
	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 10, 30, 0, 123456789, time.UTC)

// sequentialIDs yields "id-1", "id-2", ...
type sequentialIDs struct {
	n atomic.Int64
}

func (s *sequentialIDs) Generate() string {
	return "id-" + strconv.FormatInt(s.n.Add(1), 10)
}

func testOptions() []Option {
	return []Option{
		WithIDGenerator(&sequentialIDs{}),
		WithClock(func() time.Time { return testNow }),
	}
}

// newMockDB returns a postgres-flavoured DB over sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, config.DriverPostgres, logger.Nop()), mock
}

// newSQLiteDB returns a migrated in-memory sqlite DB.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	conn, err := sql.Open(sqliteDriverName, sqliteDSN(sqliteMemory))
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	db := newDB(conn, config.DriverSQLite, logger.Nop())
	require.NoError(t, db.Migrate())

	return db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
