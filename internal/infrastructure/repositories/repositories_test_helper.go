package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		password_hash TEXT,
		role TEXT NOT NULL,
		status BOOLEAN NOT NULL,
		phone_number TEXT,
		document_number TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCVTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE cv_statuses (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE cvs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		status_id TEXT NOT NULL,
		file_path TEXT NOT NULL,
		ia_result TEXT,
		uploaded_at DATETIME NOT NULL
	);`)
}

func createServiceTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE services (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		image_url TEXT
	);`)
}

func createServiceRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE service_requests (
		id TEXT PRIMARY KEY,
		service_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		specialist_id TEXT,
		service_details TEXT,
		phone_number TEXT,
		status TEXT NOT NULL,
		acceptance_status TEXT NOT NULL,
		requested_at DATETIME
	);`)
}

func createPaymentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		specialist_id TEXT NOT NULL,
		client_id TEXT NOT NULL,
		amount NUMERIC NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME
	);`)
}
