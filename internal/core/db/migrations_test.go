package db

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "migrate_test.db")
	conn, err := Open("sqlite://" + path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestMigrateUp(t *testing.T) {
	conn := openTestDB(t)

	if err := MigrateUp(conn); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}

	// Schema is usable after migration
	if _, err := conn.Exec("INSERT INTO programs (uid, name) VALUES ('p1', 'test')"); err != nil {
		t.Fatalf("schema not usable after migration: %v", err)
	}
}

func TestMigrateUp_Idempotent(t *testing.T) {
	conn := openTestDB(t)

	if err := MigrateUp(conn); err != nil {
		t.Fatalf("first MigrateUp failed: %v", err)
	}
	if err := MigrateUp(conn); err != nil {
		t.Fatalf("second MigrateUp failed: %v", err)
	}

	var count int
	if err := conn.Get(&count, "SELECT COUNT(*) FROM migrations"); err != nil {
		t.Fatalf("failed to count migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("migrations table has %d rows after double run, want 1", count)
	}
}

func TestMigrateUp_ChecksumMismatch(t *testing.T) {
	conn := openTestDB(t)

	if err := MigrateUp(conn); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}

	// Tamper with the recorded checksum of the applied migration
	_, err := conn.Exec("UPDATE migrations SET checksum = 'deadbeef'")
	if err != nil {
		t.Fatalf("failed to tamper with checksum: %v", err)
	}

	if err := MigrateUp(conn); err == nil {
		t.Error("MigrateUp succeeded with tampered checksum, want error")
	}
}

func TestMigrateStatus(t *testing.T) {
	conn := openTestDB(t)

	statuses, err := MigrateStatus(conn)
	if err != nil {
		t.Fatalf("MigrateStatus failed: %v", err)
	}
	if len(statuses) == 0 {
		t.Fatal("MigrateStatus returned no migrations")
	}
	for _, s := range statuses {
		if s.Applied {
			t.Errorf("migration %s reported applied before MigrateUp", s.ID)
		}
	}

	if err := MigrateUp(conn); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}

	statuses, err = MigrateStatus(conn)
	if err != nil {
		t.Fatalf("MigrateStatus failed: %v", err)
	}
	for _, s := range statuses {
		if !s.Applied {
			t.Errorf("migration %s reported pending after MigrateUp", s.ID)
		}
		if s.AppliedAt == nil {
			t.Errorf("migration %s has no applied_at timestamp", s.ID)
		}
	}
}

func TestLoadQueries(t *testing.T) {
	conn := openTestDB(t)

	queries, err := LoadQueries(conn)
	if err != nil {
		t.Fatalf("LoadQueries failed: %v", err)
	}

	if err := MigrateUp(conn); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}

	var row struct {
		UID             string `db:"uid"`
		Name            string `db:"name"`
		FormName        string `db:"form_name"`
		DisplayFormName string `db:"display_form_name"`
		ValueType       string `db:"value_type"`
	}
	err = queries.Get("get-data-element", &row, "nowhere")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("get-data-element on empty database: err = %v, want sql.ErrNoRows", err)
	}

	if err := queries.Get("no-such-query", &row, "x"); err == nil {
		t.Error("expected error for unknown query name")
	}
}
