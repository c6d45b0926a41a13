package postgres

import (
	"bytes"
	"database/sql"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 4)

	for _, name := range files {
		body, err := fs.ReadFile(migrationFS, name)
		require.NoError(t, err)
		text := string(body)
		assert.Contains(t, text, "-- +goose Up", name)
		assert.Contains(t, text, "-- +goose Down", name)
	}
}

func TestMigrateRejectsUnknownCommand(t *testing.T) {
	t.Parallel()

	// sql.Open does not connect, and the command is rejected before any query runs.
	db, err := sql.Open("pgx", "postgres://localhost:1/none")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = Migrate(db, "sideways", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}

func TestSlogGooseLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := &slogGooseLogger{logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	l.Printf("applied %d", 3)
	l.Fatalf("failed %s", "badly")

	out := buf.String()
	assert.Contains(t, out, "applied 3")
	assert.Contains(t, out, "failed badly")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}
