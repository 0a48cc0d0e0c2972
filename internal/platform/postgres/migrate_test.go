package postgres

import (
	"context"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	versions, err := EmbeddedMigrations()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, versions)
}

func TestMigrate_UnknownCommand(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = Migrate(context.Background(), db, "sideways", slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}

func TestSlogGooseLogger(t *testing.T) {
	buf, l := logger.NewTestLogger()
	gl := &slogGooseLogger{logger: l}

	assert.NotPanics(t, func() {
		gl.Printf("applied %d migrations", 3)
		gl.Fatalf("failed: %s", "boom")
	})

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "applied 3 migrations", entries[0]["msg"])
	assert.Equal(t, "ERROR", entries[1]["level"])
}
