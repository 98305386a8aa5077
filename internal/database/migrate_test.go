package database

import (
	"io"
	"os"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsAreReadable(t *testing.T) {
	src, err := iofs.New(migrationFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, identifier, err := src.ReadUp(first)
	require.NoError(t, err)
	defer up.Close()
	assert.Equal(t, "create_chat_tables", identifier)

	body, err := io.ReadAll(up)
	require.NoError(t, err)
	for _, constraint := range []string{
		ConstraintUsernameUnique,
		ConstraintGroupNameUnique,
		ConstraintMembershipUnique,
		ConstraintMemberGroupFK,
		ConstraintMemberUserFK,
		ConstraintMessageGroupFK,
		ConstraintMessageUserFK,
	} {
		assert.Contains(t, string(body), constraint)
	}
	assert.Contains(t, string(body), "ON DELETE CASCADE")
}

func TestMigratorIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mg, err := NewMigrator(dsn, logger)
	require.NoError(t, err)
	defer mg.Close()

	require.NoError(t, mg.Up())
	require.NoError(t, mg.Up(), "re-running up is a no-op")
}
