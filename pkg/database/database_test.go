package database

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"SocialMedia/models"
	"SocialMedia/pkg/config"
)

func memorySettings() config.Settings {
	return config.Settings{DBDriver: "sqlite", DBDSN: ":memory:", DBMaxOpenConns: 10, DBMaxIdleConns: 5}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestOpenAndMigrateInMemory(t *testing.T) {
	req := require.New(t)
	db, err := Open(memorySettings(), quietLogger())
	req.NoError(err)
	t.Cleanup(func() { _ = Close(db) })

	req.NoError(Migrate(context.Background(), db))
	req.True(db.Migrator().HasTable("Account"))
	req.True(db.Migrator().HasTable("Message"))
	req.True(db.Migrator().HasIndex(&models.Account{}, "Username"))

	sqlDB, err := db.DB()
	req.NoError(err)
	req.Equal(1, sqlDB.Stats().MaxOpenConnections)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	s := memorySettings()
	s.DBDriver = "oracle"
	_, err := Open(s, quietLogger())
	require.ErrorContains(t, err, "unsupported driver")
}

func TestIsInMemory(t *testing.T) {
	req := require.New(t)
	req.True(isInMemory(config.Settings{DBDriver: "sqlite", DBDSN: ":memory:"}))
	req.True(isInMemory(config.Settings{DBDriver: "sqlite", DBDSN: "file:x?mode=memory&cache=shared"}))
	req.False(isInMemory(config.Settings{DBDriver: "sqlite", DBDSN: "social.db"}))
	req.False(isInMemory(config.Settings{DBDriver: "mysql", DBDSN: ":memory:"}))
}
