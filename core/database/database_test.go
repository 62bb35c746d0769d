package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "inventory",
			TimeoutSeconds: 2,
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})
}

func TestMySQLDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 3307, User: "app", Password: "p@ss:word", Name: "inventory", TimeoutSeconds: 5}
	dsn := cfg.mysqlDSN()

	assert.Contains(t, dsn, "app:p@ss:word@tcp(db:3307)/inventory?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "timeout=5s")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestConfigTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, Config{}.timeout())
	assert.Equal(t, 2*time.Second, Config{TimeoutSeconds: 2}.timeout())
}
