package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("sqlite in-memory", func(t *testing.T) {
		db, err := Connect(Config{
			Driver: "sqlite",
			Path:   "file:connect_test?mode=memory&cache=shared",
		})
		require.NoError(t, err)
		require.NotNil(t, db)

		// The handle must be usable.
		var one int
		assert.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
		assert.Equal(t, 1, one)
	})

	t.Run("empty driver falls back to sqlite", func(t *testing.T) {
		db, err := Connect(Config{
			Path: "file:connect_default?mode=memory&cache=shared",
		})
		require.NoError(t, err)
		assert.NotNil(t, db)
	})

	t.Run("unsupported driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("mysql connection failure", func(t *testing.T) {
		db, err := Connect(Config{
			Driver:         "mysql",
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "pulse",
			TimeoutSeconds: 1,
		})
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}
