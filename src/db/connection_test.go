package db

import (
	"testing"

	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteAndMigrate(t *testing.T) {
	db, err := Connect("sqlite://file::memory:?cache=shared")
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	for _, model := range models.AllModels() {
		assert.True(t, db.Migrator().HasTable(model), "%T should have a table", model)
	}
}
