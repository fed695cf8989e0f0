package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/lay-scout/internal/database"
)

func TestNewRepositoriesRequiresDB(t *testing.T) {
	repos, err := NewRepositories(nil)
	require.Error(t, err)
	assert.Nil(t, repos)
}

func TestNewRepositories(t *testing.T) {
	repos, err := NewRepositories(&database.DB{})
	require.NoError(t, err)
	assert.NotNil(t, repos.Run)
}
