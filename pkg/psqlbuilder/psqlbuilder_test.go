package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollarPlaceholders(t *testing.T) {
	query, args, err := Select("value").
		From("local_storage").
		Where(squirrel.Eq{"key": "userBookings"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM local_storage WHERE key = $1", query)
	assert.Equal(t, []interface{}{"userBookings"}, args)
}

func TestDeleteBuilder(t *testing.T) {
	query, _, err := Delete("local_storage").Where(squirrel.Eq{"key": "k"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM local_storage WHERE key = $1", query)
}
