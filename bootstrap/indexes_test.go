package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestPostIndexes_CoverListingSort(t *testing.T) {
	t.Parallel()

	idx := PostIndexes()
	require.Len(t, idx, 3)

	keys, ok := idx[0].Keys.(bson.D)
	require.True(t, ok)
	require.Equal(t, bson.D{{Key: "tag", Value: 1}, {Key: "created_at", Value: -1}}, keys)
}

func TestUserIndexes_EmailUnique(t *testing.T) {
	t.Parallel()

	idx := UserIndexes()
	require.Len(t, idx, 1)
	require.Equal(t, bson.D{{Key: "email", Value: 1}}, idx[0].Keys)
	require.NotNil(t, idx[0].Options)
}
