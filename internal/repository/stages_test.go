package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
)

func stageNames(t *testing.T, q models.PostQuery) []string {
	t.Helper()
	var names []string
	for _, stage := range BuildPostListPipeline(q) {
		require.Len(t, stage, 1)
		names = append(names, stage[0].Key)
	}
	return names
}

func TestBuildPostListPipeline_StageOrder(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		[]string{StageMatch, StageAddFields, StageSort, StageSkip, StageLimit},
		stageNames(t, models.PostQuery{Limit: 5}),
	)
}

func TestBuildPostListPipeline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		q         models.PostQuery
		wantMatch bson.D
		wantSort  bson.D
		wantSkip  int64
	}{
		{
			name:      "newest first, no tag",
			q:         models.PostQuery{Skip: 0, Limit: 5},
			wantMatch: bson.D{},
			wantSort:  bson.D{{Key: "created_at", Value: -1}},
			wantSkip:  0,
		},
		{
			name:      "popular with tag",
			q:         models.PostQuery{Tag: "general", SortByPopularity: true, Skip: 5, Limit: 5},
			wantMatch: bson.D{{Key: "tag", Value: "general"}},
			wantSort:  bson.D{{Key: "votes", Value: -1}, {Key: "created_at", Value: -1}},
			wantSkip:  5,
		},
		{
			name:      "negative skip clamps",
			q:         models.PostQuery{Skip: -10, Limit: 5},
			wantMatch: bson.D{},
			wantSort:  bson.D{{Key: "created_at", Value: -1}},
			wantSkip:  0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := BuildPostListPipeline(tt.q)
			require.Len(t, p, 5)

			require.Equal(t, tt.wantMatch, p[0][0].Value)
			require.Equal(t, bson.D{
				{Key: "votes", Value: bson.D{{Key: "$subtract", Value: bson.A{"$upVote", "$downVote"}}}},
			}, p[1][0].Value)
			require.Equal(t, tt.wantSort, p[2][0].Value)
			require.Equal(t, tt.wantSkip, p[3][0].Value)
			require.Equal(t, tt.q.Limit, p[4][0].Value)
		})
	}
}

func TestTagFilter(t *testing.T) {
	t.Parallel()

	require.Equal(t, bson.D{}, TagFilter(""))
	require.Equal(t, bson.D{{Key: "tag", Value: "General"}}, TagFilter("General"))
}
