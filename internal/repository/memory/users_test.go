package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/services"
)

func TestUserStorage_UpsertAndStatus(t *testing.T) {
	t.Parallel()

	st := NewUserStorage()
	ctx := context.Background()

	_, err := st.FindUserByEmail(ctx, "ann@example.com")
	require.ErrorIs(t, err, services.ErrNotFound)

	res, err := st.UpdateUserStatus(ctx, "ann@example.com", "gold")
	require.NoError(t, err)
	require.Zero(t, res.MatchedCount)

	now := time.Now().UTC()
	res, err = st.UpsertUser(ctx, models.User{Email: "ann@example.com", Name: "Ann", Role: "user", Status: "bronze", CreatedAt: now, LastLoginAt: now})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.UpsertedCount)
	require.NotNil(t, res.UpsertedID)

	res, err = st.UpsertUser(ctx, models.User{Email: "ann@example.com", Role: "admin", Status: "silver", LastLoginAt: now.Add(time.Hour)})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.MatchedCount)

	u, err := st.FindUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, "Ann", u.Name)
	require.Equal(t, "user", u.Role)
	require.Equal(t, "bronze", u.Status)

	res, err = st.UpdateUserStatus(ctx, "ann@example.com", "gold")
	require.NoError(t, err)
	require.Equal(t, int64(1), res.MatchedCount)
	require.Equal(t, int64(1), res.ModifiedCount)

	u, err = st.FindUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, "gold", u.Status)
}

func TestAnnouncementStorage_NewestFirst(t *testing.T) {
	t.Parallel()

	st := NewAnnouncementStorage()
	ctx := context.Background()
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, title := range []string{"old", "new", "mid"} {
		offsets := []time.Duration{0, 2 * time.Hour, time.Hour}
		_, err := st.InsertAnnouncement(ctx, models.Announcement{Title: title, CreatedAt: t0.Add(offsets[i])})
		require.NoError(t, err)
	}

	got, err := st.ListAnnouncements(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []string{"new", "mid", "old"}, []string{got[0].Title, got[1].Title, got[2].Title})
}
