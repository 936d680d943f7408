package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
)

func TestUserService_UpdateStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     UpdateUserStatusRequest
		setup   func(m *MockUserStorage)
		wantErr error
	}{
		{
			name:    "missing status",
			req:     UpdateUserStatusRequest{Email: "a@b.c", Status: "  "},
			setup:   func(_ *MockUserStorage) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "unknown user",
			req:  UpdateUserStatusRequest{Email: "a@b.c", Status: "gold"},
			setup: func(m *MockUserStorage) {
				m.EXPECT().UpdateUserStatus(gomock.Any(), "a@b.c", "gold").
					Return(models.UpdateResult{Acknowledged: true}, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "store error",
			req:  UpdateUserStatusRequest{Email: "a@b.c", Status: "gold"},
			setup: func(m *MockUserStorage) {
				m.EXPECT().UpdateUserStatus(gomock.Any(), "a@b.c", "gold").
					Return(models.UpdateResult{}, errors.New("boom"))
			},
			wantErr: errors.New("boom"),
		},
		{
			name: "updated",
			req:  UpdateUserStatusRequest{Email: " a@b.c ", Status: "gold"},
			setup: func(m *MockUserStorage) {
				m.EXPECT().UpdateUserStatus(gomock.Any(), "a@b.c", "gold").
					Return(models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockUserStorage(ctrl)
			tt.setup(m)

			got, err := NewUserService(m).UpdateStatus(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidRequest) || errors.Is(tt.wantErr, ErrNotFound) {
					require.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(1), got.ModifiedCount)
		})
	}
}

func TestUserService_UpsertUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := NewMockUserStorage(ctrl)
	svc := NewUserService(m)

	_, err := svc.UpsertUser(context.Background(), UpsertUserRequest{Email: "not-an-email"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	m.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.UpdateResult, error) {
			require.Equal(t, "ann@example.com", u.Email)
			require.Equal(t, models.DefaultUserRole, u.Role)
			require.Equal(t, models.DefaultUserStatus, u.Status)
			require.False(t, u.CreatedAt.IsZero())
			return models.UpdateResult{Acknowledged: true, UpsertedCount: 1}, nil
		})
	res, err := svc.UpsertUser(context.Background(), UpsertUserRequest{Email: "ann@example.com", Name: "Ann"})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.UpsertedCount)
}

func TestUserService_GetUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := NewMockUserStorage(ctrl)
	svc := NewUserService(m)

	_, err := svc.GetUser(context.Background(), " ")
	require.ErrorIs(t, err, ErrInvalidRequest)

	m.EXPECT().FindUserByEmail(gomock.Any(), "x@y.z").Return(models.User{}, ErrNotFound)
	_, err = svc.GetUser(context.Background(), "x@y.z")
	require.ErrorIs(t, err, ErrNotFound)
}
