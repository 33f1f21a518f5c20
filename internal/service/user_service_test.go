package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceGetProfile(t *testing.T) {
	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 7, Username: username}, nil
	}
	follows := noopFollowRepo()
	follows.countFollowersFn = func(context.Context, uint) (int64, error) { return 4, nil }
	follows.countFollowingFn = func(context.Context, uint) (int64, error) { return 2, nil }
	follows.existsFn = func(_ context.Context, userID, authorID uint) (bool, error) {
		return userID == 3 && authorID == 7, nil
	}
	posts := noopPostRepo()
	posts.countByAuthorFn = func(context.Context, uint) (int64, error) { return 12, nil }

	svc := NewUserService(users, follows, posts)
	ctx := context.Background()

	profile, err := svc.GetProfile(ctx, "author", 3)
	require.NoError(t, err)
	assert.Equal(t, uint(7), profile.User.ID)
	assert.Equal(t, int64(4), profile.FollowersCount)
	assert.Equal(t, int64(2), profile.FollowingCount)
	assert.Equal(t, int64(12), profile.PostsCount)
	assert.True(t, profile.Following)

	// anonymous viewer
	profile, err = svc.GetProfile(ctx, "author", 0)
	require.NoError(t, err)
	assert.False(t, profile.Following)

	// own profile never reports following
	profile, err = svc.GetProfile(ctx, "author", 7)
	require.NoError(t, err)
	assert.False(t, profile.Following)
}

func TestUserServiceGetProfileUnknownUser(t *testing.T) {
	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return nil, models.NewNotFoundError("User", username)
	}

	svc := NewUserService(users, noopFollowRepo(), noopPostRepo())

	_, err := svc.GetProfile(context.Background(), "ghost", 0)
	assertAppErrorCode(t, err, "NOT_FOUND")
}
