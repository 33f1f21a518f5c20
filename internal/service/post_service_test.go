package service

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/feed"
	"inkwell/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestPostServiceHomeFeedClampsPage(t *testing.T) {
	posts := noopPostRepo()
	posts.countAllFn = func(context.Context) (int64, error) { return 25, nil }

	var gotOffset int
	posts.listFn = func(_ context.Context, limit, offset int) ([]*models.Post, error) {
		gotOffset = offset
		return []*models.Post{{ID: 21}}, nil
	}

	svc := NewPostService(posts, noopGroupRepo(), noopUserRepo(), noopCommentRepo(), testFlags())
	ctx := context.Background()

	page, err := svc.HomeFeed(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 20, gotOffset)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)

	page, err = svc.HomeFeed(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 0, gotOffset)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestPostServiceHomeFeedEmpty(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopGroupRepo(), noopUserRepo(), noopCommentRepo(), testFlags())

	page, err := svc.HomeFeed(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.NotNil(t, page.Posts)
	assert.Empty(t, page.Posts)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestPostServiceHomeFeedCachesFirstPage(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer cache.SetClient(nil)

	posts := noopPostRepo()
	posts.countAllFn = func(context.Context) (int64, error) { return 1, nil }

	calls := 0
	posts.listFn = func(context.Context, int, int) ([]*models.Post, error) {
		calls++
		return []*models.Post{{ID: 1, Text: "cached"}}, nil
	}

	svc := NewPostService(posts, noopGroupRepo(), noopUserRepo(), noopCommentRepo(), testFlags())
	ctx := context.Background()

	first, err := svc.HomeFeed(ctx, 1)
	require.NoError(t, err)
	require.Len(t, first.Posts, 1)
	assert.Equal(t, 1, calls)

	// second read is served from the cache
	second, err := svc.HomeFeed(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "cached", second.Posts[0].Text)
	assert.Equal(t, 1, calls)

	// an invalidated feed refetches
	cache.InvalidateHomeFeed(ctx)
	_, err = svc.HomeFeed(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestPostServiceHomeFeedCacheExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer cache.SetClient(nil)

	posts := noopPostRepo()
	posts.countAllFn = func(context.Context) (int64, error) { return 1, nil }
	calls := 0
	posts.listFn = func(context.Context, int, int) ([]*models.Post, error) {
		calls++
		return []*models.Post{{ID: 1}}, nil
	}

	svc := NewPostService(posts, noopGroupRepo(), noopUserRepo(), noopCommentRepo(), testFlags())
	ctx := context.Background()

	_, err := svc.HomeFeed(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	mr.FastForward(cache.HomeFeedTTL + time.Second)

	_, err = svc.HomeFeed(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestPostServiceCreatePostValidation(t *testing.T) {
	groups := noopGroupRepo()
	groups.getByIDFn = func(_ context.Context, id uint) (*models.Group, error) {
		return nil, models.NewNotFoundError("Group", id)
	}
	svc := NewPostService(noopPostRepo(), groups, noopUserRepo(), noopCommentRepo(), testFlags())
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 1, Text: "   "})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")

	missing := uint(42)
	_, err = svc.CreatePost(ctx, CreatePostInput{AuthorID: 1, Text: "hello", GroupID: &missing})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestPostServiceCreatePostSetsPubDate(t *testing.T) {
	posts := noopPostRepo()
	var created *models.Post
	posts.createFn = func(_ context.Context, post *models.Post) error {
		post.ID = 7
		created = post
		return nil
	}

	svc := NewPostService(posts, noopGroupRepo(), noopUserRepo(), noopCommentRepo(), testFlags())

	got, err := svc.CreatePost(context.Background(), CreatePostInput{AuthorID: 3, Text: "  first post  "})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "first post", created.Text)
	assert.Equal(t, uint(3), created.AuthorID)
	assert.WithinDuration(t, time.Now().UTC(), created.PubDate, 5*time.Second)
	assert.Equal(t, uint(7), got.ID)
}

func TestPostServiceUpdatePostOwnership(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, Text: "original", AuthorID: 2}, nil
	}

	svc := NewPostService(posts, noopGroupRepo(), noopUserRepo(), noopCommentRepo(), testFlags())
	ctx := context.Background()

	_, err := svc.UpdatePost(ctx, UpdatePostInput{UserID: 1, PostID: 5, Text: "edited"})
	assertAppErrorCode(t, err, "FORBIDDEN")

	var updated *models.Post
	posts.updateFn = func(_ context.Context, post *models.Post) error {
		updated = post
		return nil
	}
	_, err = svc.UpdatePost(ctx, UpdatePostInput{UserID: 2, PostID: 5, Text: "edited"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "edited", updated.Text)
	assert.Nil(t, updated.GroupID)
}

func TestPostServiceUpdatePostNotFound(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}

	svc := NewPostService(posts, noopGroupRepo(), noopUserRepo(), noopCommentRepo(), testFlags())

	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{UserID: 1, PostID: 404, Text: "x"})
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestPostServiceDeletePostOwnership(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, AuthorID: 2}, nil
	}
	deleted := false
	posts.deleteFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}

	svc := NewPostService(posts, noopGroupRepo(), noopUserRepo(), noopCommentRepo(), testFlags())
	ctx := context.Background()

	err := svc.DeletePost(ctx, DeletePostInput{UserID: 1, PostID: 5})
	assertAppErrorCode(t, err, "FORBIDDEN")
	assert.False(t, deleted)

	require.NoError(t, svc.DeletePost(ctx, DeletePostInput{UserID: 2, PostID: 5}))
	assert.True(t, deleted)
}

func TestPostServiceGroupFeedUnknownGroup(t *testing.T) {
	groups := noopGroupRepo()
	groups.getBySlugFn = func(_ context.Context, slug string) (*models.Group, error) {
		return nil, models.NewNotFoundError("Group", slug)
	}

	svc := NewPostService(noopPostRepo(), groups, noopUserRepo(), noopCommentRepo(), testFlags())

	_, _, err := svc.GroupFeed(context.Background(), "nope", 1)
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestPostServiceGroupFeedWindows(t *testing.T) {
	posts := noopPostRepo()
	posts.countByGroupFn = func(context.Context, uint) (int64, error) { return 13, nil }

	var gotLimit, gotOffset int
	posts.listByGroupFn = func(_ context.Context, _ uint, limit, offset int) ([]*models.Post, error) {
		gotLimit, gotOffset = limit, offset
		return []*models.Post{{ID: 11}}, nil
	}

	svc := NewPostService(posts, noopGroupRepo(), noopUserRepo(), noopCommentRepo(), testFlags())

	group, page, err := svc.GroupFeed(context.Background(), "cats", 2)
	require.NoError(t, err)
	assert.Equal(t, "cats", group.Slug)
	assert.Equal(t, feed.PageSize, gotLimit)
	assert.Equal(t, feed.PageSize, gotOffset)
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 2, page.TotalPages)
}

func TestPostServiceGetPostWithComments(t *testing.T) {
	comments := noopCommentRepo()
	comments.listByPostFn = func(_ context.Context, postID uint) ([]*models.Comment, error) {
		return []*models.Comment{{ID: 2, PostID: postID}, {ID: 1, PostID: postID}}, nil
	}

	svc := NewPostService(noopPostRepo(), noopGroupRepo(), noopUserRepo(), comments, testFlags())

	post, got, err := svc.GetPost(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, uint(9), post.ID)
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
}
