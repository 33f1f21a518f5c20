package service

import (
	"context"
	"strings"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/featureflags"
	"inkwell/internal/feed"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// PostService provides post publishing and feed assembly logic.
type PostService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	flags       *featureflags.Manager
}

type CreatePostInput struct {
	AuthorID uint
	Text     string
	GroupID  *uint
	ImageURL string
}

type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Text     string
	GroupID  *uint
	ImageURL string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

const maxPostLen = 50000

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	flags *featureflags.Manager,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		flags:       flags,
	}
}

// HomeFeed returns one page of the global feed, newest first. The first page
// is served through the cache; deeper pages always hit the database.
func (s *PostService) HomeFeed(ctx context.Context, page int) (*feed.Page, error) {
	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	w := feed.WindowFor(total, page)

	if w.Number == 1 && s.flags.Enabled("home_feed_cache", 0) {
		var cached feed.Page
		err := cache.Aside(ctx, cache.HomeFeedKey, &cached, cache.HomeFeedTTL, func() error {
			posts, fetchErr := s.postRepo.List(ctx, w.Limit, w.Offset)
			if fetchErr != nil {
				return fetchErr
			}
			cached = *feed.NewPage(posts, total, w)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &cached, nil
	}

	posts, err := s.postRepo.List(ctx, w.Limit, w.Offset)
	if err != nil {
		return nil, err
	}
	return feed.NewPage(posts, total, w), nil
}

// GroupFeed returns the group plus one page of its posts.
func (s *PostService) GroupFeed(ctx context.Context, slug string, page int) (*models.Group, *feed.Page, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}
	w := feed.WindowFor(total, page)
	posts, err := s.postRepo.ListByGroup(ctx, group.ID, w.Limit, w.Offset)
	if err != nil {
		return nil, nil, err
	}
	return group, feed.NewPage(posts, total, w), nil
}

// ProfileFeed returns the author plus one page of their posts.
func (s *PostService) ProfileFeed(ctx context.Context, username string, page int) (*models.User, *feed.Page, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, nil, err
	}
	w := feed.WindowFor(total, page)
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, w.Limit, w.Offset)
	if err != nil {
		return nil, nil, err
	}
	return author, feed.NewPage(posts, total, w), nil
}

// GetPost returns a single post with its comments, newest first.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, []*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > maxPostLen {
		return nil, models.NewValidationError("Text too long (max 50000 characters)")
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, models.NewValidationError("Group does not exist")
		}
	}

	post := &models.Post{
		Text:     text,
		PubDate:  time.Now().UTC(),
		AuthorID: in.AuthorID,
		GroupID:  in.GroupID,
		ImageURL: in.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost edits a post. Only the author may edit; the publication date
// never changes. The group assignment is replaced by the provided value,
// passing nil detaches the post from its group.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > maxPostLen {
		return nil, models.NewValidationError("Text too long (max 50000 characters)")
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, models.NewValidationError("Group does not exist")
		}
	}

	post.Text = text
	post.GroupID = in.GroupID
	post.Group = nil
	if in.ImageURL != "" {
		post.ImageURL = in.ImageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}
	if post.AuthorID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, in.PostID)
}
