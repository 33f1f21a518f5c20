package service

import (
	"context"

	"inkwell/internal/feed"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// FollowService provides follow-edge and following-feed business logic.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
}

func NewFollowService(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
		postRepo:   postRepo,
	}
}

// Follow subscribes the user to the author's posts. Following twice is a
// no-op, following yourself is rejected.
func (s *FollowService) Follow(ctx context.Context, userID uint, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	if author.ID == userID {
		return models.NewValidationError("You cannot follow yourself")
	}
	return s.followRepo.Create(ctx, &models.Follow{UserID: userID, AuthorID: author.ID})
}

// Unfollow removes the subscription. Unfollowing someone you do not follow
// is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	return s.followRepo.Delete(ctx, userID, author.ID)
}

// IsFollowing reports whether the user follows the named author.
func (s *FollowService) IsFollowing(ctx context.Context, userID uint, authorUsername string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return false, err
	}
	return s.followRepo.Exists(ctx, userID, author.ID)
}

// FollowingFeed returns one page of posts by authors the user follows.
func (s *FollowService) FollowingFeed(ctx context.Context, userID uint, page int) (*feed.Page, error) {
	total, err := s.postRepo.CountFollowed(ctx, userID)
	if err != nil {
		return nil, err
	}
	w := feed.WindowFor(total, page)
	posts, err := s.postRepo.ListFollowed(ctx, userID, w.Limit, w.Offset)
	if err != nil {
		return nil, err
	}
	return feed.NewPage(posts, total, w), nil
}
