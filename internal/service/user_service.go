package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// UserService provides author profile business logic.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	postRepo   repository.PostRepository
}

// Profile is an author page header: the user plus follow statistics and,
// for a logged-in viewer, whether they follow this author.
type Profile struct {
	User           *models.User `json:"user"`
	FollowersCount int64        `json:"followers_count"`
	FollowingCount int64        `json:"following_count"`
	PostsCount     int64        `json:"posts_count"`
	Following      bool         `json:"following"`
}

func NewUserService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	postRepo repository.PostRepository,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		postRepo:   postRepo,
	}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfile resolves a profile header for the named author. viewerID is 0
// for anonymous requests, Following stays false then.
func (s *UserService) GetProfile(ctx context.Context, username string, viewerID uint) (*Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		User:           user,
		FollowersCount: followers,
		FollowingCount: following,
		PostsCount:     posts,
	}
	if viewerID != 0 && viewerID != user.ID {
		follows, err := s.followRepo.Exists(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
		profile.Following = follows
	}
	return profile, nil
}
