package service

import (
	"context"

	"inkwell/internal/featureflags"
	"inkwell/internal/models"
)

type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	listFn          func(context.Context, int, int) ([]*models.Post, error)
	countAllFn      func(context.Context) (int64, error)
	listByGroupFn   func(context.Context, uint, int, int) ([]*models.Post, error)
	countByGroupFn  func(context.Context, uint) (int64, error)
	listByAuthorFn  func(context.Context, uint, int, int) ([]*models.Post, error)
	countByAuthorFn func(context.Context, uint) (int64, error)
	listFollowedFn  func(context.Context, uint, int, int) ([]*models.Post, error)
	countFollowedFn func(context.Context, uint) (int64, error)
	updateFn        func(context.Context, *models.Post) error
	deleteFn        func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) CountAll(ctx context.Context) (int64, error) {
	return s.countAllFn(ctx)
}
func (s *postRepoStub) ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByGroupFn(ctx, groupID, limit, offset)
}
func (s *postRepoStub) CountByGroup(ctx context.Context, groupID uint) (int64, error) {
	return s.countByGroupFn(ctx, groupID)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, limit, offset)
}
func (s *postRepoStub) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.countByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) ListFollowed(ctx context.Context, followerID uint, limit, offset int) ([]*models.Post, error) {
	return s.listFollowedFn(ctx, followerID, limit, offset)
}
func (s *postRepoStub) CountFollowed(ctx context.Context, followerID uint) (int64, error) {
	return s.countFollowedFn(ctx, followerID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, post *models.Post) error {
			post.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, Text: "stub", AuthorID: 1}, nil
		},
		listFn:          func(context.Context, int, int) ([]*models.Post, error) { return nil, nil },
		countAllFn:      func(context.Context) (int64, error) { return 0, nil },
		listByGroupFn:   func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		countByGroupFn:  func(context.Context, uint) (int64, error) { return 0, nil },
		listByAuthorFn:  func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		countByAuthorFn: func(context.Context, uint) (int64, error) { return 0, nil },
		listFollowedFn:  func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		countFollowedFn: func(context.Context, uint) (int64, error) { return 0, nil },
		updateFn:        func(context.Context, *models.Post) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
	}
}

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(context.Context, *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "stub"}, nil
		},
		getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username}, nil
		},
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
	}
}

type groupRepoStub struct {
	createFn    func(context.Context, *models.Group) error
	getByIDFn   func(context.Context, uint) (*models.Group, error)
	getBySlugFn func(context.Context, string) (*models.Group, error)
	listFn      func(context.Context) ([]models.Group, error)
	deleteFn    func(context.Context, uint) error
}

func (s *groupRepoStub) Create(ctx context.Context, group *models.Group) error {
	return s.createFn(ctx, group)
}
func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}
func (s *groupRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *groupRepoStub) List(ctx context.Context) ([]models.Group, error) {
	return s.listFn(ctx)
}
func (s *groupRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopGroupRepo() *groupRepoStub {
	return &groupRepoStub{
		createFn: func(context.Context, *models.Group) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Group, error) {
			return &models.Group{ID: id, Title: "stub", Slug: "stub"}, nil
		},
		getBySlugFn: func(_ context.Context, slug string) (*models.Group, error) {
			return &models.Group{ID: 1, Title: "stub", Slug: slug}, nil
		},
		listFn:   func(context.Context) ([]models.Group, error) { return nil, nil },
		deleteFn: func(context.Context, uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, comment *models.Comment) error {
			comment.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, Text: "stub"}, nil
		},
		listByPostFn: func(context.Context, uint) ([]*models.Comment, error) { return nil, nil },
	}
}

type followRepoStub struct {
	createFn         func(context.Context, *models.Follow) error
	deleteFn         func(context.Context, uint, uint) error
	existsFn         func(context.Context, uint, uint) (bool, error)
	countFollowersFn func(context.Context, uint) (int64, error)
	countFollowingFn func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) Delete(ctx context.Context, userID, authorID uint) error {
	return s.deleteFn(ctx, userID, authorID)
}
func (s *followRepoStub) Exists(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.existsFn(ctx, userID, authorID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, authorID uint) (int64, error) {
	return s.countFollowersFn(ctx, authorID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:         func(context.Context, *models.Follow) error { return nil },
		deleteFn:         func(context.Context, uint, uint) error { return nil },
		existsFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		countFollowersFn: func(context.Context, uint) (int64, error) { return 0, nil },
		countFollowingFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

// testFlags enables the flags the services consult in tests.
func testFlags() *featureflags.Manager {
	return featureflags.NewManager("home_feed_cache=on")
}
