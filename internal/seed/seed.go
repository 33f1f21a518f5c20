package seed

import (
	"fmt"
	"log"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers        int
	NumGroups       int
	NumPosts        int
	CommentsPerPost int
	FollowsPerUser  int
	ShouldClean     bool
	SkipBcrypt      bool
	// MaxDays bounds how far back generated publication dates reach.
	MaxDays int
}

var groupTitles = []string{
	"Technology", "Books", "Travel", "Food", "Music", "Movies",
	"Photography", "Programming", "Science", "History", "Art",
	"Fitness", "Gardening", "Poetry", "Philosophy", "Gaming",
}

// Seeder populates the database with demo users, groups, posts, comments
// and follow edges.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder with the given options.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts), opts: opts}
}

// ClearAll removes all seeded data. Tables are truncated where the driver
// supports it, deleted in dependency order otherwise.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, follows, posts, groups, users RESTART IDENTITY CASCADE;`
	if err := s.db.Exec(sql).Error; err == nil {
		return nil
	}
	for _, model := range []any{
		&models.Comment{}, &models.Follow{}, &models.Post{}, &models.Group{}, &models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedCommunity creates the users and groups everything else hangs off.
func (s *Seeder) SeedCommunity() ([]*models.User, []*models.Group, error) {
	numUsers := s.opts.NumUsers
	if numUsers <= 0 {
		numUsers = 10
	}
	numGroups := s.opts.NumGroups
	if numGroups <= 0 {
		numGroups = 5
	}
	if numGroups > len(groupTitles) {
		numGroups = len(groupTitles)
	}

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	groups := make([]*models.Group, 0, numGroups)
	for i := 0; i < numGroups; i++ {
		group, err := s.factory.CreateGroup(groupTitles[i])
		if err != nil {
			return nil, nil, fmt.Errorf("create group: %w", err)
		}
		groups = append(groups, group)
	}
	log.Printf("created %d groups", len(groups))

	return users, groups, nil
}

// SeedActivity creates posts, comments and follow edges for the given
// users and groups. Roughly a third of posts land outside any group.
func (s *Seeder) SeedActivity(users []*models.User, groups []*models.Group) error {
	if len(users) == 0 {
		return fmt.Errorf("no users to seed activity for")
	}

	numPosts := s.opts.NumPosts
	if numPosts <= 0 {
		numPosts = 50
	}

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		var group *models.Group
		if len(groups) > 0 && s.factory.rng.Intn(3) != 0 {
			group = groups[s.factory.rng.Intn(len(groups))]
		}
		post, err := s.factory.CreatePost(author, group)
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("created %d posts", len(posts))

	commentsPerPost := s.opts.CommentsPerPost
	if commentsPerPost < 0 {
		commentsPerPost = 0
	}
	commented := 0
	for _, post := range posts {
		for i := 0; i < commentsPerPost; i++ {
			commenter := users[s.factory.rng.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("create comment: %w", err)
			}
			commented++
		}
	}
	log.Printf("created %d comments", commented)

	followsPerUser := s.opts.FollowsPerUser
	if followsPerUser <= 0 {
		followsPerUser = 2
	}
	followed := 0
	for _, user := range users {
		for i := 0; i < followsPerUser; i++ {
			author := users[s.factory.rng.Intn(len(users))]
			if author.ID == user.ID {
				continue
			}
			// duplicate edges hit the unique index, skip them
			var count int64
			s.db.Model(&models.Follow{}).
				Where("user_id = ? AND author_id = ?", user.ID, author.ID).
				Count(&count)
			if count > 0 {
				continue
			}
			if err := s.factory.CreateFollow(user, author); err != nil {
				return fmt.Errorf("create follow: %w", err)
			}
			followed++
		}
	}
	log.Printf("created %d follow edges", followed)

	return nil
}

// Run seeds a complete data set according to the seeder options.
func (s *Seeder) Run() error {
	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("warning: could not clear all existing data, continuing anyway")
		}
	}

	users, groups, err := s.SeedCommunity()
	if err != nil {
		return err
	}
	return s.SeedActivity(users, groups)
}
