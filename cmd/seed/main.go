// Command seed populates the development database with demo data.
package main

import (
	"flag"
	"log"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numGroups := flag.Int("groups", 6, "Number of groups to create")
	numPosts := flag.Int("posts", 150, "Number of posts to create")
	commentsPerPost := flag.Int("comments", 2, "Comments per post")
	followsPerUser := flag.Int("follows", 3, "Follow edges per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("fast", false, "Skip bcrypt hashing for faster seeding")
	preset := flag.String("preset", "", "Apply a named seeder preset (e.g. MegaPopulated)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *preset != "" {
		log.Printf("Applying preset %q (ignoring other flags)", *preset)
		if err := seed.ApplyPreset(db, *preset, *shouldClean); err != nil {
			log.Fatalf("Preset seeding failed: %v", err)
		}
	} else {
		seeder := seed.NewSeeder(db, seed.Options{
			NumUsers:        *numUsers,
			NumGroups:       *numGroups,
			NumPosts:        *numPosts,
			CommentsPerPost: *commentsPerPost,
			FollowsPerUser:  *followsPerUser,
			ShouldClean:     *shouldClean,
			SkipBcrypt:      *skipBcrypt,
		})
		if err := seeder.Run(); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}

	log.Println("Seeding complete. All generated users have the password: password123")
}
