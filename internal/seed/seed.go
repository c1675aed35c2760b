package seed

import (
	"fmt"
	"log"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	PostsPerUser int
	// FollowRatio is the probability that any ordered user pair becomes
	// a follow edge. 0.2 gives a reasonably dense mesh for demos.
	FollowRatio float64
	// LikeRatio is the probability that a given user likes a given post.
	LikeRatio   float64
	ShouldClean bool
}

// DefaultOptions returns seeding options suitable for a local demo database.
func DefaultOptions() Options {
	return Options{
		NumUsers:     25,
		PostsPerUser: 8,
		FollowRatio:  0.2,
		LikeRatio:    0.15,
		ShouldClean:  false,
	}
}

// Seed populates the database with demo users, posts, a follow mesh and
// scattered likes.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users with %d posts each...", opts.NumUsers, opts.PostsPerUser)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))

	posts := make([]*models.Post, 0, opts.NumUsers*opts.PostsPerUser)
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := f.CreatePost(user, 90)
			if err != nil {
				return fmt.Errorf("failed to create post: %w", err)
			}
			posts = append(posts, post)
		}
	}
	log.Printf("Created %d posts", len(posts))

	follows := 0
	for _, follower := range users {
		for _, following := range users {
			if follower.ID == following.ID {
				continue
			}
			if f.rand.Float64() < opts.FollowRatio {
				if err := f.Follow(follower, following); err != nil {
					return fmt.Errorf("failed to create follow edge: %w", err)
				}
				follows++
			}
		}
	}
	log.Printf("Created %d follow edges", follows)

	likes := 0
	for _, user := range users {
		for _, post := range posts {
			if f.rand.Float64() < opts.LikeRatio {
				if err := f.Like(user, post); err != nil {
					return fmt.Errorf("failed to create like: %w", err)
				}
				likes++
			}
		}
	}
	log.Printf("Created %d likes", likes)

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE likes, posts, followers, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
