package main

import (
	"fmt"
	"strconv"
	"time"

	"pulse-feed/pkg/config"
	"pulse-feed/pkg/database"
	"pulse-feed/pkg/jwt"
	"pulse-feed/pkg/logger"
	"pulse-feed/services/content/internal/model"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	if err := seedDatabase(db, jwtService, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, jwtService *jwt.Service, log *logger.Logger) error {
	testUsers := []struct {
		firstname string
		lastname  string
		username  string
		email     string
		password  string
	}{
		{"Alice", "Anders", "alice_pulse", "alice@test.com", "password123"},
		{"Bob", "Baker", "bob_pulse", "bob@test.com", "password123"},
		{"Charlie", "Cole", "charlie_pulse", "charlie@test.com", "password123"},
	}

	users := make([]model.UserModel, 0, len(testUsers))
	for _, tu := range testUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(tu.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", tu.username, err)
		}

		user := model.UserModel{
			Firstname:    tu.firstname,
			Lastname:     tu.lastname,
			Username:     tu.username,
			Email:        tu.email,
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
			LastLogin:    time.Now(),
		}

		// Re-running the seeder must not fail on existing users
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoNothing: true,
		}).Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", tu.username, err)
		}

		if user.UserID == 0 {
			if err := db.Where("username = ?", tu.username).First(&user).Error; err != nil {
				return fmt.Errorf("failed to load user %s: %w", tu.username, err)
			}
		}

		users = append(users, user)
		log.Info("Seeded user %s (id=%d)", user.Username, user.UserID)

		token, err := jwtService.GenerateToken(strconv.FormatInt(user.UserID, 10), "user")
		if err != nil {
			return fmt.Errorf("failed to generate token for %s: %w", tu.username, err)
		}
		log.Info("Dev token for %s: %s", user.Username, token)
	}

	testPosts := []struct {
		owner       int
		title       string
		description string
		isPrivate   bool
		tags        []string
	}{
		{0, "Morning run along the river", "10k before breakfast, new personal best.", false, []string{"running", "fitness"}},
		{0, "Draft: trip planning", "Notes for the autumn hiking trip.", true, []string{"travel"}},
		{1, "Sourdough, attempt #4", "Finally got the crumb right. Recipe inside.", false, []string{"baking", "food"}},
		{2, "Weekend photo dump", "Shots from the old town on film.", false, []string{"photography", "film"}},
	}

	for _, tp := range testPosts {
		post := model.PostModel{
			Title:       tp.title,
			Description: tp.description,
			OwnerID:     users[tp.owner].UserID,
			IsPrivate:   tp.isPrivate,
			Tags:        pq.StringArray(tp.tags),
		}

		var existing int64
		db.Model(&model.PostModel{}).
			Where("title = ? AND user_id = ?", tp.title, post.OwnerID).
			Count(&existing)
		if existing > 0 {
			continue
		}

		if err := db.Create(&post).Error; err != nil {
			return fmt.Errorf("failed to create post %q: %w", tp.title, err)
		}
		log.Info("Seeded post %q (id=%d, owner=%d)", post.Title, post.PostID, post.OwnerID)
	}

	return nil
}
