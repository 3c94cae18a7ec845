package main

import (
	"log"

	"github.com/greensteps/greensteps-api/internal/config"
	"github.com/greensteps/greensteps-api/internal/model"
	"github.com/greensteps/greensteps-api/internal/server"
	"github.com/greensteps/greensteps-api/pkg/database"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := seedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	redisClient := database.ConnectRedis()

	srv := server.NewServer(db, redisClient)
	defer srv.Stop()

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.TravelLog{},
		&model.LeaderboardEntry{},
		&model.Notification{},
	)
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@greensteps.edu").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := model.User{
		Name:         "Administrator",
		Email:        "admin@greensteps.edu",
		PasswordHash: string(hashedPasswordBytes),
		Department:   model.Departments[0],
		Campus:       model.Campuses[0],
		IsAdmin:      true,
		DefaultMode:  string(model.ModeWalking),
		DefaultTrips: 1,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded")
	log.Println("   Email: admin@greensteps.edu")
	log.Println("   Password: admin123")

	return nil
}
