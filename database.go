package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPass, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	if err := SeedAdmin(db, cfg); err != nil {
		return nil, fmt.Errorf("admin seed failed: %w", err)
	}

	log.Println("✅ Database connected and migrated successfully")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Event{},
		&EventImage{},
		&PhotographerPhoto{},
		&Sale{},
		&Photograph{},
	)
}

// SeedAdmin creates the bootstrap admin account when ADMIN_USERNAME and
// ADMIN_PASSWORD are configured. Safe to run on every start.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		FirstName: "Admin",
		LastName:  "User",
		Username:  cfg.AdminUsername,
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		Role:      "admin",
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error
}
