package database

import (
	"log"

	"devportfolio/models"

	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.BlogPost{},
		&models.Certification{},
		&models.Skill{},
		&models.ProgrammingLanguage{},
		&models.SiteContent{},
	)

	if err != nil {
		log.Printf("Error running migrations: %v", err)
		return err
	}

	log.Println("Migrations completed successfully")
	return nil
}
