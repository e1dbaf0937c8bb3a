package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"devportfolio/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, RunMigrations(db))
	return db
}

func TestSeedDefaults_CreatesAdminUser(t *testing.T) {
	db := setupTestDB(t)

	assert.NoError(t, SeedDefaults(db))

	var user models.User
	assert.NoError(t, db.Where("username = ?", "admin").First(&user).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestSeedDefaults_PopulatesSampleContent(t *testing.T) {
	db := setupTestDB(t)

	assert.NoError(t, SeedDefaults(db))

	var projects, posts, certs, skills, languages, content int64
	db.Model(&models.Project{}).Count(&projects)
	db.Model(&models.BlogPost{}).Count(&posts)
	db.Model(&models.Certification{}).Count(&certs)
	db.Model(&models.Skill{}).Count(&skills)
	db.Model(&models.ProgrammingLanguage{}).Count(&languages)
	db.Model(&models.SiteContent{}).Count(&content)

	assert.Equal(t, int64(3), projects)
	assert.Equal(t, int64(3), posts)
	assert.Equal(t, int64(2), certs)
	assert.Equal(t, int64(12), skills)
	assert.Equal(t, int64(7), languages)
	assert.Equal(t, int64(len(defaultSiteContent)), content)

	var hero models.SiteContent
	assert.NoError(t, db.First(&hero, "id = ?", "hero_subtitle").Error)
	assert.NotEmpty(t, hero.Content)
}

func TestSeedDefaults_DoesNotOverwriteExistingRows(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, SeedDefaults(db))

	db.Model(&models.SiteContent{}).Where("id = ?", "hero_title").Update("content", "Edited")
	db.Delete(&models.Project{}, "title = ?", "Weather Dashboard")

	assert.NoError(t, SeedDefaults(db))

	var hero models.SiteContent
	db.First(&hero, "id = ?", "hero_title")
	assert.Equal(t, "Edited", hero.Content)

	var projects int64
	db.Model(&models.Project{}).Count(&projects)
	assert.Equal(t, int64(2), projects)
}
