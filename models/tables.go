package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID           int       `gorm:"primary_key;autoIncrement" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"` // json:"-" prevents the hash from being exposed in API
	CreatedAt    time.Time `json:"-"`
}

type Project struct {
	ID           int                         `gorm:"primary_key;autoIncrement" json:"id"`
	Title        string                      `gorm:"not null" json:"title"`
	Description  string                      `gorm:"not null;type:text" json:"description"`
	Technologies datatypes.JSONSlice[string] `json:"technologies"`
	ImageURL     string                      `gorm:"column:image_url" json:"imageUrl"`
	DemoURL      string                      `gorm:"column:demo_url" json:"demoUrl"`
	GithubURL    string                      `gorm:"column:github_url" json:"githubUrl"`
	Date         string                      `gorm:"not null" json:"date"` // YYYY-MM-DD
	CreatedAt    time.Time                   `json:"-"`
}

type BlogPost struct {
	ID        int                         `gorm:"primary_key;autoIncrement" json:"id"`
	Title     string                      `gorm:"not null" json:"title"`
	Excerpt   string                      `gorm:"type:text" json:"excerpt"`
	Content   string                      `gorm:"type:text" json:"content"` // sanitized HTML
	Date      string                      `json:"date"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	ImageURL  string                      `gorm:"column:image_url" json:"imageUrl"`
	LinkURL   string                      `gorm:"column:link_url" json:"linkUrl"`
	CreatedAt time.Time                   `json:"-"`
}

type Certification struct {
	ID           int       `gorm:"primary_key;autoIncrement" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Organization string    `gorm:"not null" json:"organization"`
	DateIssued   string    `gorm:"column:date_issued" json:"date_issued"`
	ExpiryDate   string    `gorm:"column:expiry_date" json:"expiry_date"`
	CredentialID string    `gorm:"column:credential_id" json:"credential_id"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"created_at"`
}

type Skill struct {
	ID          int       `gorm:"primary_key;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Proficiency int       `json:"proficiency"` // 1-100 scale
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProgrammingLanguage struct {
	ID          int       `gorm:"primary_key;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Proficiency int       `json:"proficiency"` // 1-100 scale
	IconURL     string    `gorm:"column:icon_url" json:"icon_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type SiteContent struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	UpdatedAt time.Time `json:"-"`
}

// TableName overrides gorm's pluralization, the table holds a flat key/value set
func (SiteContent) TableName() string {
	return "site_content"
}
