package database

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"devportfolio/models"
)

// defaultSiteContent is the editable copy every public page falls back to
// until the admin overrides it.
var defaultSiteContent = map[string]string{
	// Header
	"header_title":                 "DevPortfolio",
	"header_home":                  "Home",
	"header_projects":              "Projects",
	"header_blog":                  "Blog",
	"header_certifications":        "Certifications",
	"header_skills":                "Skills",
	"header_programming_languages": "Programming Languages",
	"header_admin":                 "Admin",

	// Hero section
	"hero_title":    `Hi, I'm <span class="bg-gradient-to-r from-blue-600 to-purple-600 bg-clip-text text-transparent">Ismael Farah</span>`,
	"hero_subtitle": "Full Stack Developer crafting modern web experiences with React, Node.js, and cutting-edge technologies.",
	"hero_button_1": "View My Work",
	"hero_button_2": "Read My Blog",

	// Skills section
	"skills_title": "Technologies I Work With",
	"skills_list":  `["React", "Next.js", "TypeScript", "Node.js", "Tailwind CSS", "MongoDB", "GraphQL", "Docker"]`,

	// Footer
	"footer_copyright": "© {currentYear} Ismael Farah. All rights reserved.",
	"footer_links":     `["Twitter", "GitHub", "LinkedIn"]`,

	// Projects page
	"projects_title":      "My Projects",
	"projects_subtitle":   "A collection of my web development projects and applications.",
	"projects_all_button": "All Projects",

	// Blog page
	"blog_title":      "My Blog",
	"blog_subtitle":   "Thoughts, tutorials, and insights on web development and technology.",
	"blog_all_button": "All Posts",

	// Certifications page
	"certifications_title":    "My Certifications",
	"certifications_subtitle": "Professional certifications and achievements.",

	// Skills page
	"skills_page_title":    "My Skills",
	"skills_page_subtitle": "Technical skills and proficiency levels.",

	// Programming languages page
	"programming_languages_title":    "Programming Languages",
	"programming_languages_subtitle": "Languages I work with and my proficiency levels.",

	// Contact
	"contact_email":    "ismael.farah@example.com",
	"contact_phone":    "+1 (123) 456-7890",
	"contact_location": "San Francisco, CA",

	"personal_image": "/placeholder-personal-image.jpg",
}

// SeedDefaults populates an empty database with the admin user, sample
// content, and the default site copy. Existing rows are never touched, so
// running it on every startup is safe.
func SeedDefaults(db *gorm.DB) error {
	if err := seedAdminUser(db); err != nil {
		return err
	}
	if err := seedProjects(db); err != nil {
		return err
	}
	if err := seedBlogPosts(db); err != nil {
		return err
	}
	if err := seedSiteContent(db); err != nil {
		return err
	}
	if err := seedCertifications(db); err != nil {
		return err
	}
	if err := seedSkills(db); err != nil {
		return err
	}
	return seedProgrammingLanguages(db)
}

func seedAdminUser(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "password123"
		log.Println("ADMIN_PASSWORD not set, seeding admin user with the default password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	log.Printf("Default admin user created with username: %s", username)
	return nil
}

func seedProjects(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	projects := []models.Project{
		{
			Title:        "E-commerce Platform",
			Description:  "A full-featured e-commerce platform built with React and Node.js",
			Technologies: datatypes.NewJSONSlice([]string{"React", "Node.js", "MongoDB", "Stripe"}),
			Date:         "2025-01-15",
		},
		{
			Title:        "Task Management App",
			Description:  "A productivity app for managing tasks and team collaboration",
			Technologies: datatypes.NewJSONSlice([]string{"Next.js", "TypeScript", "Firebase", "Tailwind CSS"}),
			Date:         "2025-03-22",
		},
		{
			Title:        "Weather Dashboard",
			Description:  "Real-time weather dashboard with forecasting capabilities",
			Technologies: datatypes.NewJSONSlice([]string{"React", "Chart.js", "OpenWeather API", "Geolocation"}),
			Date:         "2025-05-10",
		},
	}

	if err := db.Create(&projects).Error; err != nil {
		return err
	}
	log.Println("Sample projects inserted")
	return nil
}

func seedBlogPosts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.BlogPost{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	posts := []models.BlogPost{
		{
			Title:   "Getting Started with Next.js",
			Excerpt: "A comprehensive guide to building your first Next.js application",
			Content: "Next.js is a powerful React framework that provides excellent features for building modern web applications...",
			Date:    "2025-04-12",
			Tags:    datatypes.NewJSONSlice([]string{"Next.js", "React", "Tutorial"}),
		},
		{
			Title:   "Understanding TypeScript",
			Excerpt: "Why TypeScript is becoming essential for modern web development",
			Content: "TypeScript adds static typing to JavaScript, helping developers catch errors early...",
			Date:    "2025-05-18",
			Tags:    datatypes.NewJSONSlice([]string{"TypeScript", "JavaScript"}),
		},
		{
			Title:   "Building Responsive UIs with Tailwind CSS",
			Excerpt: "Learn how to create beautiful, responsive designs with Tailwind CSS",
			Content: "Tailwind CSS is a utility-first CSS framework that allows you to build designs directly in your markup...",
			Date:    "2025-06-30",
			Tags:    datatypes.NewJSONSlice([]string{"CSS", "Tailwind", "Design"}),
		},
	}

	if err := db.Create(&posts).Error; err != nil {
		return err
	}
	log.Println("Sample blog posts inserted")
	return nil
}

func seedSiteContent(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SiteContent{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	entries := make([]models.SiteContent, 0, len(defaultSiteContent))
	for id, content := range defaultSiteContent {
		entries = append(entries, models.SiteContent{ID: id, Content: content})
	}

	if err := db.Create(&entries).Error; err != nil {
		return err
	}
	log.Println("Default site content inserted")
	return nil
}

func seedCertifications(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Certification{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	certs := []models.Certification{
		{
			Title:        "AWS Certified Developer",
			Organization: "Amazon Web Services",
			DateIssued:   "2025-01-15",
			ExpiryDate:   "2028-01-15",
			CredentialID: "AWS-DEV-123456",
		},
		{
			Title:        "Google Professional Cloud Developer",
			Organization: "Google Cloud",
			DateIssued:   "2025-03-22",
			ExpiryDate:   "2027-03-22",
			CredentialID: "GCP-DEV-789012",
		},
	}

	if err := db.Create(&certs).Error; err != nil {
		return err
	}
	log.Println("Sample certifications inserted")
	return nil
}

func seedSkills(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Skill{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	skills := []models.Skill{
		{Name: "React", Proficiency: 95, Category: "Frontend"},
		{Name: "Next.js", Proficiency: 90, Category: "Frontend"},
		{Name: "TypeScript", Proficiency: 85, Category: "Language"},
		{Name: "Node.js", Proficiency: 80, Category: "Backend"},
		{Name: "Tailwind CSS", Proficiency: 90, Category: "Styling"},
		{Name: "MongoDB", Proficiency: 75, Category: "Database"},
		{Name: "GraphQL", Proficiency: 70, Category: "API"},
		{Name: "Docker", Proficiency: 65, Category: "DevOps"},
		{Name: "AWS", Proficiency: 70, Category: "Cloud"},
		{Name: "Python", Proficiency: 60, Category: "Language"},
		{Name: "Java", Proficiency: 55, Category: "Language"},
		{Name: "C++", Proficiency: 50, Category: "Language"},
	}

	if err := db.Create(&skills).Error; err != nil {
		return err
	}
	log.Println("Sample skills inserted")
	return nil
}

func seedProgrammingLanguages(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ProgrammingLanguage{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	languages := []models.ProgrammingLanguage{
		{Name: "JavaScript", Proficiency: 95, IconURL: "/icons/javascript.svg"},
		{Name: "TypeScript", Proficiency: 85, IconURL: "/icons/typescript.svg"},
		{Name: "Python", Proficiency: 80, IconURL: "/icons/python.svg"},
		{Name: "Java", Proficiency: 75, IconURL: "/icons/java.svg"},
		{Name: "C++", Proficiency: 70, IconURL: "/icons/cpp.svg"},
		{Name: "Go", Proficiency: 65, IconURL: "/icons/go.svg"},
		{Name: "Rust", Proficiency: 60, IconURL: "/icons/rust.svg"},
	}

	if err := db.Create(&languages).Error; err != nil {
		return err
	}
	log.Println("Sample programming languages inserted")
	return nil
}
