package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"devportfolio/api"
	"devportfolio/auth"
	"devportfolio/cache"
	"devportfolio/common"
	"devportfolio/database"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	db := common.ConnectDb()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := database.SeedDefaults(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	router := gin.Default()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable not set")
	}

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
	})

	router.Use(sessions.Sessions("devportfolio-session", store))

	authModule := auth.NewAuthModule(db)
	authModule.RegisterRoutes(router)

	apiCache := cache.New(5*time.Minute, 10*time.Minute)
	apiModule := api.NewModule(db, apiCache)
	apiModule.RegisterRoutes(router)

	// the admin panel and the public site run on a separate origin
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   frontendOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := corsHandler.Handler(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func frontendOrigins() []string {
	var origins []string
	for _, key := range []string{"FRONTEND_URL", "FRONTEND_URL2"} {
		if url := os.Getenv(key); url != "" {
			origins = append(origins, url)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return origins
}
