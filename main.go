package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tours-backend/config"
	"tours-backend/controllers"
	"tours-backend/routes"
	"tours-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	db, err := config.ConnectDatabase(config.DatabasePath())
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	uploadService, err := services.NewUploadService(config.UploadDir())
	if err != nil {
		log.Fatalf("❌ Upload directory setup failed: %v", err)
	}

	// Store services
	tourService := services.NewTourService(db)
	blogService := services.NewBlogService(db)
	galleryService := services.NewGalleryService(db)
	testimonialService := services.NewTestimonialService(db)
	submissionService := services.NewSubmissionService(db)
	sessionService := services.NewSessionService(db)

	// Public reads go through exactly one content source per process: the
	// hosted CMS when configured, the embedded store otherwise.
	var content services.ContentSource
	if projectID := os.Getenv("SANITY_PROJECT_ID"); projectID != "" {
		dataset := config.EnvOrDefault("SANITY_DATASET", "production")
		content = services.NewSanityContentSource(projectID, dataset)
		log.Printf("✅ Using hosted content source (project %s, dataset %s)", projectID, dataset)
	} else {
		content = services.NewStoreContentSource(tourService, blogService, galleryService, testimonialService)
		log.Println("✅ Using embedded content store")
	}

	// Controllers
	authController := controllers.NewAuthController(sessionService)
	publicController := controllers.NewPublicController(content)
	tourController := controllers.NewTourController(tourService)
	blogController := controllers.NewBlogController(blogService)
	galleryController := controllers.NewGalleryController(galleryService)
	testimonialController := controllers.NewTestimonialController(testimonialService)
	uploadController := controllers.NewUploadController(uploadService)
	submissionController := controllers.NewSubmissionController(submissionService)
	adminController := controllers.NewAdminController(
		tourService, blogService, galleryService, testimonialService, submissionService,
	)

	router := routes.SetupRouter(
		sessionService,
		authController,
		publicController,
		tourController,
		blogController,
		galleryController,
		testimonialController,
		uploadController,
		submissionController,
		adminController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
