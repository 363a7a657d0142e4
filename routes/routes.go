package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tours-backend/controllers"
	"tours-backend/middleware"
	"tours-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public surface, the visitor write endpoints, and
// the session-gated admin API.
func SetupRouter(
	sessions *services.SessionService,
	auth *controllers.AuthController,
	public *controllers.PublicController,
	tours *controllers.TourController,
	blog *controllers.BlogController,
	gallery *controllers.GalleryController,
	testimonials *controllers.TestimonialController,
	uploads *controllers.UploadController,
	submissions *controllers.SubmissionController,
	admin *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.SecurityHeaders())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public site surface
	r.GET("/uploads/*path", uploads.Serve)
	r.GET("/tours/:slug/pdf", public.TourPDF)

	api := r.Group("/api")
	{
		api.GET("/tours", public.ListTours)
		api.GET("/tours/:slug", public.TourBySlug)
		api.GET("/blog", public.ListBlogPosts)
		api.GET("/blog/:slug", public.BlogPostBySlug)
		api.GET("/gallery", public.ListGalleryImages)
		api.GET("/testimonials", public.ListTestimonials)

		api.POST("/contact", submissions.Contact)
		api.POST("/inquiry", submissions.Inquiry)
	}

	// Login is the sole ungated admin path.
	r.POST("/admin/login", auth.Login)

	adminPages := r.Group("/admin")
	adminPages.Use(middleware.RequireSession(sessions))
	{
		adminPages.GET("/logout", auth.Logout)
	}

	adminAPI := r.Group("/api/admin")
	adminAPI.Use(middleware.RequireSession(sessions))
	{
		adminAPI.GET("/stats", admin.Stats)

		t := adminAPI.Group("/tours")
		{
			t.GET("", tours.List)
			t.POST("", tours.Create)
			t.GET("/:id", tours.Get)
			t.PUT("/:id", tours.Update)
			t.DELETE("/:id", tours.Delete)
		}

		b := adminAPI.Group("/blog")
		{
			b.GET("", blog.List)
			b.POST("", blog.Create)
			b.GET("/:id", blog.Get)
			b.PUT("/:id", blog.Update)
			b.DELETE("/:id", blog.Delete)
		}

		g := adminAPI.Group("/gallery")
		{
			g.GET("", gallery.List)
			g.POST("", gallery.Create)
			g.GET("/:id", gallery.Get)
			g.PUT("/:id", gallery.Update)
			g.DELETE("/:id", gallery.Delete)
		}

		ts := adminAPI.Group("/testimonials")
		{
			ts.GET("", testimonials.List)
			ts.POST("", testimonials.Create)
			ts.GET("/:id", testimonials.Get)
			ts.PUT("/:id", testimonials.Update)
			ts.DELETE("/:id", testimonials.Delete)
		}

		adminAPI.POST("/upload", uploads.Upload)
		adminAPI.DELETE("/upload", uploads.Delete)

		adminAPI.GET("/submissions/contact", submissions.ListContact)
		adminAPI.GET("/submissions/inquiry", submissions.ListInquiry)
	}

	return r
}
