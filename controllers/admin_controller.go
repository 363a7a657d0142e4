package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tours-backend/services"
	"tours-backend/utils"
)

// AdminController serves the dashboard bits that cut across entities.
type AdminController struct {
	Tours        *services.TourService
	Blog         *services.BlogService
	Gallery      *services.GalleryService
	Testimonials *services.TestimonialService
	Submissions  *services.SubmissionService
}

func NewAdminController(
	tours *services.TourService,
	blog *services.BlogService,
	gallery *services.GalleryService,
	testimonials *services.TestimonialService,
	submissions *services.SubmissionService,
) *AdminController {
	return &AdminController{
		Tours:        tours,
		Blog:         blog,
		Gallery:      gallery,
		Testimonials: testimonials,
		Submissions:  submissions,
	}
}

func (ac *AdminController) Stats(c *gin.Context) {
	counts := gin.H{}
	for name, count := range map[string]func() (int64, error){
		"tours":              ac.Tours.Count,
		"blogPosts":          ac.Blog.Count,
		"galleryImages":      ac.Gallery.Count,
		"testimonials":       ac.Testimonials.Count,
		"contactSubmissions": ac.Submissions.CountContact,
		"inquirySubmissions": ac.Submissions.CountInquiry,
	} {
		n, err := count()
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load stats")
			return
		}
		counts[name] = n
	}
	c.JSON(http.StatusOK, counts)
}
