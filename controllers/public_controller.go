package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tours-backend/services"
	"tours-backend/utils"
)

// PublicController serves the read paths the public site consumes. It
// depends only on the ContentSource interface — which of the two content
// sources is active is main's business.
type PublicController struct {
	Content services.ContentSource
}

func NewPublicController(content services.ContentSource) *PublicController {
	return &PublicController{Content: content}
}

func (pc *PublicController) ListTours(c *gin.Context) {
	tours, err := pc.Content.ListTours()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tours")
		return
	}
	c.JSON(http.StatusOK, tours)
}

func (pc *PublicController) TourBySlug(c *gin.Context) {
	tour, err := pc.Content.TourBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "tour not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tour")
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (pc *PublicController) ListBlogPosts(c *gin.Context) {
	posts, err := pc.Content.ListBlogPosts()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PublicController) BlogPostBySlug(c *gin.Context) {
	post, err := pc.Content.BlogPostBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "post not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PublicController) ListGalleryImages(c *gin.Context) {
	var (
		images interface{}
		err    error
	)
	if tourID := c.Query("tour"); tourID != "" {
		images, err = pc.Content.ListGalleryImagesByTour(tourID)
	} else {
		images, err = pc.Content.ListGalleryImages()
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load gallery")
		return
	}
	c.JSON(http.StatusOK, images)
}

func (pc *PublicController) ListTestimonials(c *gin.Context) {
	var (
		items interface{}
		err   error
	)
	if tourID := c.Query("tour"); tourID != "" {
		items, err = pc.Content.ListTestimonialsByTour(tourID)
	} else {
		items, err = pc.Content.ListTestimonials()
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load testimonials")
		return
	}
	c.JSON(http.StatusOK, items)
}

// TourPDF streams the generated itinerary document for one tour.
func (pc *PublicController) TourPDF(c *gin.Context) {
	slug := c.Param("slug")
	tour, err := pc.Content.TourBySlug(slug)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.String(http.StatusNotFound, "Tour not found")
			return
		}
		c.String(http.StatusInternalServerError, "Failed to load tour")
		return
	}

	data, err := utils.RenderTourPDF(*tour)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", slug+".pdf"))
	c.Data(http.StatusOK, "application/pdf", data)
}
