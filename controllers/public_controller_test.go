package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours-backend/models"
	"tours-backend/services"
)

type publicFixture struct {
	router       *gin.Engine
	tours        *services.TourService
	gallery      *services.GalleryService
	testimonials *services.TestimonialService
}

func newPublicFixture(t *testing.T) *publicFixture {
	t.Helper()
	db := openTestDB(t)
	tours := services.NewTourService(db)
	blog := services.NewBlogService(db)
	gallery := services.NewGalleryService(db)
	testimonials := services.NewTestimonialService(db)

	pc := NewPublicController(services.NewStoreContentSource(tours, blog, gallery, testimonials))

	r := gin.New()
	r.GET("/api/tours", pc.ListTours)
	r.GET("/api/tours/:slug", pc.TourBySlug)
	r.GET("/api/blog", pc.ListBlogPosts)
	r.GET("/api/blog/:slug", pc.BlogPostBySlug)
	r.GET("/api/gallery", pc.ListGalleryImages)
	r.GET("/api/testimonials", pc.ListTestimonials)
	r.GET("/tours/:slug/pdf", pc.TourPDF)

	return &publicFixture{router: r, tours: tours, gallery: gallery, testimonials: testimonials}
}

func (f *publicFixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestPublicTourReads(t *testing.T) {
	f := newPublicFixture(t)

	created, err := f.tours.Create(models.Tour{Title: "Table Mountain Hike", Category: "Day tours"})
	require.NoError(t, err)

	rec := f.get(t, "/api/tours")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []models.Tour
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	rec = f.get(t, "/api/tours/"+created.Slug)
	require.Equal(t, http.StatusOK, rec.Code)
	var single models.Tour
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &single))
	assert.Equal(t, "Table Mountain Hike", single.Title)

	rec = f.get(t, "/api/tours/no-such-slug")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicGalleryTourFilter(t *testing.T) {
	f := newPublicFixture(t)

	tour, err := f.tours.Create(models.Tour{Title: "Kruger Safari"})
	require.NoError(t, err)

	_, err = f.gallery.Create(models.GalleryImage{Image: "images/a.jpg", Alt: "Lions at dawn", TourID: tour.ID})
	require.NoError(t, err)
	_, err = f.gallery.Create(models.GalleryImage{Image: "images/b.jpg", Alt: "Unrelated dune"})
	require.NoError(t, err)

	rec := f.get(t, "/api/gallery")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []models.GalleryImage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	rec = f.get(t, "/api/gallery?tour="+tour.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered []models.GalleryImage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "Lions at dawn", filtered[0].Alt)
	assert.Equal(t, "Kruger Safari", filtered[0].TourTitle)
}

func TestPublicTestimonialsTourFilter(t *testing.T) {
	f := newPublicFixture(t)

	tour, err := f.tours.Create(models.Tour{Title: "Winelands Tasting"})
	require.NoError(t, err)

	_, err = f.testimonials.Create(models.Testimonial{CustomerName: "Ana", Rating: 5, Quote: "Superb day out", TourID: tour.ID})
	require.NoError(t, err)
	_, err = f.testimonials.Create(models.Testimonial{CustomerName: "Ben", Rating: 4, Quote: "Great guide"})
	require.NoError(t, err)

	rec := f.get(t, "/api/testimonials?tour="+tour.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered []models.Testimonial
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "Ana", filtered[0].CustomerName)
}

func TestTourPDFEndpoint(t *testing.T) {
	f := newPublicFixture(t)

	created, err := f.tours.Create(models.Tour{
		Title:      "Wild Coast Trek",
		Excerpt:    "Five days of empty beaches.",
		Inclusions: []string{"All meals", "Camping gear"},
	})
	require.NoError(t, err)

	rec := f.get(t, "/tours/"+created.Slug+"/pdf")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="`+created.Slug+`.pdf"`,
		rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func TestTourPDFUnknownSlugIs404(t *testing.T) {
	f := newPublicFixture(t)

	rec := f.get(t, "/tours/ghost-trail/pdf")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
