package services

import "tours-backend/models"

// ContentSource is the read capability the public site consumes. Two
// interchangeable implementations exist — the embedded store and the
// hosted headless CMS — and exactly one is active per process. Read paths
// depend only on this interface, never on which implementation is behind
// it.
type ContentSource interface {
	ListTours() ([]models.Tour, error)
	TourBySlug(slug string) (*models.Tour, error)
	ListBlogPosts() ([]models.BlogPost, error)
	BlogPostBySlug(slug string) (*models.BlogPost, error)
	ListGalleryImages() ([]models.GalleryImage, error)
	ListGalleryImagesByTour(tourID string) ([]models.GalleryImage, error)
	ListTestimonials() ([]models.Testimonial, error)
	ListTestimonialsByTour(tourID string) ([]models.Testimonial, error)
}

// StoreContentSource serves reads straight from the structured store.
type StoreContentSource struct {
	Tours        *TourService
	Blog         *BlogService
	Gallery      *GalleryService
	Testimonials *TestimonialService
}

func NewStoreContentSource(tours *TourService, blog *BlogService, gallery *GalleryService, testimonials *TestimonialService) *StoreContentSource {
	return &StoreContentSource{
		Tours:        tours,
		Blog:         blog,
		Gallery:      gallery,
		Testimonials: testimonials,
	}
}

func (s *StoreContentSource) ListTours() ([]models.Tour, error) {
	return s.Tours.List()
}

func (s *StoreContentSource) TourBySlug(slug string) (*models.Tour, error) {
	return s.Tours.GetBySlug(slug)
}

func (s *StoreContentSource) ListBlogPosts() ([]models.BlogPost, error) {
	return s.Blog.List()
}

func (s *StoreContentSource) BlogPostBySlug(slug string) (*models.BlogPost, error) {
	return s.Blog.GetBySlug(slug)
}

func (s *StoreContentSource) ListGalleryImages() ([]models.GalleryImage, error) {
	return s.Gallery.List()
}

func (s *StoreContentSource) ListGalleryImagesByTour(tourID string) ([]models.GalleryImage, error) {
	return s.Gallery.ListByTour(tourID)
}

func (s *StoreContentSource) ListTestimonials() ([]models.Testimonial, error) {
	return s.Testimonials.List()
}

func (s *StoreContentSource) ListTestimonialsByTour(tourID string) ([]models.Testimonial, error) {
	return s.Testimonials.ListByTour(tourID)
}
