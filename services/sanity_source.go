package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tours-backend/models"
)

const sanityAPIVersion = "v2023-01-01"

// GROQ queries, centralized per content type. Drafts are always excluded —
// the hosted source only ever serves published documents.
const (
	allToursQuery = `*[_type == "tour" && !(_id in path("drafts.**"))] | order(publishedAt desc) {
  _id, title, "slug": slug.current, excerpt, body, category, duration,
  "mainImage": mainImage.asset->url, "mainImageAlt": mainImage.alt,
  pricing, groupSize, inclusions, exclusions, itinerary, safetyInfo,
  availableDates, tags, publishedAt
}`
	tourBySlugQuery = `*[_type == "tour" && slug.current == $slug && !(_id in path("drafts.**"))][0] {
  _id, title, "slug": slug.current, excerpt, body, category, duration,
  "mainImage": mainImage.asset->url, "mainImageAlt": mainImage.alt,
  pricing, groupSize, inclusions, exclusions, itinerary, safetyInfo,
  availableDates, tags, publishedAt
}`
	allBlogPostsQuery = `*[_type == "blogPost" && !(_id in path("drafts.**"))] | order(publishedAt desc) {
  _id, title, "slug": slug.current, excerpt, body,
  "mainImage": mainImage.asset->url, "mainImageAlt": mainImage.alt, publishedAt
}`
	blogPostBySlugQuery = `*[_type == "blogPost" && slug.current == $slug && !(_id in path("drafts.**"))][0] {
  _id, title, "slug": slug.current, excerpt, body,
  "mainImage": mainImage.asset->url, "mainImageAlt": mainImage.alt, publishedAt
}`
	allGalleryImagesQuery = `*[_type == "galleryImage" && !(_id in path("drafts.**"))] | order(publishedAt desc) {
  _id, "image": image.asset->url, alt, caption, tags, publishedAt,
  "tourId": tour._ref, "tourTitle": tour->title
}`
	galleryImagesByTourQuery = `*[_type == "galleryImage" && tour._ref == $tourId && !(_id in path("drafts.**"))] | order(publishedAt desc) {
  _id, "image": image.asset->url, alt, caption, tags, publishedAt,
  "tourId": tour._ref, "tourTitle": tour->title
}`
	allTestimonialsQuery = `*[_type == "testimonial" && !(_id in path("drafts.**"))] | order(publishedAt desc) {
  _id, customerName, "customerPhoto": customerPhoto.asset->url, quote, rating,
  publishedAt, "tourId": tour._ref, "tourTitle": tour->title
}`
	testimonialsByTourQuery = `*[_type == "testimonial" && tour._ref == $tourId && !(_id in path("drafts.**"))] | order(publishedAt desc) {
  _id, customerName, "customerPhoto": customerPhoto.asset->url, quote, rating,
  publishedAt, "tourId": tour._ref, "tourTitle": tour->title
}`
)

// SanityContentSource reads the same shapes from a hosted headless CMS via
// its HTTP query API. It is read-only: the admin write surface always
// targets the embedded store. Image asset references are resolved by the
// rendering layer, not here.
type SanityContentSource struct {
	ProjectID string
	Dataset   string
	// BaseURL overrides the api.sanity.io endpoint, for tests.
	BaseURL string
	Client  *http.Client
}

func NewSanityContentSource(projectID, dataset string) *SanityContentSource {
	return &SanityContentSource{
		ProjectID: projectID,
		Dataset:   dataset,
		Client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *SanityContentSource) queryURL(groq string, params map[string]string) string {
	base := s.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io", s.ProjectID)
	}
	q := url.Values{}
	q.Set("query", groq)
	q.Set("perspective", "published")
	for k, v := range params {
		// GROQ parameters are passed JSON-encoded.
		encoded, _ := json.Marshal(v)
		q.Set("$"+k, string(encoded))
	}
	return fmt.Sprintf("%s/%s/data/query/%s?%s", base, sanityAPIVersion, s.Dataset, q.Encode())
}

// query runs a GROQ query and decodes the result envelope into out. A null
// result (single-document query with no match) leaves out untouched and
// returns false.
func (s *SanityContentSource) query(groq string, params map[string]string, out any) (bool, error) {
	resp, err := s.Client.Get(s.queryURL(groq, params))
	if err != nil {
		return false, fmt.Errorf("query content api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("content api returned %s", resp.Status)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return false, fmt.Errorf("decode content api response: %w", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return false, fmt.Errorf("decode content api result: %w", err)
	}
	return true, nil
}

// sanityTour mirrors the projected GROQ document shape.
type sanityTour struct {
	ID             string                 `json:"_id"`
	Title          string                 `json:"title"`
	Slug           string                 `json:"slug"`
	Excerpt        string                 `json:"excerpt"`
	Body           string                 `json:"body"`
	Category       string                 `json:"category"`
	Duration       string                 `json:"duration"`
	MainImage      string                 `json:"mainImage"`
	MainImageAlt   string                 `json:"mainImageAlt"`
	Pricing        *models.Pricing        `json:"pricing"`
	GroupSize      *models.GroupSize      `json:"groupSize"`
	Inclusions     []string               `json:"inclusions"`
	Exclusions     []string               `json:"exclusions"`
	Itinerary      []models.ItineraryDay  `json:"itinerary"`
	SafetyInfo     *models.SafetyInfo     `json:"safetyInfo"`
	AvailableDates []models.AvailableDate `json:"availableDates"`
	Tags           []string               `json:"tags"`
	PublishedAt    string                 `json:"publishedAt"`
}

func (d sanityTour) tour() models.Tour {
	return models.Tour{
		ID:             d.ID,
		Title:          d.Title,
		Slug:           d.Slug,
		Excerpt:        d.Excerpt,
		Body:           d.Body,
		Category:       d.Category,
		Duration:       d.Duration,
		MainImage:      d.MainImage,
		MainImageAlt:   d.MainImageAlt,
		Pricing:        d.Pricing,
		GroupSize:      d.GroupSize,
		Inclusions:     d.Inclusions,
		Exclusions:     d.Exclusions,
		Itinerary:      d.Itinerary,
		SafetyInfo:     d.SafetyInfo,
		AvailableDates: d.AvailableDates,
		Tags:           d.Tags,
		PublishedAt:    parseSanityTime(d.PublishedAt),
	}
}

type sanityBlogPost struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Excerpt      string `json:"excerpt"`
	Body         string `json:"body"`
	MainImage    string `json:"mainImage"`
	MainImageAlt string `json:"mainImageAlt"`
	PublishedAt  string `json:"publishedAt"`
}

func (d sanityBlogPost) blogPost() models.BlogPost {
	return models.BlogPost{
		ID:           d.ID,
		Title:        d.Title,
		Slug:         d.Slug,
		Excerpt:      d.Excerpt,
		Body:         d.Body,
		MainImage:    d.MainImage,
		MainImageAlt: d.MainImageAlt,
		PublishedAt:  parseSanityTime(d.PublishedAt),
	}
}

type sanityGalleryImage struct {
	ID          string   `json:"_id"`
	Image       string   `json:"image"`
	Alt         string   `json:"alt"`
	Caption     string   `json:"caption"`
	Tags        []string `json:"tags"`
	TourID      string   `json:"tourId"`
	TourTitle   string   `json:"tourTitle"`
	PublishedAt string   `json:"publishedAt"`
}

type sanityTestimonial struct {
	ID            string `json:"_id"`
	CustomerName  string `json:"customerName"`
	CustomerPhoto string `json:"customerPhoto"`
	Quote         string `json:"quote"`
	Rating        int    `json:"rating"`
	TourID        string `json:"tourId"`
	TourTitle     string `json:"tourTitle"`
	PublishedAt   string `json:"publishedAt"`
}

func parseSanityTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &t
}

func (s *SanityContentSource) ListTours() ([]models.Tour, error) {
	var docs []sanityTour
	if _, err := s.query(allToursQuery, nil, &docs); err != nil {
		return nil, err
	}
	tours := make([]models.Tour, 0, len(docs))
	for _, d := range docs {
		tours = append(tours, d.tour())
	}
	return tours, nil
}

func (s *SanityContentSource) TourBySlug(slug string) (*models.Tour, error) {
	var doc sanityTour
	ok, err := s.query(tourBySlugQuery, map[string]string{"slug": slug}, &doc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	t := doc.tour()
	return &t, nil
}

func (s *SanityContentSource) ListBlogPosts() ([]models.BlogPost, error) {
	var docs []sanityBlogPost
	if _, err := s.query(allBlogPostsQuery, nil, &docs); err != nil {
		return nil, err
	}
	posts := make([]models.BlogPost, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, d.blogPost())
	}
	return posts, nil
}

func (s *SanityContentSource) BlogPostBySlug(slug string) (*models.BlogPost, error) {
	var doc sanityBlogPost
	ok, err := s.query(blogPostBySlugQuery, map[string]string{"slug": slug}, &doc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	p := doc.blogPost()
	return &p, nil
}

func (s *SanityContentSource) listGallery(groq string, params map[string]string) ([]models.GalleryImage, error) {
	var docs []sanityGalleryImage
	if _, err := s.query(groq, params, &docs); err != nil {
		return nil, err
	}
	images := make([]models.GalleryImage, 0, len(docs))
	for _, d := range docs {
		images = append(images, models.GalleryImage{
			ID:          d.ID,
			Image:       d.Image,
			Alt:         d.Alt,
			Caption:     d.Caption,
			Tags:        d.Tags,
			TourID:      d.TourID,
			TourTitle:   d.TourTitle,
			PublishedAt: parseSanityTime(d.PublishedAt),
		})
	}
	return images, nil
}

func (s *SanityContentSource) ListGalleryImages() ([]models.GalleryImage, error) {
	return s.listGallery(allGalleryImagesQuery, nil)
}

func (s *SanityContentSource) ListGalleryImagesByTour(tourID string) ([]models.GalleryImage, error) {
	return s.listGallery(galleryImagesByTourQuery, map[string]string{"tourId": tourID})
}

func (s *SanityContentSource) listTestimonials(groq string, params map[string]string) ([]models.Testimonial, error) {
	var docs []sanityTestimonial
	if _, err := s.query(groq, params, &docs); err != nil {
		return nil, err
	}
	out := make([]models.Testimonial, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.Testimonial{
			ID:            d.ID,
			CustomerName:  d.CustomerName,
			CustomerPhoto: d.CustomerPhoto,
			Quote:         d.Quote,
			Rating:        d.Rating,
			TourID:        d.TourID,
			TourTitle:     d.TourTitle,
			PublishedAt:   parseSanityTime(d.PublishedAt),
		})
	}
	return out, nil
}

func (s *SanityContentSource) ListTestimonials() ([]models.Testimonial, error) {
	return s.listTestimonials(allTestimonialsQuery, nil)
}

func (s *SanityContentSource) ListTestimonialsByTour(tourID string) ([]models.Testimonial, error) {
	return s.listTestimonials(testimonialsByTourQuery, map[string]string{"tourId": tourID})
}
