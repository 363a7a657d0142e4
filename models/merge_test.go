package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestMergeTourEmptyPatchKeepsEverything(t *testing.T) {
	published := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	existing := Tour{
		ID:       "t1",
		Title:    "Cape Town Day Trip",
		Slug:     "cape-town-day-trip",
		Excerpt:  "A full day around the peninsula.",
		Category: "day-trips",
		Pricing:  &Pricing{Amount: 1200, Currency: "ZAR", PerPerson: true},
		Tags:     []string{"diving", "family"},
		Itinerary: []ItineraryDay{
			{DayNumber: 1, Title: "Arrival"},
		},
		PublishedAt: &published,
	}

	merged := MergeTour(existing, TourPatch{})
	assert.Equal(t, existing, merged)
}

func TestMergeTourPatchWinsOnlyWhenPresent(t *testing.T) {
	existing := Tour{
		Title:   "Old Title",
		Slug:    "old-slug",
		Excerpt: "Old excerpt",
		Pricing: &Pricing{Amount: 500, Currency: "ZAR"},
		Tags:    []string{"a", "b"},
	}

	newTags := []string{"c"}
	merged := MergeTour(existing, TourPatch{
		Title: strPtr("New Title"),
		Tags:  &newTags,
	})

	assert.Equal(t, "New Title", merged.Title)
	assert.Equal(t, []string{"c"}, merged.Tags)
	// Untouched fields keep their stored values.
	assert.Equal(t, "old-slug", merged.Slug)
	assert.Equal(t, "Old excerpt", merged.Excerpt)
	assert.Equal(t, existing.Pricing, merged.Pricing)
}

func TestMergeTourExplicitEmptyOverwrites(t *testing.T) {
	existing := Tour{Excerpt: "something"}
	merged := MergeTour(existing, TourPatch{Excerpt: strPtr("")})
	assert.Empty(t, merged.Excerpt)
}

func TestMergeTestimonialClearsTourReference(t *testing.T) {
	existing := Testimonial{CustomerName: "Jane", Quote: "Great!", Rating: 5, TourID: "t1"}
	merged := MergeTestimonial(existing, TestimonialPatch{TourID: strPtr("")})
	assert.Empty(t, merged.TourID)
	assert.Equal(t, 5, merged.Rating)
}

func TestMergeGalleryImage(t *testing.T) {
	existing := GalleryImage{Image: "images/a.jpg", Alt: "A beach", Caption: "old"}
	merged := MergeGalleryImage(existing, GalleryImagePatch{Caption: strPtr("new")})
	assert.Equal(t, "new", merged.Caption)
	assert.Equal(t, "images/a.jpg", merged.Image)
	assert.Equal(t, "A beach", merged.Alt)
}

func TestMergeBlogPost(t *testing.T) {
	published := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := BlogPost{Title: "Post", Slug: "post", Body: "body"}
	merged := MergeBlogPost(existing, BlogPostPatch{PublishedAt: &published})
	assert.Equal(t, "Post", merged.Title)
	assert.Equal(t, &published, merged.PublishedAt)
}
