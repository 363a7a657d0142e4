package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// GalleryImage holds a weak reference to a Tour: the referenced tour may be
// deleted (or never have existed) and the image still loads, with TourID
// cleared and TourTitle absent.
type GalleryImage struct {
	ID          string     `json:"id"`
	Image       string     `json:"image"`
	Alt         string     `json:"alt"`
	Caption     string     `json:"caption,omitempty"`
	TourID      string     `json:"tourId,omitempty"`
	TourTitle   string     `json:"tourTitle,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type GalleryImageRecord struct {
	ID          string  `gorm:"primaryKey"`
	Image       string  `gorm:"not null"`
	Alt         string  `gorm:"not null"`
	Caption     string
	TourID      *string `gorm:"index"`
	Tags        datatypes.JSON
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Filled by the list-time LEFT JOIN against tours, never written.
	TourTitle *string `gorm:"->;-:migration"`
}

func (GalleryImageRecord) TableName() string { return "gallery_images" }

func NewGalleryImageRecord(g GalleryImage) (GalleryImageRecord, error) {
	rec := GalleryImageRecord{
		ID:          g.ID,
		Image:       g.Image,
		Alt:         g.Alt,
		Caption:     g.Caption,
		PublishedAt: g.PublishedAt,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	if g.TourID != "" {
		id := g.TourID
		rec.TourID = &id
	}
	var err error
	if rec.Tags, err = packColumn(g.Tags, len(g.Tags) > 0); err != nil {
		return rec, fmt.Errorf("gallery image tags: %w", err)
	}
	return rec, nil
}

func (r GalleryImageRecord) GalleryImage() (GalleryImage, error) {
	g := GalleryImage{
		ID:          r.ID,
		Image:       r.Image,
		Alt:         r.Alt,
		Caption:     r.Caption,
		PublishedAt: r.PublishedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.TourID != nil {
		g.TourID = *r.TourID
	}
	if r.TourTitle != nil {
		g.TourTitle = *r.TourTitle
	}
	if len(r.Tags) > 0 {
		if err := json.Unmarshal(r.Tags, &g.Tags); err != nil {
			return g, fmt.Errorf("gallery image %s tags column: %w", r.ID, err)
		}
	}
	return g, nil
}

type GalleryImagePatch struct {
	Image       *string    `json:"image"`
	Alt         *string    `json:"alt"`
	Caption     *string    `json:"caption"`
	TourID      *string    `json:"tourId"`
	Tags        *[]string  `json:"tags"`
	PublishedAt *time.Time `json:"publishedAt"`
}
