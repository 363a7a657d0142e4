package models

import "time"

// Testimonial carries the same weak tour reference policy as GalleryImage.
type Testimonial struct {
	ID            string     `json:"id"`
	CustomerName  string     `json:"customerName"`
	CustomerPhoto string     `json:"customerPhoto,omitempty"`
	Quote         string     `json:"quote"`
	Rating        int        `json:"rating"`
	TourID        string     `json:"tourId,omitempty"`
	TourTitle     string     `json:"tourTitle,omitempty"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type TestimonialRecord struct {
	ID            string  `gorm:"primaryKey"`
	CustomerName  string  `gorm:"not null"`
	CustomerPhoto string
	Quote         string  `gorm:"type:text;not null"`
	Rating        int     `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	TourID        *string `gorm:"index"`
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	TourTitle *string `gorm:"->;-:migration"`
}

func (TestimonialRecord) TableName() string { return "testimonials" }

func NewTestimonialRecord(t Testimonial) TestimonialRecord {
	rec := TestimonialRecord{
		ID:            t.ID,
		CustomerName:  t.CustomerName,
		CustomerPhoto: t.CustomerPhoto,
		Quote:         t.Quote,
		Rating:        t.Rating,
		PublishedAt:   t.PublishedAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	if t.TourID != "" {
		id := t.TourID
		rec.TourID = &id
	}
	return rec
}

func (r TestimonialRecord) Testimonial() Testimonial {
	t := Testimonial{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		CustomerPhoto: r.CustomerPhoto,
		Quote:         r.Quote,
		Rating:        r.Rating,
		PublishedAt:   r.PublishedAt,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.TourID != nil {
		t.TourID = *r.TourID
	}
	if r.TourTitle != nil {
		t.TourTitle = *r.TourTitle
	}
	return t
}

type TestimonialPatch struct {
	CustomerName  *string    `json:"customerName"`
	CustomerPhoto *string    `json:"customerPhoto"`
	Quote         *string    `json:"quote"`
	Rating        *int       `json:"rating"`
	TourID        *string    `json:"tourId"`
	PublishedAt   *time.Time `json:"publishedAt"`
}
