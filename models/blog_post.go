package models

import "time"

// BlogPost is flat — no JSON columns — so the gorm model doubles as the
// domain shape.
type BlogPost struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Slug         string     `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt      string     `json:"excerpt,omitempty"`
	Body         string     `gorm:"type:text" json:"body,omitempty"`
	MainImage    string     `json:"mainImage,omitempty"`
	MainImageAlt string     `json:"mainImageAlt,omitempty"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (BlogPost) TableName() string { return "blog_posts" }

type BlogPostPatch struct {
	Title        *string    `json:"title"`
	Slug         *string    `json:"slug"`
	Excerpt      *string    `json:"excerpt"`
	Body         *string    `json:"body"`
	MainImage    *string    `json:"mainImage"`
	MainImageAlt *string    `json:"mainImageAlt"`
	PublishedAt  *time.Time `json:"publishedAt"`
}
