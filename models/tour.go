package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type Pricing struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	PerPerson bool    `json:"perPerson"`
}

type GroupSize struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Meals struct {
	Breakfast bool `json:"breakfast,omitempty"`
	Lunch     bool `json:"lunch,omitempty"`
	Dinner    bool `json:"dinner,omitempty"`
}

// ItineraryDay is a nested structure owned by Tour; it has no table and no
// identity of its own. Day numbers are stored as given — ordering and
// uniqueness are the caller's responsibility.
type ItineraryDay struct {
	DayNumber     int      `json:"dayNumber"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Activities    []string `json:"activities,omitempty"`
	Meals         *Meals   `json:"meals,omitempty"`
	Accommodation string   `json:"accommodation,omitempty"`
}

type SafetyInfo struct {
	DifficultyLevel     string   `json:"difficultyLevel,omitempty"`
	FitnessRequirements string   `json:"fitnessRequirements,omitempty"`
	Risks               []string `json:"risks,omitempty"`
	EquipmentProvided   []string `json:"equipmentProvided,omitempty"`
	WhatToBring         []string `json:"whatToBring,omitempty"`
	GuideCertifications string   `json:"guideCertifications,omitempty"`
}

type AvailableDate struct {
	Date           string `json:"date"`
	SpotsAvailable int    `json:"spotsAvailable"`
}

// Tour is the aggregate root of the content model. Nested structures are
// persisted as JSON text columns on a single row; a nil pointer / empty
// slice means the column is absent, never an empty JSON document.
type Tour struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Slug           string          `json:"slug"`
	Excerpt        string          `json:"excerpt,omitempty"`
	Body           string          `json:"body,omitempty"`
	Category       string          `json:"category,omitempty"`
	Duration       string          `json:"duration,omitempty"`
	MainImage      string          `json:"mainImage,omitempty"`
	MainImageAlt   string          `json:"mainImageAlt,omitempty"`
	Pricing        *Pricing        `json:"pricing,omitempty"`
	GroupSize      *GroupSize      `json:"groupSize,omitempty"`
	Inclusions     []string        `json:"inclusions,omitempty"`
	Exclusions     []string        `json:"exclusions,omitempty"`
	Itinerary      []ItineraryDay  `json:"itinerary,omitempty"`
	SafetyInfo     *SafetyInfo     `json:"safetyInfo,omitempty"`
	AvailableDates []AvailableDate `json:"availableDates,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	PublishedAt    *time.Time      `json:"publishedAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// TourRecord is the flat storage row. Every mutation serializes a whole
// nested structure into its column in one write.
type TourRecord struct {
	ID             string `gorm:"primaryKey"`
	Title          string `gorm:"not null"`
	Slug           string `gorm:"uniqueIndex;not null"`
	Excerpt        string
	Body           string `gorm:"type:text"`
	Category       string
	Duration       string
	MainImage      string
	MainImageAlt   string
	Pricing        datatypes.JSON
	GroupSize      datatypes.JSON
	Inclusions     datatypes.JSON
	Exclusions     datatypes.JSON
	Itinerary      datatypes.JSON
	SafetyInfo     datatypes.JSON
	AvailableDates datatypes.JSON
	Tags           datatypes.JSON
	PublishedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (TourRecord) TableName() string { return "tours" }

// NewTourRecord projects the nested domain shape onto the flat row.
func NewTourRecord(t Tour) (TourRecord, error) {
	rec := TourRecord{
		ID:           t.ID,
		Title:        t.Title,
		Slug:         t.Slug,
		Excerpt:      t.Excerpt,
		Body:         t.Body,
		Category:     t.Category,
		Duration:     t.Duration,
		MainImage:    t.MainImage,
		MainImageAlt: t.MainImageAlt,
		PublishedAt:  t.PublishedAt,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}

	var err error
	if rec.Pricing, err = packColumn(t.Pricing, t.Pricing != nil); err != nil {
		return rec, fmt.Errorf("tour pricing: %w", err)
	}
	if rec.GroupSize, err = packColumn(t.GroupSize, t.GroupSize != nil); err != nil {
		return rec, fmt.Errorf("tour group size: %w", err)
	}
	if rec.Inclusions, err = packColumn(t.Inclusions, len(t.Inclusions) > 0); err != nil {
		return rec, fmt.Errorf("tour inclusions: %w", err)
	}
	if rec.Exclusions, err = packColumn(t.Exclusions, len(t.Exclusions) > 0); err != nil {
		return rec, fmt.Errorf("tour exclusions: %w", err)
	}
	if rec.Itinerary, err = packColumn(t.Itinerary, len(t.Itinerary) > 0); err != nil {
		return rec, fmt.Errorf("tour itinerary: %w", err)
	}
	if rec.SafetyInfo, err = packColumn(t.SafetyInfo, t.SafetyInfo != nil); err != nil {
		return rec, fmt.Errorf("tour safety info: %w", err)
	}
	if rec.AvailableDates, err = packColumn(t.AvailableDates, len(t.AvailableDates) > 0); err != nil {
		return rec, fmt.Errorf("tour available dates: %w", err)
	}
	if rec.Tags, err = packColumn(t.Tags, len(t.Tags) > 0); err != nil {
		return rec, fmt.Errorf("tour tags: %w", err)
	}
	return rec, nil
}

// Tour projects the flat row back onto the nested domain shape. An empty
// column yields an absent field.
func (r TourRecord) Tour() (Tour, error) {
	t := Tour{
		ID:           r.ID,
		Title:        r.Title,
		Slug:         r.Slug,
		Excerpt:      r.Excerpt,
		Body:         r.Body,
		Category:     r.Category,
		Duration:     r.Duration,
		MainImage:    r.MainImage,
		MainImageAlt: r.MainImageAlt,
		PublishedAt:  r.PublishedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}

	if len(r.Pricing) > 0 {
		var p Pricing
		if err := json.Unmarshal(r.Pricing, &p); err != nil {
			return t, fmt.Errorf("tour %s pricing column: %w", r.ID, err)
		}
		t.Pricing = &p
	}
	if len(r.GroupSize) > 0 {
		var g GroupSize
		if err := json.Unmarshal(r.GroupSize, &g); err != nil {
			return t, fmt.Errorf("tour %s group_size column: %w", r.ID, err)
		}
		t.GroupSize = &g
	}
	if len(r.Inclusions) > 0 {
		if err := json.Unmarshal(r.Inclusions, &t.Inclusions); err != nil {
			return t, fmt.Errorf("tour %s inclusions column: %w", r.ID, err)
		}
	}
	if len(r.Exclusions) > 0 {
		if err := json.Unmarshal(r.Exclusions, &t.Exclusions); err != nil {
			return t, fmt.Errorf("tour %s exclusions column: %w", r.ID, err)
		}
	}
	if len(r.Itinerary) > 0 {
		if err := json.Unmarshal(r.Itinerary, &t.Itinerary); err != nil {
			return t, fmt.Errorf("tour %s itinerary column: %w", r.ID, err)
		}
	}
	if len(r.SafetyInfo) > 0 {
		var s SafetyInfo
		if err := json.Unmarshal(r.SafetyInfo, &s); err != nil {
			return t, fmt.Errorf("tour %s safety_info column: %w", r.ID, err)
		}
		t.SafetyInfo = &s
	}
	if len(r.AvailableDates) > 0 {
		if err := json.Unmarshal(r.AvailableDates, &t.AvailableDates); err != nil {
			return t, fmt.Errorf("tour %s available_dates column: %w", r.ID, err)
		}
	}
	if len(r.Tags) > 0 {
		if err := json.Unmarshal(r.Tags, &t.Tags); err != nil {
			return t, fmt.Errorf("tour %s tags column: %w", r.ID, err)
		}
	}
	return t, nil
}

// packColumn serializes a nested structure into its JSON column, or leaves
// the column absent when the field is absent.
func packColumn(v any, present bool) (datatypes.JSON, error) {
	if !present {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// TourPatch is a partial update. A nil field means "keep the stored value";
// a non-nil field replaces it wholesale.
type TourPatch struct {
	Title          *string          `json:"title"`
	Slug           *string          `json:"slug"`
	Excerpt        *string          `json:"excerpt"`
	Body           *string          `json:"body"`
	Category       *string          `json:"category"`
	Duration       *string          `json:"duration"`
	MainImage      *string          `json:"mainImage"`
	MainImageAlt   *string          `json:"mainImageAlt"`
	Pricing        *Pricing         `json:"pricing"`
	GroupSize      *GroupSize       `json:"groupSize"`
	Inclusions     *[]string        `json:"inclusions"`
	Exclusions     *[]string        `json:"exclusions"`
	Itinerary      *[]ItineraryDay  `json:"itinerary"`
	SafetyInfo     *SafetyInfo      `json:"safetyInfo"`
	AvailableDates *[]AvailableDate `json:"availableDates"`
	Tags           *[]string        `json:"tags"`
	PublishedAt    *time.Time       `json:"publishedAt"`
}
