package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"tours-backend/models"
	"tours-backend/utils"
)

type TestimonialService struct {
	DB *gorm.DB
}

func NewTestimonialService(db *gorm.DB) *TestimonialService {
	return &TestimonialService{DB: db}
}

// validateRating rejects — never silently clamps — ratings outside [1,5].
func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.Join(ErrValidation, errors.New("rating must be between 1 and 5"))
	}
	return nil
}

func (s *TestimonialService) withTourTitle() *gorm.DB {
	return s.DB.Model(&models.TestimonialRecord{}).
		Select("testimonials.*, tours.title AS tour_title").
		Joins("LEFT JOIN tours ON tours.id = testimonials.tour_id")
}

func (s *TestimonialService) List() ([]models.Testimonial, error) {
	var recs []models.TestimonialRecord
	if err := s.withTourTitle().
		Order("testimonials.published_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return projectTestimonials(recs), nil
}

func (s *TestimonialService) ListByTour(tourID string) ([]models.Testimonial, error) {
	var recs []models.TestimonialRecord
	if err := s.withTourTitle().
		Where("testimonials.tour_id = ?", tourID).
		Order("testimonials.published_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return projectTestimonials(recs), nil
}

func projectTestimonials(recs []models.TestimonialRecord) []models.Testimonial {
	out := make([]models.Testimonial, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Testimonial())
	}
	return out
}

func (s *TestimonialService) GetByID(id string) (*models.Testimonial, error) {
	var rec models.TestimonialRecord
	if err := s.withTourTitle().
		Where("testimonials.id = ?", id).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	t := rec.Testimonial()
	return &t, nil
}

func (s *TestimonialService) Create(draft models.Testimonial) (*models.Testimonial, error) {
	if strings.TrimSpace(draft.CustomerName) == "" || strings.TrimSpace(draft.Quote) == "" {
		return nil, errors.Join(ErrValidation, errors.New("customer name and quote are required"))
	}
	if err := validateRating(draft.Rating); err != nil {
		return nil, err
	}
	draft.ID = utils.NewID()
	now := time.Now().UTC()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.PublishedAt == nil {
		draft.PublishedAt = &now
	}

	rec := models.NewTestimonialRecord(draft)
	if err := s.DB.Create(&rec).Error; err != nil {
		return nil, err
	}
	return s.GetByID(rec.ID)
}

func (s *TestimonialService) Update(id string, patch models.TestimonialPatch) (*models.Testimonial, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	merged := models.MergeTestimonial(*existing, patch)
	merged.UpdatedAt = time.Now().UTC()
	if err := validateRating(merged.Rating); err != nil {
		return nil, err
	}

	rec := models.NewTestimonialRecord(merged)
	if err := s.DB.Save(&rec).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *TestimonialService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.TestimonialRecord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *TestimonialService) Count() (int64, error) {
	var n int64
	err := s.DB.Model(&models.TestimonialRecord{}).Count(&n).Error
	return n, err
}
