package services

import (
	"errors"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"tours-backend/models"
	"tours-backend/utils"
)

// TourService owns CRUD over the tours table. Every mutation ends with a
// reload by id so callers only ever see what is actually durable.
type TourService struct {
	DB *gorm.DB
}

func NewTourService(db *gorm.DB) *TourService {
	return &TourService{DB: db}
}

func (s *TourService) List() ([]models.Tour, error) {
	var recs []models.TourRecord
	if err := s.DB.Order("published_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	tours := make([]models.Tour, 0, len(recs))
	for _, rec := range recs {
		t, err := rec.Tour()
		if err != nil {
			return nil, err
		}
		tours = append(tours, t)
	}
	return tours, nil
}

func (s *TourService) GetBySlug(slugVal string) (*models.Tour, error) {
	var rec models.TourRecord
	if err := s.DB.Where("slug = ?", slugVal).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	t, err := rec.Tour()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TourService) GetByID(id string) (*models.Tour, error) {
	var rec models.TourRecord
	if err := s.DB.Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	t, err := rec.Tour()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TourService) Create(draft models.Tour) (*models.Tour, error) {
	draft.ID = utils.NewID()
	now := time.Now().UTC()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.PublishedAt == nil {
		draft.PublishedAt = &now
	}
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Slug == "" {
		draft.Slug = slug.Make(draft.Title)
	}

	rec, err := models.NewTourRecord(draft)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return s.GetByID(rec.ID)
}

func (s *TourService) Update(id string, patch models.TourPatch) (*models.Tour, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	merged := models.MergeTour(*existing, patch)
	merged.UpdatedAt = time.Now().UTC()

	rec, err := models.NewTourRecord(merged)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Save(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return s.GetByID(id)
}

// Delete clears every weak reference pointing at the tour before removing
// the row itself, so referencing gallery images and testimonials always
// survive with their tour reference set null.
func (s *TourService) Delete(id string) (bool, error) {
	if err := s.DB.Model(&models.GalleryImageRecord{}).
		Where("tour_id = ?", id).
		Update("tour_id", nil).Error; err != nil {
		return false, err
	}
	if err := s.DB.Model(&models.TestimonialRecord{}).
		Where("tour_id = ?", id).
		Update("tour_id", nil).Error; err != nil {
		return false, err
	}

	result := s.DB.Where("id = ?", id).Delete(&models.TourRecord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *TourService) Count() (int64, error) {
	var n int64
	err := s.DB.Model(&models.TourRecord{}).Count(&n).Error
	return n, err
}
