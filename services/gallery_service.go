package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"tours-backend/models"
	"tours-backend/utils"
)

type GalleryService struct {
	DB *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{DB: db}
}

// withTourTitle joins the referenced tour so lists carry the denormalized
// title. The join is advisory: a missing tour simply yields no title.
func (s *GalleryService) withTourTitle() *gorm.DB {
	return s.DB.Model(&models.GalleryImageRecord{}).
		Select("gallery_images.*, tours.title AS tour_title").
		Joins("LEFT JOIN tours ON tours.id = gallery_images.tour_id")
}

func (s *GalleryService) List() ([]models.GalleryImage, error) {
	var recs []models.GalleryImageRecord
	if err := s.withTourTitle().
		Order("gallery_images.published_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return projectGallery(recs)
}

func (s *GalleryService) ListByTour(tourID string) ([]models.GalleryImage, error) {
	var recs []models.GalleryImageRecord
	if err := s.withTourTitle().
		Where("gallery_images.tour_id = ?", tourID).
		Order("gallery_images.published_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return projectGallery(recs)
}

func projectGallery(recs []models.GalleryImageRecord) ([]models.GalleryImage, error) {
	images := make([]models.GalleryImage, 0, len(recs))
	for _, rec := range recs {
		img, err := rec.GalleryImage()
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func (s *GalleryService) GetByID(id string) (*models.GalleryImage, error) {
	var rec models.GalleryImageRecord
	if err := s.withTourTitle().
		Where("gallery_images.id = ?", id).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	img, err := rec.GalleryImage()
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (s *GalleryService) Create(draft models.GalleryImage) (*models.GalleryImage, error) {
	if strings.TrimSpace(draft.Alt) == "" {
		return nil, errors.Join(ErrValidation, errors.New("alt text is required"))
	}
	draft.ID = utils.NewID()
	now := time.Now().UTC()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.PublishedAt == nil {
		draft.PublishedAt = &now
	}

	rec, err := models.NewGalleryImageRecord(draft)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return nil, err
	}
	return s.GetByID(rec.ID)
}

func (s *GalleryService) Update(id string, patch models.GalleryImagePatch) (*models.GalleryImage, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	merged := models.MergeGalleryImage(*existing, patch)
	merged.UpdatedAt = time.Now().UTC()
	if strings.TrimSpace(merged.Alt) == "" {
		return nil, errors.Join(ErrValidation, errors.New("alt text is required"))
	}

	rec, err := models.NewGalleryImageRecord(merged)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Save(&rec).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *GalleryService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.GalleryImageRecord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *GalleryService) Count() (int64, error) {
	var n int64
	err := s.DB.Model(&models.GalleryImageRecord{}).Count(&n).Error
	return n, err
}
