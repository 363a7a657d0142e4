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

type BlogService struct {
	DB *gorm.DB
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{DB: db}
}

func (s *BlogService) List() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := s.DB.Order("published_at DESC").Find(&posts).Error
	return posts, err
}

func (s *BlogService) GetBySlug(slugVal string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.DB.Where("slug = ?", slugVal).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *BlogService) GetByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.DB.Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *BlogService) Create(draft models.BlogPost) (*models.BlogPost, error) {
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

	if err := s.DB.Create(&draft).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return s.GetByID(draft.ID)
}

func (s *BlogService) Update(id string, patch models.BlogPostPatch) (*models.BlogPost, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	merged := models.MergeBlogPost(*existing, patch)
	merged.UpdatedAt = time.Now().UTC()

	if err := s.DB.Save(&merged).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return s.GetByID(id)
}

func (s *BlogService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.BlogPost{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *BlogService) Count() (int64, error) {
	var n int64
	err := s.DB.Model(&models.BlogPost{}).Count(&n).Error
	return n, err
}
