package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"tours-backend/models"
	"tours-backend/utils"
)

// SubmissionService persists visitor-entered contact and inquiry forms.
// Submissions are append-only; there are no update or delete paths.
type SubmissionService struct {
	DB *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{DB: db}
}

func (s *SubmissionService) CreateContact(sub models.ContactSubmission) (*models.ContactSubmission, error) {
	if strings.TrimSpace(sub.Name) == "" || strings.TrimSpace(sub.Email) == "" {
		return nil, errors.Join(ErrValidation, errors.New("name and email are required"))
	}
	sub.ID = utils.NewID()
	sub.CreatedAt = time.Now().UTC()
	if err := s.DB.Create(&sub).Error; err != nil {
		return nil, err
	}

	var saved models.ContactSubmission
	if err := s.DB.Where("id = ?", sub.ID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *SubmissionService) CreateInquiry(sub models.InquirySubmission) (*models.InquirySubmission, error) {
	if strings.TrimSpace(sub.Name) == "" || strings.TrimSpace(sub.Email) == "" {
		return nil, errors.Join(ErrValidation, errors.New("name and email are required"))
	}
	sub.ID = utils.NewID()
	sub.CreatedAt = time.Now().UTC()
	if err := s.DB.Create(&sub).Error; err != nil {
		return nil, err
	}

	var saved models.InquirySubmission
	if err := s.DB.Where("id = ?", sub.ID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *SubmissionService) ListContact() ([]models.ContactSubmission, error) {
	var subs []models.ContactSubmission
	err := s.DB.Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func (s *SubmissionService) ListInquiry() ([]models.InquirySubmission, error) {
	var subs []models.InquirySubmission
	err := s.DB.Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func (s *SubmissionService) CountContact() (int64, error) {
	var n int64
	err := s.DB.Model(&models.ContactSubmission{}).Count(&n).Error
	return n, err
}

func (s *SubmissionService) CountInquiry() (int64, error) {
	var n int64
	err := s.DB.Model(&models.InquirySubmission{}).Count(&n).Error
	return n, err
}
