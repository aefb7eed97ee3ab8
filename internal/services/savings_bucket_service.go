package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
)

// savingsBucketService handles savings bucket business logic.
type savingsBucketService struct {
	db *gorm.DB
}

// NewSavingsBucketService creates a new SavingsBucketServicer.
func NewSavingsBucketService(db *gorm.DB) SavingsBucketServicer {
	return &savingsBucketService{db: db}
}

// CreateSavingsBucket creates a bucket with a unique name.
func (s *savingsBucketService) CreateSavingsBucket(name string) (*models.SavingsBucket, error) {
	name, err := normalizeName("savings bucket", name)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.SavingsBucket{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, storageError(err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateSavingsBucket
	}

	bucket := &models.SavingsBucket{Name: name}
	if err := s.db.Create(bucket).Error; err != nil {
		return nil, translateWriteError(err, apperrors.ErrDuplicateSavingsBucket, nil)
	}
	return bucket, nil
}

// GetSavingsBuckets returns every bucket ordered by name.
func (s *savingsBucketService) GetSavingsBuckets() ([]models.SavingsBucket, error) {
	buckets := []models.SavingsBucket{}
	if err := s.db.Order("name ASC").Find(&buckets).Error; err != nil {
		return nil, storageError(err)
	}
	return buckets, nil
}

// GetSavingsBucketByID retrieves a bucket by ID.
func (s *savingsBucketService) GetSavingsBucketByID(id uint) (*models.SavingsBucket, error) {
	var bucket models.SavingsBucket
	if err := s.db.First(&bucket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSavingsBucketNotFound
		}
		return nil, storageError(err)
	}
	return &bucket, nil
}

// UpdateSavingsBucket renames a bucket. It returns nil, nil when the bucket does not exist.
func (s *savingsBucketService) UpdateSavingsBucket(id uint, name string) (*models.SavingsBucket, error) {
	name, err := normalizeName("savings bucket", name)
	if err != nil {
		return nil, err
	}

	bucket, err := s.GetSavingsBucketByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSavingsBucketNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if bucket.Name == name {
		return bucket, nil
	}

	var count int64
	if err := s.db.Model(&models.SavingsBucket{}).Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
		return nil, storageError(err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateSavingsBucket
	}

	if err := s.db.Model(bucket).Update("name", name).Error; err != nil {
		return nil, translateWriteError(err, apperrors.ErrDuplicateSavingsBucket, nil)
	}
	bucket.Name = name
	return bucket, nil
}

// DeleteSavingsBucket removes a bucket that has no ledger rows. It reports false when
// the bucket does not exist and ErrSavingsBucketInUse when rows still reference it.
func (s *savingsBucketService) DeleteSavingsBucket(id uint) (bool, error) {
	return deleteUnreferenced(s.db, &models.SavingsBucket{}, id, "savings_bucket_id", apperrors.ErrSavingsBucketInUse)
}
