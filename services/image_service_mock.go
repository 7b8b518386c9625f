package services

import (
	"fmt"
	"mime/multipart"

	"github.com/elena-voss/luxe-salon-api/utils"
)

// MockImageService is a mock implementation of ImageService for testing
type MockImageService struct {
	// UploadedImages tracks keys of uploaded images
	UploadedImages map[string]bool
	// DeletedImages tracks keys of deleted images
	DeletedImages map[string]bool
	// ShouldFailUpload makes UploadImage return an error
	ShouldFailUpload bool
	// ShouldFailDelete makes DeleteImage return an error
	ShouldFailDelete bool
	// UploadCounter generates unique keys for uploads
	UploadCounter int
}

// NewMockImageService creates a new mock image service
func NewMockImageService() *MockImageService {
	return &MockImageService{
		UploadedImages: make(map[string]bool),
		DeletedImages:  make(map[string]bool),
	}
}

// UploadImage simulates an image upload, still running real validation
func (m *MockImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	if m.ShouldFailUpload {
		return "", fmt.Errorf("mock upload failure")
	}

	m.UploadCounter++
	key := fmt.Sprintf("images/mock_%d_%s", m.UploadCounter, fileHeader.Filename)
	m.UploadedImages[key] = true
	return key, nil
}

// GetImageURL returns a deterministic fake URL for an image key
func (m *MockImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}
	return "https://mock-bucket.s3.amazonaws.com/" + imageKey, nil
}

// DeleteImage simulates deleting an image
func (m *MockImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}

	if m.ShouldFailDelete {
		return fmt.Errorf("mock delete failure")
	}

	m.DeletedImages[imageKey] = true
	delete(m.UploadedImages, imageKey)
	return nil
}
