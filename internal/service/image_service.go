package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// ImageService stores and serves encoded images.
type ImageService interface {
	Create(ctx context.Context, in RequiredImageInput) (*model.Image, error)
	Get(ctx context.Context, id uint) (*model.Image, error)
}

type imageService struct {
	repo repository.CRUDRepository[model.Image]
}

// NewImageService creates a new image service.
func NewImageService(repo repository.CRUDRepository[model.Image]) ImageService {
	return &imageService{repo: repo}
}

func (s *imageService) Create(ctx context.Context, in RequiredImageInput) (*model.Image, error) {
	image := in.toModel()
	if err := s.repo.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("create image: %w", err)
	}
	return image, nil
}

func (s *imageService) Get(ctx context.Context, id uint) (*model.Image, error) {
	image, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrImageNotFound, "find image")
	}
	return image, nil
}

// notFound maps a missing row to sentinel and wraps anything else with op.
func notFound(err error, sentinel error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("%s: %w", op, err)
}
