package service

import (
	"context"
	"fmt"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// UserImageService manages gallery entries.
type UserImageService interface {
	Create(ctx context.Context, in CreateUserImageInput) (*model.UserImage, error)
	Get(ctx context.Context, id uint) (*model.UserImage, error)
	List(ctx context.Context, limit, offset int) ([]model.UserImage, int64, error)
}

type userImageService struct {
	repo repository.CRUDRepository[model.UserImage]
}

// NewUserImageService creates a new gallery service.
func NewUserImageService(repo repository.CRUDRepository[model.UserImage]) UserImageService {
	return &userImageService{repo: repo}
}

func (s *userImageService) Create(ctx context.Context, in CreateUserImageInput) (*model.UserImage, error) {
	entry := &model.UserImage{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image.toModel(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create user image: %w", err)
	}
	return entry, nil
}

func (s *userImageService) Get(ctx context.Context, id uint) (*model.UserImage, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserImageNotFound, "find user image")
	}
	return entry, nil
}

func (s *userImageService) List(ctx context.Context, limit, offset int) ([]model.UserImage, int64, error) {
	entries, count, err := s.repo.List(ctx, repository.ListOptions{Limit: limit, Offset: offset})
	if err != nil {
		return nil, 0, fmt.Errorf("list user images: %w", err)
	}
	return entries, count, nil
}
