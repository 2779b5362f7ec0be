package service

import (
	"context"
	"fmt"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// PetService manages pet types and their breeds.
type PetService interface {
	ListTypes(ctx context.Context) ([]model.PetType, error)
	CreateType(ctx context.Context, in CreatePetTypeInput) (*model.PetType, error)
	ListBreeds(ctx context.Context, petTypeID uint) ([]model.Breed, error)
	CreateBreed(ctx context.Context, in CreateBreedInput) (*model.Breed, error)
}

type petService struct {
	types  repository.CRUDRepository[model.PetType]
	breeds repository.CRUDRepository[model.Breed]
}

// NewPetService creates a new pet service.
func NewPetService(types repository.CRUDRepository[model.PetType], breeds repository.CRUDRepository[model.Breed]) PetService {
	return &petService{types: types, breeds: breeds}
}

func (s *petService) ListTypes(ctx context.Context) ([]model.PetType, error) {
	types, _, err := s.types.List(ctx, repository.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pet types: %w", err)
	}
	return types, nil
}

func (s *petService) CreateType(ctx context.Context, in CreatePetTypeInput) (*model.PetType, error) {
	pt := &model.PetType{Name: in.Name}
	if err := s.types.Create(ctx, pt); err != nil {
		return nil, fmt.Errorf("create pet type: %w", err)
	}
	return pt, nil
}

// ListBreeds lists every breed, or only those of petTypeID when it is non-zero.
func (s *petService) ListBreeds(ctx context.Context, petTypeID uint) ([]model.Breed, error) {
	opts := repository.ListOptions{}
	if petTypeID != 0 {
		opts.Where = repository.ByPetType(petTypeID)
	}
	breeds, _, err := s.breeds.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	return breeds, nil
}

func (s *petService) CreateBreed(ctx context.Context, in CreateBreedInput) (*model.Breed, error) {
	if _, err := s.types.FindByID(ctx, in.PetTypeID); err != nil {
		return nil, notFound(err, apperrors.ErrPetTypeNotFound, "find pet type")
	}
	breed := &model.Breed{Name: in.Name, PetTypeID: in.PetTypeID}
	if err := s.breeds.Create(ctx, breed); err != nil {
		return nil, fmt.Errorf("create breed: %w", err)
	}
	created, err := s.breeds.FindByID(ctx, breed.ID)
	if err != nil {
		return nil, fmt.Errorf("reload breed: %w", err)
	}
	return created, nil
}
