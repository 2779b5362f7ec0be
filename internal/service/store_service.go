package service

import (
	"context"
	"fmt"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// StoreService manages storefronts.
type StoreService interface {
	Create(ctx context.Context, in CreateStoreInput) (*model.Store, error)
	Get(ctx context.Context, id uint) (*model.Store, error)
	List(ctx context.Context, limit, offset int) ([]model.Store, int64, error)
}

type storeService struct {
	repo  repository.CRUDRepository[model.Store]
	types repository.CRUDRepository[model.StoreType]
}

// NewStoreService creates a new store service.
func NewStoreService(repo repository.CRUDRepository[model.Store], types repository.CRUDRepository[model.StoreType]) StoreService {
	return &storeService{repo: repo, types: types}
}

func (s *storeService) Create(ctx context.Context, in CreateStoreInput) (*model.Store, error) {
	if in.StoreTypeID != nil {
		if _, err := s.types.FindByID(ctx, *in.StoreTypeID); err != nil {
			return nil, notFound(err, apperrors.ErrStoreTypeNotFound, "find store type")
		}
	}

	store := &model.Store{
		Name:        in.Name,
		Description: in.Description,
		StoreTypeID: in.StoreTypeID,
	}
	if in.Image != nil {
		store.Image = in.Image.toModel()
	}
	if in.Address != nil {
		store.Address = in.Address.toModel()
	}
	if err := s.repo.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	return s.Get(ctx, store.ID)
}

func (s *storeService) Get(ctx context.Context, id uint) (*model.Store, error) {
	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrStoreNotFound, "find store")
	}
	return store, nil
}

func (s *storeService) List(ctx context.Context, limit, offset int) ([]model.Store, int64, error) {
	stores, count, err := s.repo.List(ctx, repository.ListOptions{Limit: limit, Offset: offset})
	if err != nil {
		return nil, 0, fmt.Errorf("list stores: %w", err)
	}
	return stores, count, nil
}
