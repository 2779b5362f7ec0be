package service

import (
	"context"
	"fmt"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// ServiceService manages what stores sell and how it is classified.
type ServiceService interface {
	ListTypes(ctx context.Context) ([]model.ServiceType, error)
	CreateType(ctx context.Context, in CreateServiceTypeInput) (*model.ServiceType, error)
	Create(ctx context.Context, in CreateServiceInput) (*model.Service, error)
	Get(ctx context.Context, id uint) (*model.Service, error)
}

type serviceService struct {
	types    repository.CRUDRepository[model.ServiceType]
	services repository.CRUDRepository[model.Service]
	stores   repository.CRUDRepository[model.Store]
	images   repository.CRUDRepository[model.Image]
}

// NewServiceService creates a new service catalog.
func NewServiceService(
	types repository.CRUDRepository[model.ServiceType],
	services repository.CRUDRepository[model.Service],
	stores repository.CRUDRepository[model.Store],
	images repository.CRUDRepository[model.Image],
) ServiceService {
	return &serviceService{types: types, services: services, stores: stores, images: images}
}

func (s *serviceService) ListTypes(ctx context.Context) ([]model.ServiceType, error) {
	types, _, err := s.types.List(ctx, repository.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list service types: %w", err)
	}
	return types, nil
}

func (s *serviceService) CreateType(ctx context.Context, in CreateServiceTypeInput) (*model.ServiceType, error) {
	st := &model.ServiceType{Key: in.Key, Name: in.Name}
	if err := s.types.Create(ctx, st); err != nil {
		return nil, fmt.Errorf("create service type: %w", err)
	}
	return st, nil
}

// Create adds a service to an existing store; a given service type must exist too.
func (s *serviceService) Create(ctx context.Context, in CreateServiceInput) (*model.Service, error) {
	if _, err := s.stores.FindByID(ctx, in.StoreID); err != nil {
		return nil, notFound(err, apperrors.ErrStoreNotFound, "find store")
	}
	if in.ServiceTypeID != nil {
		if _, err := s.types.FindByID(ctx, *in.ServiceTypeID); err != nil {
			return nil, notFound(err, apperrors.ErrServiceTypeNotFound, "find service type")
		}
	}

	svc := &model.Service{
		Name:          in.Name,
		Description:   in.Description,
		Price:         *in.Price,
		StoreID:       in.StoreID,
		ServiceTypeID: in.ServiceTypeID,
	}
	if in.Image != nil {
		image := in.Image.toModel()
		if err := s.images.Create(ctx, image); err != nil {
			return nil, fmt.Errorf("create image: %w", err)
		}
		svc.ImageID = &image.ID
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return s.Get(ctx, svc.ID)
}

func (s *serviceService) Get(ctx context.Context, id uint) (*model.Service, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrServiceNotFound, "find service")
	}
	return svc, nil
}
