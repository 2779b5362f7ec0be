package service

import (
	"context"
	"fmt"

	"marketplace/internal/auth"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// StorePermission is one store an admin manages, with a token scoped to it.
type StorePermission struct {
	StoreType     string       `json:"store_type"`
	StoreTypeName string       `json:"store_type_name"`
	Name          string       `json:"name"`
	Image         *model.Image `json:"image"`
	Token         string       `json:"token"`
	Features      []string     `json:"features"`
}

// PermissionGroup collects the stores an admin manages under one permission.
type PermissionGroup struct {
	Key    string            `json:"key"`
	Name   string            `json:"name"`
	Stores []StorePermission `json:"stores"`
}

// PermissionService builds the admin permission tree returned on sign-in.
type PermissionService interface {
	Aggregate(ctx context.Context, userID uint) ([]PermissionGroup, error)
}

type permissionService struct {
	admins     repository.UserAdminRepository
	jwtService *auth.JWTService
}

// NewPermissionService creates a new permission service.
func NewPermissionService(admins repository.UserAdminRepository, jwtService *auth.JWTService) PermissionService {
	return &permissionService{admins: admins, jwtService: jwtService}
}

// Aggregate groups the user's admin grants by permission key. Groups keep the
// order in which their key first appears and stores keep grant order.
func (s *permissionService) Aggregate(ctx context.Context, userID uint) ([]PermissionGroup, error) {
	grants, err := s.admins.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load admin grants: %w", err)
	}

	groups := make([]PermissionGroup, 0)
	index := make(map[string]int)

	for _, grant := range grants {
		if grant.Permission == nil || grant.Store == nil {
			continue
		}

		entry, err := s.storePermission(ctx, userID, grant)
		if err != nil {
			return nil, err
		}

		key := grant.Permission.Key
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, PermissionGroup{
				Key:    key,
				Name:   grant.Permission.Name,
				Stores: make([]StorePermission, 0, 1),
			})
		}
		groups[i].Stores = append(groups[i].Stores, entry)
	}
	return groups, nil
}

func (s *permissionService) storePermission(ctx context.Context, userID uint, grant model.UserAdmin) (StorePermission, error) {
	store := grant.Store
	entry := StorePermission{
		Name:     store.Name,
		Image:    store.Image,
		Features: make([]string, 0),
	}

	if store.StoreType != nil {
		entry.StoreType = store.StoreType.Key
		entry.StoreTypeName = store.StoreType.Name
		if profile := profileOf(store, store.StoreType.Key); profile != nil {
			entry.Name = profile.Name
			entry.Image = profile.Image
		}
	}

	token, err := s.jwtService.GenerateStoreToken(userID, store.ID)
	if err != nil {
		return StorePermission{}, fmt.Errorf("sign store token: %w", err)
	}
	entry.Token = token

	if store.StoreType != nil {
		features, err := s.admins.FeatureKeys(ctx, grant.UserAdminPermissionID, store.StoreType.ID)
		if err != nil {
			return StorePermission{}, fmt.Errorf("load features: %w", err)
		}
		entry.Features = append(entry.Features, features...)
	}
	return entry, nil
}

// profileOf returns the store's profile of the given kind, if any.
func profileOf(store *model.Store, kind string) *model.StoreProfile {
	for i := range store.Profiles {
		if store.Profiles[i].Kind == kind {
			return &store.Profiles[i]
		}
	}
	return nil
}
