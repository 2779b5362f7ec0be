package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"marketplace/internal/auth"
	"marketplace/internal/cache"
	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

const (
	bcryptCost   = 10
	userCacheTTL = 5 * time.Minute
	adminRole    = "admin"
)

// UserProfile is a user together with its follow counts.
type UserProfile struct {
	User           *model.User
	FollowNumber   int64
	FollowedNumber int64
}

// UserService exposes domain operations.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*UserProfile, error)
	List(ctx context.Context, in ListUsersInput) ([]model.User, int64, error)
	Get(ctx context.Context, id uint) (*UserProfile, error)
	Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error)
	UserTypes(ctx context.Context, caller *model.User) ([]model.UserType, error)
	Destroy(ctx context.Context, caller *model.User, id uint) error
	BulkDestroy(ctx context.Context, caller *model.User, ids []uint) error
}

type userService struct {
	repo      repository.UserRepository
	images    repository.CRUDRepository[model.Image]
	addresses repository.AddressRepository
	cache     *cache.Client
}

// NewUserService builds a UserService with repositories and cache.
func NewUserService(
	repo repository.UserRepository,
	images repository.CRUDRepository[model.Image],
	addresses repository.AddressRepository,
	cache *cache.Client,
) UserService {
	return &userService{repo: repo, images: images, addresses: addresses, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// Create registers an account. The email must be free, and so must the access
// code when one is given. Deleted accounts keep their email and code.
func (s *userService) Create(ctx context.Context, in CreateUserInput) (*UserProfile, error) {
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	var code *string
	if in.Code != "" {
		if _, err := s.repo.FindByCode(ctx, in.Code); err == nil {
			return nil, apperrors.ErrCodeTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check code: %w", err)
		}
		code = &in.Code
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userTypeID := in.UserTypeID
	if userTypeID == 0 {
		userTypeID = model.DefaultUserTypeID
	}

	user := &model.User{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Cpf:             in.Cpf,
		Rg:              in.Rg,
		Email:           in.Email,
		PasswordHash:    string(hash),
		Phone:           in.Phone,
		Code:            code,
		UserTypeID:      userTypeID,
		StoreID:         in.StoreID,
		PrivacyPolicyID: model.DefaultPolicyID,
		TermUseID:       model.DefaultPolicyID,
	}
	if in.Image != nil {
		user.Image = in.Image.toModel()
	}
	if in.Address != nil {
		user.Address = in.Address.toModel()
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return s.load(ctx, user.ID)
}

// List pages through users. A filter replaces the first-name search.
func (s *userService) List(ctx context.Context, in ListUsersInput) ([]model.User, int64, error) {
	opts := repository.ListOptions{Limit: in.Limit, Offset: in.Offset}

	if in.Query != "" {
		opts.Where = repository.SearchFirstName(in.Query)
	}
	if in.Filter != "" {
		where, err := repository.ParseFilter(in.Filter, repository.UserColumns)
		if err != nil {
			return nil, 0, err
		}
		opts.Where = where
	}
	if in.Order != "" {
		order, err := repository.ParseOrder(in.Order, repository.UserColumns)
		if err != nil {
			return nil, 0, err
		}
		opts.Order = order
	}

	users, count, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, count, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*UserProfile, error) {
	var cached UserProfile
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) && cached.User != nil {
		return &cached, nil
	}

	profile, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, s.cacheKey(id), profile, userCacheTTL)
	return profile, nil
}

// load reads the user and its follow counts straight from the database.
func (s *userService) load(ctx context.Context, id uint) (*UserProfile, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	following, err := s.repo.CountFollowing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}
	followers, err := s.repo.CountFollowers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}
	return &UserProfile{User: user, FollowNumber: following, FollowedNumber: followers}, nil
}

func (s *userService) findUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Update applies a partial update. Every image payload becomes a new image row;
// the address is edited in place when the user already has one.
func (s *userService) Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		other, err := s.repo.FindByEmail(ctx, *in.Email)
		switch {
		case err == nil && other.ID != id:
			return nil, apperrors.ErrEmailTaken
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("check email: %w", err)
		}
	}
	if in.Code != nil && *in.Code != "" && (user.Code == nil || *in.Code != *user.Code) {
		other, err := s.repo.FindByCode(ctx, *in.Code)
		switch {
		case err == nil && other.ID != id:
			return nil, apperrors.ErrCodeTaken
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("check code: %w", err)
		}
	}

	fields := in.fields()
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields["password_hash"] = string(hash)
	}

	if in.Image != nil {
		image := in.Image.toModel()
		if err := s.images.Create(ctx, image); err != nil {
			return nil, fmt.Errorf("create image: %w", err)
		}
		fields["image_id"] = image.ID
	}

	if in.Address != nil {
		addressID, err := s.upsertAddress(ctx, user.AddressID, in.Address)
		if err != nil {
			return nil, err
		}
		fields["address_id"] = addressID
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	return s.findUser(ctx, id)
}

func (s *userService) upsertAddress(ctx context.Context, current *uint, in *AddressInput) (uint, error) {
	if current != nil {
		_, err := s.addresses.FindByID(ctx, *current)
		switch {
		case err == nil:
			if err := s.addresses.Update(ctx, *current, in.fields()); err != nil {
				return 0, fmt.Errorf("update address: %w", err)
			}
			return *current, nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return 0, fmt.Errorf("find address: %w", err)
		}
	}

	address := in.toModel()
	if err := s.addresses.Create(ctx, address); err != nil {
		return 0, fmt.Errorf("create address: %w", err)
	}
	return address.ID, nil
}

func (s *userService) UserTypes(ctx context.Context, caller *model.User) ([]model.UserType, error) {
	if !auth.Check(caller, adminRole) {
		return nil, apperrors.ErrUnauthorized
	}
	types, err := s.repo.ListUserTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user types: %w", err)
	}
	return types, nil
}

func (s *userService) Destroy(ctx context.Context, caller *model.User, id uint) error {
	if !auth.Check(caller, adminRole) {
		return apperrors.ErrDeleteUnauthorized
	}
	if _, err := s.findUser(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// BulkDestroy deletes every listed user without checking that they exist.
func (s *userService) BulkDestroy(ctx context.Context, caller *model.User, ids []uint) error {
	if !auth.Check(caller, adminRole) {
		return apperrors.ErrDeleteUnauthorized
	}
	if err := s.repo.DeleteMany(ctx, ids); err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, s.cacheKey(id))
	}
	_ = s.cache.Delete(ctx, keys...)
	return nil
}
