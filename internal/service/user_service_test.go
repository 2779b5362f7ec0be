package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"marketplace/internal/db/dbtest"
	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

func newUserService(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()
	gormDB := dbtest.New(t)
	require.NoError(t, gormDB.Create(&[]model.UserType{
		{ID: 1, Key: "admin", Name: "Administrador"},
		{ID: 2, Key: "user", Name: "Usuário"},
	}).Error)
	svc := NewUserService(
		repository.NewUserRepository(gormDB),
		repository.NewImageRepository(gormDB),
		repository.NewAddressRepository(gormDB),
		nil,
	)
	return svc, gormDB
}

func ptr[T any](v T) *T { return &v }

var admin = &model.User{ID: 99, UserType: &model.UserType{Key: "admin"}}

func TestUserService_Create(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	profile, err := svc.Create(ctx, CreateUserInput{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "secret123",
		Image:     &ImageInput{Data: "aGk="},
	})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultUserTypeID, profile.User.UserTypeID)
	assert.Equal(t, model.DefaultPolicyID, profile.User.PrivacyPolicyID)
	assert.Nil(t, profile.User.Code)
	require.NotNil(t, profile.User.Image)
	assert.Equal(t, "aGk=", profile.User.Image.Data)
	assert.Zero(t, profile.FollowNumber)
	assert.Zero(t, profile.FollowedNumber)
	assert.NotEqual(t, "secret123", profile.User.PasswordHash)
}

func TestUserService_CreateConflicts(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserInput{FirstName: "Ana", Email: "ana@example.com", Password: "x", Code: "A1"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateUserInput{FirstName: "Outra", LastName: "Pessoa", Email: "ana@example.com", Password: "y"})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	assert.Equal(t, "Existe outra conta com esse email", err.Error())

	_, err = svc.Create(ctx, CreateUserInput{FirstName: "Bia", Email: "bia@example.com", Password: "y", Code: "A1"})
	assert.ErrorIs(t, err, apperrors.ErrCodeTaken)

	// Without a code, no code check happens and several users may omit it.
	_, err = svc.Create(ctx, CreateUserInput{FirstName: "Bia", Email: "bia@example.com", Password: "y"})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, CreateUserInput{FirstName: "Caio", Email: "caio@example.com", Password: "y"})
	assert.NoError(t, err)
}

func TestUserService_ReRegisterAfterDestroy(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{FirstName: "Ana", Email: "a@example.com", Password: "x", Code: "C1"})
	require.NoError(t, err)
	require.NoError(t, svc.Destroy(ctx, admin, created.User.ID))

	_, err = svc.Create(ctx, CreateUserInput{FirstName: "Ana", Email: "a@example.com", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)

	_, err = svc.Create(ctx, CreateUserInput{FirstName: "Caio", Email: "c@example.com", Password: "x", Code: "C1"})
	assert.ErrorIs(t, err, apperrors.ErrCodeTaken)

	other, err := svc.Create(ctx, CreateUserInput{FirstName: "Bia", Email: "b@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, other.User.ID, UpdateUserInput{Email: ptr("a@example.com")})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	_, err = svc.Update(ctx, other.User.ID, UpdateUserInput{Code: ptr("C1")})
	assert.ErrorIs(t, err, apperrors.ErrCodeTaken)
}

func TestUserService_UpdateLookupFailure(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset")
	user := &model.User{ID: 4, Email: "ana@example.com"}

	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(4)).Return(user, nil)
	repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, dbErr)
	repo.On("FindByCode", mock.Anything, "Z9").Return(nil, dbErr)

	svc := NewUserService(repo, nil, nil, nil)

	_, err := svc.Update(ctx, 4, UpdateUserInput{Email: ptr("new@example.com")})
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorContains(t, err, "check email")

	_, err = svc.Update(ctx, 4, UpdateUserInput{Code: ptr("Z9")})
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorContains(t, err, "check code")

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_UpdateReusesAddress(t *testing.T) {
	svc, gormDB := newUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{FirstName: "Ana", Email: "ana@example.com", Password: "x"})
	require.NoError(t, err)
	id := created.User.ID
	require.Nil(t, created.User.AddressID)

	first, err := svc.Update(ctx, id, UpdateUserInput{Address: &AddressInput{City: ptr("Recife")}})
	require.NoError(t, err)
	require.NotNil(t, first.AddressID)

	var addresses int64
	require.NoError(t, gormDB.Model(&model.Address{}).Count(&addresses).Error)
	assert.Equal(t, int64(1), addresses)

	second, err := svc.Update(ctx, id, UpdateUserInput{Address: &AddressInput{Street: ptr("Rua B")}})
	require.NoError(t, err)
	require.NotNil(t, second.AddressID)
	assert.Equal(t, *first.AddressID, *second.AddressID)
	assert.Equal(t, "Recife", second.Address.City)
	assert.Equal(t, "Rua B", second.Address.Street)

	require.NoError(t, gormDB.Model(&model.Address{}).Count(&addresses).Error)
	assert.Equal(t, int64(1), addresses)
}

func TestUserService_UpdateImageAddsRow(t *testing.T) {
	svc, gormDB := newUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{FirstName: "Ana", Email: "ana@example.com", Password: "x", Image: &ImageInput{Data: "b2xk"}})
	require.NoError(t, err)
	oldImageID := *created.User.ImageID

	updated, err := svc.Update(ctx, created.User.ID, UpdateUserInput{Image: &ImageInput{Data: "bmV3"}})
	require.NoError(t, err)
	require.NotNil(t, updated.ImageID)
	assert.NotEqual(t, oldImageID, *updated.ImageID)
	assert.Equal(t, "bmV3", updated.Image.Data)

	var images int64
	require.NoError(t, gormDB.Model(&model.Image{}).Count(&images).Error)
	assert.Equal(t, int64(2), images)
}

func TestUserService_UpdateFieldsAndPassword(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{FirstName: "Ana", LastName: "Lima", Email: "ana@example.com", Password: "x"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.User.ID, UpdateUserInput{FirstName: ptr("Ana Maria"), Password: ptr("new-pass")})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.FirstName)
	assert.Equal(t, "Lima", updated.LastName)
	assert.NotEqual(t, created.User.PasswordHash, updated.PasswordHash)

	_, err = svc.Update(ctx, 12345, UpdateUserInput{FirstName: ptr("x")})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_Get(t *testing.T) {
	svc, gormDB := newUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{FirstName: "Ana", Email: "ana@example.com", Password: "x"})
	require.NoError(t, err)
	require.NoError(t, gormDB.Create(&model.UserFollow{FromUserID: 50, ToUserID: created.User.ID}).Error)

	profile, err := svc.Get(ctx, created.User.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.FollowedNumber)
	require.NotNil(t, profile.User.UserType)
	assert.Equal(t, "user", profile.User.UserType.Key)

	_, err = svc.Get(ctx, 4242)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	for _, name := range []string{"Ana", "Mariana", "Bruno"} {
		_, err := svc.Create(ctx, CreateUserInput{FirstName: name, Email: name + "@example.com", Password: "x"})
		require.NoError(t, err)
	}

	rows, count, err := svc.List(ctx, ListUsersInput{Query: "ana"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, rows, 2)

	// The filter replaces the name search.
	rows, count, err = svc.List(ctx, ListUsersInput{Query: "ana", Filter: `{"first_name":"Bruno"}`})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, "Bruno", rows[0].FirstName)

	_, _, err = svc.List(ctx, ListUsersInput{Filter: `{"first_name":`})
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestUserService_Destroy(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{FirstName: "Ana", Email: "ana@example.com", Password: "x"})
	require.NoError(t, err)

	regular := &model.User{ID: 5, UserType: &model.UserType{Key: "user"}}
	assert.ErrorIs(t, svc.Destroy(ctx, regular, created.User.ID), apperrors.ErrDeleteUnauthorized)
	assert.ErrorIs(t, svc.Destroy(ctx, nil, created.User.ID), apperrors.ErrDeleteUnauthorized)
	assert.ErrorIs(t, svc.Destroy(ctx, admin, 777), apperrors.ErrUserNotFound)

	require.NoError(t, svc.Destroy(ctx, admin, created.User.ID))
	_, err = svc.Get(ctx, created.User.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_BulkDestroyIgnoresMissing(t *testing.T) {
	svc, gormDB := newUserService(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, CreateUserInput{FirstName: name, Email: name + "@example.com", Password: "x"})
		require.NoError(t, err)
	}

	assert.ErrorIs(t, svc.BulkDestroy(ctx, nil, []uint{1}), apperrors.ErrDeleteUnauthorized)

	require.NoError(t, svc.BulkDestroy(ctx, admin, []uint{1, 2, 999}))

	var remaining []model.User
	require.NoError(t, gormDB.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, uint(3), remaining[0].ID)
}

func TestUserService_UserTypes(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.UserTypes(ctx, &model.User{UserType: &model.UserType{Key: "user"}})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	types, err := svc.UserTypes(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, types, 2)
}

func TestUserProfile_CachedFormOmitsPasswordHash(t *testing.T) {
	profile := &UserProfile{User: &model.User{ID: 3, Email: "ana@example.com", PasswordHash: "$2a$10$hash"}, FollowNumber: 2}

	payload, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "$2a$10$hash")
	assert.NotContains(t, string(payload), "PasswordHash")

	var cached UserProfile
	require.NoError(t, json.Unmarshal(payload, &cached))
	assert.Equal(t, "ana@example.com", cached.User.Email)
	assert.Equal(t, int64(2), cached.FollowNumber)
	assert.Empty(t, cached.User.PasswordHash)
}
