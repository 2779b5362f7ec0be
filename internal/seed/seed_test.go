package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/db/dbtest"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

func TestRun_IsIdempotent(t *testing.T) {
	gormDB := dbtest.New(t)
	ctx := context.Background()

	first, err := Run(ctx, gormDB, "admin@example.com", "s3cret")
	require.NoError(t, err)
	assert.Positive(t, first.Created)

	second, err := Run(ctx, gormDB, "admin@example.com", "s3cret")
	require.NoError(t, err)
	assert.Zero(t, second.Created)

	var admin model.User
	require.NoError(t, gormDB.Preload("UserType").Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.Equal(t, "admin", admin.UserType.Key)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("s3cret")))

	var userType model.UserType
	require.NoError(t, gormDB.First(&userType, model.DefaultUserTypeID).Error)
	assert.Equal(t, "user", userType.Key)
}

func TestRun_OwnerGetsEveryFeature(t *testing.T) {
	gormDB := dbtest.New(t)
	ctx := context.Background()

	_, err := Run(ctx, gormDB, "admin@example.com", "s3cret")
	require.NoError(t, err)

	var owner model.UserAdminPermission
	require.NoError(t, gormDB.Where("key = ?", "owner").First(&owner).Error)
	var petshop model.StoreType
	require.NoError(t, gormDB.Where("key = ?", "petshop").First(&petshop).Error)

	keys, err := repository.NewUserAdminRepository(gormDB).FeatureKeys(ctx, owner.ID, petshop.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"schedule", "services", "finance"}, keys)
}
