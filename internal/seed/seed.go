// Package seed loads the reference data a fresh database needs.
package seed

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"marketplace/internal/model"
)

// Result counts the rows created by Run; rows that already existed are not counted.
type Result struct {
	Created int
}

var (
	userTypes = []model.UserType{
		{ID: 1, Key: "admin", Name: "Administrador"},
		{ID: model.DefaultUserTypeID, Key: "user", Name: "Usuário"},
	}
	storeTypes = []model.StoreType{
		{Key: "petshop", Name: "Pet Shop"},
		{Key: "clinic", Name: "Clínica Veterinária"},
	}
	serviceTypes = []model.ServiceType{
		{Key: "bath", Name: "Banho"},
		{Key: "grooming", Name: "Tosa"},
		{Key: "consultation", Name: "Consulta"},
	}
	petTypes = []model.PetType{
		{Name: "Cachorro"},
		{Name: "Gato"},
	}
	featureKeys = []struct{ Key, Name string }{
		{"schedule", "Agenda"},
		{"services", "Serviços"},
		{"finance", "Financeiro"},
	}
)

// Run inserts reference data and an admin account. It is safe to run repeatedly.
func Run(ctx context.Context, db *gorm.DB, adminEmail, adminPassword string) (Result, error) {
	var res Result
	tx := db.WithContext(ctx)

	for i := range userTypes {
		ut := userTypes[i]
		if err := firstOrCreate(tx, &ut, model.UserType{Key: ut.Key}, &res); err != nil {
			return res, fmt.Errorf("user type %s: %w", ut.Key, err)
		}
	}

	createdStoreTypes := make([]model.StoreType, 0, len(storeTypes))
	for i := range storeTypes {
		st := storeTypes[i]
		if err := firstOrCreate(tx, &st, model.StoreType{Key: st.Key}, &res); err != nil {
			return res, fmt.Errorf("store type %s: %w", st.Key, err)
		}
		createdStoreTypes = append(createdStoreTypes, st)
	}

	for i := range serviceTypes {
		st := serviceTypes[i]
		if err := firstOrCreate(tx, &st, model.ServiceType{Key: st.Key}, &res); err != nil {
			return res, fmt.Errorf("service type %s: %w", st.Key, err)
		}
	}

	for i := range petTypes {
		pt := petTypes[i]
		if err := firstOrCreate(tx, &pt, model.PetType{Name: pt.Name}, &res); err != nil {
			return res, fmt.Errorf("pet type %s: %w", pt.Name, err)
		}
	}

	owner := model.UserAdminPermission{Key: "owner", Name: "Proprietário"}
	if err := firstOrCreate(tx, &owner, model.UserAdminPermission{Key: owner.Key}, &res); err != nil {
		return res, fmt.Errorf("permission owner: %w", err)
	}

	// The owner permission grants every feature of every store type.
	for _, st := range createdStoreTypes {
		for _, f := range featureKeys {
			feature := model.UserAdminFeature{Key: f.Key, Name: f.Name, StoreTypeID: st.ID}
			if err := firstOrCreate(tx, &feature, model.UserAdminFeature{Key: f.Key, StoreTypeID: st.ID}, &res); err != nil {
				return res, fmt.Errorf("feature %s: %w", f.Key, err)
			}
			link := model.UserAdminPermissionFeature{UserAdminPermissionID: owner.ID, UserAdminFeatureID: feature.ID}
			if err := firstOrCreate(tx, &link, link, &res); err != nil {
				return res, fmt.Errorf("link feature %s: %w", f.Key, err)
			}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return res, fmt.Errorf("hash admin password: %w", err)
	}
	admin := model.User{
		FirstName:       "Admin",
		Email:           adminEmail,
		PasswordHash:    string(hash),
		UserTypeID:      userTypes[0].ID,
		PrivacyPolicyID: model.DefaultPolicyID,
		TermUseID:       model.DefaultPolicyID,
	}
	if err := firstOrCreate(tx, &admin, model.User{Email: adminEmail}, &res); err != nil {
		return res, fmt.Errorf("admin user: %w", err)
	}

	return res, nil
}

// firstOrCreate loads the row matching where into dst, inserting dst when none exists.
func firstOrCreate[T any](tx *gorm.DB, dst *T, where T, res *Result) error {
	var found T
	err := tx.Where(&where).First(&found).Error
	if err == nil {
		*dst = found
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := tx.Create(dst).Error; err != nil {
		return err
	}
	res.Created++
	return nil
}
