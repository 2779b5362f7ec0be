package model

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&UserType{},
		&Image{},
		&Address{},
		&StoreType{},
		&Store{},
		&StoreProfile{},
		&ServiceType{},
		&Service{},
		&PetType{},
		&Breed{},
		&User{},
		&UserFollow{},
		&UserImage{},
		&UserAdminPermission{},
		&UserAdminFeature{},
		&UserAdminPermissionFeature{},
		&UserAdmin{},
	}
}
