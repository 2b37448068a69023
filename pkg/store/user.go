package store

import (
	"errors"

	"gorm.io/gorm"
	"sensareal.xyz/telemetry-service/pkg/db"
	"sensareal.xyz/telemetry-service/pkg/models"
)

type userRepo struct {
	db *db.DB
}

func (r *userRepo) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Conn.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
