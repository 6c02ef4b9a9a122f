package repositories

import (
	"errors"

	"github.com/stellar-europe/community-hub/db"
	"github.com/stellar-europe/community-hub/internal/models"
	"gorm.io/gorm"
)

// CreateUser inserts a new member record. The id and created_at are
// assigned by the store.
func CreateUser(user *models.User) error {
	return db.DB.Create(user).Error
}

// FindUserByEmail returns (nil, nil) when no record matches, reserving a
// non-nil error for infrastructure failures.
func FindUserByEmail(email string) (*models.User, error) {
	var user models.User

	err := db.DB.Where("email = ?", email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func FindUserByWalletAddress(walletAddress string) (*models.User, error) {
	var user models.User

	err := db.DB.Where("wallet_address = ?", walletAddress).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User

	err := db.DB.First(&user, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
