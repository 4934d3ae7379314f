package repository

import (
	"medichain-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByWalletAddress(db *gorm.DB, walletAddress string) (*entity.User, error)
}
