package converter

import (
	"medichain-backend/internal/delivery/dto"
	"medichain-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:            user.ID,
		WalletAddress: user.WalletAddress,
		UserType:      user.UserType,
		FullName:      user.FullName,
		Email:         user.Email,
		Phone:         user.Phone,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
