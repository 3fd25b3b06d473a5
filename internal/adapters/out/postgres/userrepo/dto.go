// Package userrepo persists application users with GORM.
package userrepo

import (
	"shoppingcart/internal/core/domain/model/user"
)

// UserDTO represents the database structure for application users.
type UserDTO struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	Name        string `gorm:"size:200;not null"`
	Email       string `gorm:"size:320;not null;uniqueIndex"`
	PhoneNumber string `gorm:"size:50"`
}

func (UserDTO) TableName() string {
	return "application_users"
}

func FromDomain(u *user.ApplicationUser) UserDTO {
	return UserDTO{
		ID:          u.ID(),
		Name:        u.Name(),
		Email:       u.Email(),
		PhoneNumber: u.PhoneNumber(),
	}
}

func ToDomain(dto UserDTO) (*user.ApplicationUser, error) {
	return user.NewApplicationUser(dto.ID, dto.Name, dto.Email, dto.PhoneNumber)
}
