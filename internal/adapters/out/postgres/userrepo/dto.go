// Package userrepo provides data transfer objects and mapping functions for user persistence.
package userrepo

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
// Username carries a unique index so registration of a taken name fails
// at the database level as well.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex"`
	PasswordHash string
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain entity to its database representation.
func fromDomain(user *user.User) UserDTO {
	return UserDTO{
		ID:           user.ID().Bytes(),
		Username:     user.Username(),
		PasswordHash: user.PasswordHash(),
	}
}

// toDomain converts a database DTO to a user domain entity using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, dto.PasswordHash)
}
