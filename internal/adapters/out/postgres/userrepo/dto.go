// Package userrepo provides data transfer objects and mapping functions for
// staff-account persistence. Only the bcrypt hash ever reaches this layer;
// plain-text passwords stay inside the domain constructors.
package userrepo

import (
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"size:128;not null"`
	Email        string    `gorm:"size:256;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:128;not null"`
	Role         string    `gorm:"size:16;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         string(aggregate.Role()),
	}
}

// toDomain converts a database DTO to a user aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, dto.Email, dto.PasswordHash, user.Role(dto.Role))
}
