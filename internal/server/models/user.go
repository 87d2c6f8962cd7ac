// Package models holds records that only exist on the backend.
package models

import (
	"time"

	wire "github.com/dmitrijs2005/portfolio/internal/models"
)

// User is a stored account. PasswordHash is a bcrypt hash.
type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash []byte
	Role         wire.Role
	CreatedAt    time.Time
}

// AuthUser is the public view of u returned by the login endpoint.
func (u *User) AuthUser() wire.AuthUser {
	return wire.AuthUser{
		ID:       wire.ID(u.ID),
		Username: u.UserName,
		Email:    u.Email,
		Role:     u.Role,
	}
}
