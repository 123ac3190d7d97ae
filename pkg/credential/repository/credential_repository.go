package repository

import (
	"errors"

	"chili/entities"
)

var (
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrAuthFailed covers both unknown username and wrong password; callers
	// must not learn which one it was.
	ErrAuthFailed = errors.New("invalid credentials")
	// ErrUserNotFound is returned when no account has the given id.
	ErrUserNotFound = errors.New("user not found")
)

type CredentialRepository interface {
	CreateAccount(username, password, role string) (uint, error)
	Authenticate(username, password string) (*entities.User, error)
	FindByID(id uint) (*entities.User, error)
}
