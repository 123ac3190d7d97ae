package repository

import (
	"errors"

	"chili/entities"
)

var (
	// ErrNotFound is returned for operations on a nonexistent record id.
	ErrNotFound = errors.New("record not found")
	// ErrNotOwner is returned when the record belongs to a different user.
	// Presentation layers should render it exactly like ErrNotFound so other
	// users' record ids stay unguessable.
	ErrNotOwner = errors.New("record not owned by caller")
)

type ChiliRepository interface {
	Create(c *entities.Chili) error
	FindByID(id uint) (*entities.Chili, error)
	Save(c *entities.Chili) error
	Delete(id uint) error
	// ListByUser orders by planting_date DESC, newest insert first on ties.
	ListByUser(userID uint) ([]entities.Chili, error)
}
